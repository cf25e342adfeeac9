package usecase_test

import (
	"context"
	"sort"

	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria para los puertos de persistencia. Replican el contrato de
// los adaptadores PostgreSQL: ErrDuplicate en colisiones de unicidad,
// ErrNotFound en FKs colgantes y borrados sin filas, cascadas de borrado y
// rollback transaccional (vía snapshot en fakeTxRunner).
// ──────────────────────────────────────────────────────────────────────────────

type fakeStore struct {
	categories  map[string]entity.Category
	attributes  map[string]entity.Attribute
	assignments map[string]entity.CategoryAttribute
	products    map[string]entity.Product
	values      map[string]entity.ProductAttributeValue
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		categories:  make(map[string]entity.Category),
		attributes:  make(map[string]entity.Attribute),
		assignments: make(map[string]entity.CategoryAttribute),
		products:    make(map[string]entity.Product),
		values:      make(map[string]entity.ProductAttributeValue),
	}
}

func (s *fakeStore) clone() *fakeStore {
	c := newFakeStore()
	for k, v := range s.categories {
		c.categories[k] = v
	}
	for k, v := range s.attributes {
		c.attributes[k] = v
	}
	for k, v := range s.assignments {
		c.assignments[k] = v
	}
	for k, v := range s.products {
		c.products[k] = v
	}
	for k, v := range s.values {
		c.values[k] = v
	}
	return c
}

// ───── CategoryRepository ─────

type fakeCategoryRepo struct{ s *fakeStore }

var _ repository.CategoryRepository = (*fakeCategoryRepo)(nil)

func (r *fakeCategoryRepo) Create(category *entity.Category) error {
	for _, c := range r.s.categories {
		if c.Name == category.Name {
			return domain.ErrDuplicate
		}
	}
	r.s.categories[category.ID] = *category
	return nil
}

func (r *fakeCategoryRepo) GetByID(id string) (*entity.Category, error) {
	if c, ok := r.s.categories[id]; ok {
		out := c
		return &out, nil
	}
	return nil, nil
}

func (r *fakeCategoryRepo) GetByName(name string) (*entity.Category, error) {
	for _, c := range r.s.categories {
		if c.Name == name {
			out := c
			return &out, nil
		}
	}
	return nil, nil
}

func (r *fakeCategoryRepo) List(limit, offset int) ([]*entity.Category, error) {
	var all []*entity.Category
	for id := range r.s.categories {
		c := r.s.categories[id]
		all = append(all, &c)
	}
	sort.Slice(all, func(i, j int) bool {
		if !all[i].CreatedAt.Equal(all[j].CreatedAt) {
			return all[i].CreatedAt.Before(all[j].CreatedAt)
		}
		return all[i].ID < all[j].ID
	})
	return paginate(all, limit, offset), nil
}

func (r *fakeCategoryRepo) Update(category *entity.Category) error {
	if _, ok := r.s.categories[category.ID]; !ok {
		return domain.ErrNotFound
	}
	for _, c := range r.s.categories {
		if c.Name == category.Name && c.ID != category.ID {
			return domain.ErrDuplicate
		}
	}
	r.s.categories[category.ID] = *category
	return nil
}

func (r *fakeCategoryRepo) Delete(id string) error {
	if _, ok := r.s.categories[id]; !ok {
		return domain.ErrNotFound
	}
	// products.category_id es RESTRICT
	for _, p := range r.s.products {
		if p.CategoryID == id {
			return domain.ErrCategoryInUse
		}
	}
	// las asignaciones caen en cascada, y con ellas sus valores
	for aid, a := range r.s.assignments {
		if a.CategoryID == id {
			deleteValuesForAssignment(r.s, aid)
			delete(r.s.assignments, aid)
		}
	}
	delete(r.s.categories, id)
	return nil
}

// ───── AttributeRepository ─────

type fakeAttributeRepo struct{ s *fakeStore }

var _ repository.AttributeRepository = (*fakeAttributeRepo)(nil)

func (r *fakeAttributeRepo) Create(attribute *entity.Attribute) error {
	for _, a := range r.s.attributes {
		if a.Name == attribute.Name {
			return domain.ErrDuplicate
		}
	}
	r.s.attributes[attribute.ID] = *attribute
	return nil
}

func (r *fakeAttributeRepo) GetByID(id string) (*entity.Attribute, error) {
	if a, ok := r.s.attributes[id]; ok {
		out := a
		return &out, nil
	}
	return nil, nil
}

func (r *fakeAttributeRepo) GetByName(name string) (*entity.Attribute, error) {
	for _, a := range r.s.attributes {
		if a.Name == name {
			out := a
			return &out, nil
		}
	}
	return nil, nil
}

func (r *fakeAttributeRepo) List(limit, offset int) ([]*entity.Attribute, error) {
	var all []*entity.Attribute
	for id := range r.s.attributes {
		a := r.s.attributes[id]
		all = append(all, &a)
	}
	sort.Slice(all, func(i, j int) bool {
		if !all[i].CreatedAt.Equal(all[j].CreatedAt) {
			return all[i].CreatedAt.Before(all[j].CreatedAt)
		}
		return all[i].ID < all[j].ID
	})
	return paginate(all, limit, offset), nil
}

func (r *fakeAttributeRepo) Update(attribute *entity.Attribute) error {
	if _, ok := r.s.attributes[attribute.ID]; !ok {
		return domain.ErrNotFound
	}
	for _, a := range r.s.attributes {
		if a.Name == attribute.Name && a.ID != attribute.ID {
			return domain.ErrDuplicate
		}
	}
	r.s.attributes[attribute.ID] = *attribute
	return nil
}

func (r *fakeAttributeRepo) Delete(id string) error {
	if _, ok := r.s.attributes[id]; !ok {
		return domain.ErrNotFound
	}
	for aid, a := range r.s.assignments {
		if a.AttributeID == id {
			deleteValuesForAssignment(r.s, aid)
			delete(r.s.assignments, aid)
		}
	}
	delete(r.s.attributes, id)
	return nil
}

// ───── CategoryAttributeRepository ─────

type fakeAssignmentRepo struct{ s *fakeStore }

var _ repository.CategoryAttributeRepository = (*fakeAssignmentRepo)(nil)

func (r *fakeAssignmentRepo) Create(assignment *entity.CategoryAttribute) error {
	for _, a := range r.s.assignments {
		if a.CategoryID == assignment.CategoryID && a.AttributeID == assignment.AttributeID {
			return domain.ErrDuplicate
		}
	}
	if _, ok := r.s.categories[assignment.CategoryID]; !ok {
		return domain.ErrNotFound
	}
	if _, ok := r.s.attributes[assignment.AttributeID]; !ok {
		return domain.ErrNotFound
	}
	stored := *assignment
	stored.Attribute = nil
	r.s.assignments[assignment.ID] = stored
	return nil
}

func (r *fakeAssignmentRepo) GetByID(id string) (*entity.CategoryAttribute, error) {
	if a, ok := r.s.assignments[id]; ok {
		out := a
		return &out, nil
	}
	return nil, nil
}

func (r *fakeAssignmentRepo) GetByPair(categoryID, attributeID string) (*entity.CategoryAttribute, error) {
	for _, a := range r.s.assignments {
		if a.CategoryID == categoryID && a.AttributeID == attributeID {
			out := a
			return &out, nil
		}
	}
	return nil, nil
}

func (r *fakeAssignmentRepo) ListForCategory(categoryID string) ([]*entity.CategoryAttribute, error) {
	var all []*entity.CategoryAttribute
	for id := range r.s.assignments {
		a := r.s.assignments[id]
		if a.CategoryID != categoryID {
			continue
		}
		if attr, ok := r.s.attributes[a.AttributeID]; ok {
			attrCopy := attr
			a.Attribute = &attrCopy
		}
		all = append(all, &a)
	}
	sort.Slice(all, func(i, j int) bool {
		if !all[i].CreatedAt.Equal(all[j].CreatedAt) {
			return all[i].CreatedAt.Before(all[j].CreatedAt)
		}
		return all[i].ID < all[j].ID
	})
	return all, nil
}

func (r *fakeAssignmentRepo) Delete(id string) error {
	if _, ok := r.s.assignments[id]; !ok {
		return domain.ErrNotFound
	}
	deleteValuesForAssignment(r.s, id)
	delete(r.s.assignments, id)
	return nil
}

// ───── ProductRepository ─────

type fakeProductRepo struct{ s *fakeStore }

var _ repository.ProductRepository = (*fakeProductRepo)(nil)

func (r *fakeProductRepo) Create(product *entity.Product) error {
	for _, p := range r.s.products {
		if p.SKU == product.SKU {
			return domain.ErrDuplicate
		}
	}
	if _, ok := r.s.categories[product.CategoryID]; !ok {
		return domain.ErrNotFound
	}
	r.s.products[product.ID] = *product
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	if p, ok := r.s.products[id]; ok {
		out := p
		return &out, nil
	}
	return nil, nil
}

func (r *fakeProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	for _, p := range r.s.products {
		if p.SKU == sku {
			out := p
			return &out, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	var all []*entity.Product
	for id := range r.s.products {
		p := r.s.products[id]
		all = append(all, &p)
	}
	sort.Slice(all, func(i, j int) bool {
		if !all[i].CreatedAt.Equal(all[j].CreatedAt) {
			return all[i].CreatedAt.Before(all[j].CreatedAt)
		}
		return all[i].ID < all[j].ID
	})
	return paginate(all, limit, offset), nil
}

func (r *fakeProductRepo) Update(product *entity.Product) error {
	if _, ok := r.s.products[product.ID]; !ok {
		return domain.ErrNotFound
	}
	for _, p := range r.s.products {
		if p.SKU == product.SKU && p.ID != product.ID {
			return domain.ErrDuplicate
		}
	}
	r.s.products[product.ID] = *product
	return nil
}

// ───── ProductAttributeValueRepository ─────

type fakeValueRepo struct{ s *fakeStore }

var _ repository.ProductAttributeValueRepository = (*fakeValueRepo)(nil)

func (r *fakeValueRepo) Create(value *entity.ProductAttributeValue) error {
	if _, ok := r.s.products[value.ProductID]; !ok {
		return domain.ErrInvalidReference
	}
	if _, ok := r.s.assignments[value.CategoryAttributeID]; !ok {
		return domain.ErrInvalidReference
	}
	r.s.values[value.ID] = *value
	return nil
}

func (r *fakeValueRepo) ListForProduct(productID string) ([]*entity.ProductAttributeValue, error) {
	var all []*entity.ProductAttributeValue
	for id := range r.s.values {
		v := r.s.values[id]
		if v.ProductID == productID {
			all = append(all, &v)
		}
	}
	sort.Slice(all, func(i, j int) bool {
		if !all[i].CreatedAt.Equal(all[j].CreatedAt) {
			return all[i].CreatedAt.Before(all[j].CreatedAt)
		}
		return all[i].ID < all[j].ID
	})
	return all, nil
}

func (r *fakeValueRepo) UpdateValue(id, value string) error {
	v, ok := r.s.values[id]
	if !ok {
		return domain.ErrNotFound
	}
	v.Value = value
	r.s.values[id] = v
	return nil
}

// ───── TxRunner ─────

// fakeTxRunner simula la transacción con un snapshot del store: si el
// callback falla, restaura el estado previo (rollback).
type fakeTxRunner struct{ s *fakeStore }

func (t *fakeTxRunner) Run(_ context.Context, fn func(
	productRepo repository.ProductRepository,
	valueRepo repository.ProductAttributeValueRepository,
	assignmentRepo repository.CategoryAttributeRepository,
) error) error {
	snapshot := t.s.clone()
	err := fn(&fakeProductRepo{s: t.s}, &fakeValueRepo{s: t.s}, &fakeAssignmentRepo{s: t.s})
	if err != nil {
		*t.s = *snapshot
		return err
	}
	return nil
}

// ───── helpers ─────

func deleteValuesForAssignment(s *fakeStore, assignmentID string) {
	for vid, v := range s.values {
		if v.CategoryAttributeID == assignmentID {
			delete(s.values, vid)
		}
	}
}

func paginate[T any](all []*T, limit, offset int) []*T {
	if offset >= len(all) {
		return nil
	}
	all = all[offset:]
	if limit < len(all) {
		all = all[:limit]
	}
	return all
}
