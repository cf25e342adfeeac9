package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/catalogo-api/internal/application/usecase"
	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
	apphttp "github.com/jhoicas/catalogo-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Soporte de test: un store en memoria que implementa los puertos de
// persistencia con el mismo contrato que los adaptadores PostgreSQL, y una app
// Fiber cableada igual que en cmd/api/main.go. Los tests de este paquete
// verifican el contrato HTTP (rutas, códigos y mensajes), no las reglas de
// negocio, que ya cubren los tests de usecase.
// ──────────────────────────────────────────────────────────────────────────────

type memStore struct {
	categories  map[string]entity.Category
	attributes  map[string]entity.Attribute
	assignments map[string]entity.CategoryAttribute
	products    map[string]entity.Product
	values      map[string]entity.ProductAttributeValue
}

func newMemStore() *memStore {
	return &memStore{
		categories:  map[string]entity.Category{},
		attributes:  map[string]entity.Attribute{},
		assignments: map[string]entity.CategoryAttribute{},
		products:    map[string]entity.Product{},
		values:      map[string]entity.ProductAttributeValue{},
	}
}

type memCategoryRepo struct{ s *memStore }

func (r *memCategoryRepo) Create(c *entity.Category) error {
	for _, x := range r.s.categories {
		if x.Name == c.Name {
			return domain.ErrDuplicate
		}
	}
	r.s.categories[c.ID] = *c
	return nil
}

func (r *memCategoryRepo) GetByID(id string) (*entity.Category, error) {
	if c, ok := r.s.categories[id]; ok {
		return &c, nil
	}
	return nil, nil
}

func (r *memCategoryRepo) GetByName(name string) (*entity.Category, error) {
	for _, c := range r.s.categories {
		if c.Name == name {
			out := c
			return &out, nil
		}
	}
	return nil, nil
}

func (r *memCategoryRepo) List(limit, offset int) ([]*entity.Category, error) {
	var all []*entity.Category
	for id := range r.s.categories {
		c := r.s.categories[id]
		all = append(all, &c)
	}
	sortByCreation(all, func(c *entity.Category) (string, int64) { return c.ID, c.CreatedAt.UnixNano() })
	return slicePage(all, limit, offset), nil
}

func (r *memCategoryRepo) Update(c *entity.Category) error {
	if _, ok := r.s.categories[c.ID]; !ok {
		return domain.ErrNotFound
	}
	for _, x := range r.s.categories {
		if x.Name == c.Name && x.ID != c.ID {
			return domain.ErrDuplicate
		}
	}
	r.s.categories[c.ID] = *c
	return nil
}

func (r *memCategoryRepo) Delete(id string) error {
	if _, ok := r.s.categories[id]; !ok {
		return domain.ErrNotFound
	}
	for _, p := range r.s.products {
		if p.CategoryID == id {
			return domain.ErrCategoryInUse
		}
	}
	for aid, a := range r.s.assignments {
		if a.CategoryID == id {
			delete(r.s.assignments, aid)
		}
	}
	delete(r.s.categories, id)
	return nil
}

type memAttributeRepo struct{ s *memStore }

func (r *memAttributeRepo) Create(a *entity.Attribute) error {
	for _, x := range r.s.attributes {
		if x.Name == a.Name {
			return domain.ErrDuplicate
		}
	}
	r.s.attributes[a.ID] = *a
	return nil
}

func (r *memAttributeRepo) GetByID(id string) (*entity.Attribute, error) {
	if a, ok := r.s.attributes[id]; ok {
		return &a, nil
	}
	return nil, nil
}

func (r *memAttributeRepo) GetByName(name string) (*entity.Attribute, error) {
	for _, a := range r.s.attributes {
		if a.Name == name {
			out := a
			return &out, nil
		}
	}
	return nil, nil
}

func (r *memAttributeRepo) List(limit, offset int) ([]*entity.Attribute, error) {
	var all []*entity.Attribute
	for id := range r.s.attributes {
		a := r.s.attributes[id]
		all = append(all, &a)
	}
	sortByCreation(all, func(a *entity.Attribute) (string, int64) { return a.ID, a.CreatedAt.UnixNano() })
	return slicePage(all, limit, offset), nil
}

func (r *memAttributeRepo) Update(a *entity.Attribute) error {
	if _, ok := r.s.attributes[a.ID]; !ok {
		return domain.ErrNotFound
	}
	r.s.attributes[a.ID] = *a
	return nil
}

func (r *memAttributeRepo) Delete(id string) error {
	if _, ok := r.s.attributes[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.attributes, id)
	return nil
}

type memAssignmentRepo struct{ s *memStore }

func (r *memAssignmentRepo) Create(a *entity.CategoryAttribute) error {
	for _, x := range r.s.assignments {
		if x.CategoryID == a.CategoryID && x.AttributeID == a.AttributeID {
			return domain.ErrDuplicate
		}
	}
	stored := *a
	stored.Attribute = nil
	r.s.assignments[a.ID] = stored
	return nil
}

func (r *memAssignmentRepo) GetByID(id string) (*entity.CategoryAttribute, error) {
	if a, ok := r.s.assignments[id]; ok {
		return &a, nil
	}
	return nil, nil
}

func (r *memAssignmentRepo) GetByPair(categoryID, attributeID string) (*entity.CategoryAttribute, error) {
	for _, a := range r.s.assignments {
		if a.CategoryID == categoryID && a.AttributeID == attributeID {
			out := a
			return &out, nil
		}
	}
	return nil, nil
}

func (r *memAssignmentRepo) ListForCategory(categoryID string) ([]*entity.CategoryAttribute, error) {
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
	sortByCreation(all, func(a *entity.CategoryAttribute) (string, int64) { return a.ID, a.CreatedAt.UnixNano() })
	return all, nil
}

func (r *memAssignmentRepo) Delete(id string) error {
	if _, ok := r.s.assignments[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.assignments, id)
	return nil
}

type memProductRepo struct{ s *memStore }

func (r *memProductRepo) Create(p *entity.Product) error {
	for _, x := range r.s.products {
		if x.SKU == p.SKU {
			return domain.ErrDuplicate
		}
	}
	if _, ok := r.s.categories[p.CategoryID]; !ok {
		return domain.ErrNotFound
	}
	r.s.products[p.ID] = *p
	return nil
}

func (r *memProductRepo) GetByID(id string) (*entity.Product, error) {
	if p, ok := r.s.products[id]; ok {
		return &p, nil
	}
	return nil, nil
}

func (r *memProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	for _, p := range r.s.products {
		if p.SKU == sku {
			out := p
			return &out, nil
		}
	}
	return nil, nil
}

func (r *memProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	var all []*entity.Product
	for id := range r.s.products {
		p := r.s.products[id]
		all = append(all, &p)
	}
	sortByCreation(all, func(p *entity.Product) (string, int64) { return p.ID, p.CreatedAt.UnixNano() })
	return slicePage(all, limit, offset), nil
}

func (r *memProductRepo) Update(p *entity.Product) error {
	if _, ok := r.s.products[p.ID]; !ok {
		return domain.ErrNotFound
	}
	r.s.products[p.ID] = *p
	return nil
}

type memValueRepo struct{ s *memStore }

func (r *memValueRepo) Create(v *entity.ProductAttributeValue) error {
	if _, ok := r.s.assignments[v.CategoryAttributeID]; !ok {
		return domain.ErrInvalidReference
	}
	r.s.values[v.ID] = *v
	return nil
}

func (r *memValueRepo) ListForProduct(productID string) ([]*entity.ProductAttributeValue, error) {
	var all []*entity.ProductAttributeValue
	for id := range r.s.values {
		v := r.s.values[id]
		if v.ProductID == productID {
			all = append(all, &v)
		}
	}
	sortByCreation(all, func(v *entity.ProductAttributeValue) (string, int64) { return v.ID, v.CreatedAt.UnixNano() })
	return all, nil
}

func (r *memValueRepo) UpdateValue(id, value string) error {
	v, ok := r.s.values[id]
	if !ok {
		return domain.ErrNotFound
	}
	v.Value = value
	r.s.values[id] = v
	return nil
}

type memTxRunner struct{ s *memStore }

func (t *memTxRunner) Run(_ context.Context, fn func(
	productRepo repository.ProductRepository,
	valueRepo repository.ProductAttributeValueRepository,
	assignmentRepo repository.CategoryAttributeRepository,
) error) error {
	// Sin rollback: la atomicidad la cubren los tests de usecase.
	return fn(&memProductRepo{s: t.s}, &memValueRepo{s: t.s}, &memAssignmentRepo{s: t.s})
}

func sortByCreation[T any](all []*T, key func(*T) (string, int64)) {
	sort.Slice(all, func(i, j int) bool {
		idI, tsI := key(all[i])
		idJ, tsJ := key(all[j])
		if tsI != tsJ {
			return tsI < tsJ
		}
		return idI < idJ
	})
}

func slicePage[T any](all []*T, limit, offset int) []*T {
	if offset >= len(all) {
		return nil
	}
	all = all[offset:]
	if limit < len(all) {
		all = all[:limit]
	}
	return all
}

// buildTestApp arma la app Fiber con el router de la API y repos en memoria.
func buildTestApp() *fiber.App {
	s := newMemStore()
	categoryRepo := &memCategoryRepo{s: s}
	attributeRepo := &memAttributeRepo{s: s}
	assignmentRepo := &memAssignmentRepo{s: s}
	productRepo := &memProductRepo{s: s}
	valueRepo := &memValueRepo{s: s}

	// Immutable: el store en memoria retiene strings que vienen de c.Params;
	// sin esta opción Fiber reutiliza el buffer de la petición y los corrompe.
	app := fiber.New(fiber.Config{Immutable: true})
	apphttp.Router(app, apphttp.RouterDeps{
		CategoryUC:          usecase.NewCategoryUseCase(categoryRepo),
		AttributeUC:         usecase.NewAttributeUseCase(attributeRepo),
		CategoryAttributeUC: usecase.NewCategoryAttributeUseCase(assignmentRepo, categoryRepo, attributeRepo),
		ProductUC:           usecase.NewProductUseCase(productRepo, valueRepo, &memTxRunner{s: s}),
	})
	return app
}

// doJSON ejecuta una petición con cuerpo JSON y devuelve la respuesta.
func doJSON(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

// decodeBody decodifica el cuerpo JSON de la respuesta en out.
func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, out))
}
