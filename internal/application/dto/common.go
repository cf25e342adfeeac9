package dto

// PageRequest paginación para listados. Los nombres de query (skip/limit)
// forman parte del contrato con los clientes existentes.
type PageRequest struct {
	Skip  int `query:"skip"`
	Limit int `query:"limit"`
}

// DefaultPage aplica valores por defecto y tope al límite.
func (p *PageRequest) DefaultPage() {
	if p.Limit <= 0 || p.Limit > 100 {
		p.Limit = 100
	}
	if p.Skip < 0 {
		p.Skip = 0
	}
}

// ErrorResponse cuerpo de error HTTP: {"detail": "<mensaje>"}.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// DetailResponse confirmación simple para borrados: {"detail": "<mensaje>"}.
type DetailResponse struct {
	Detail string `json:"detail"`
}
