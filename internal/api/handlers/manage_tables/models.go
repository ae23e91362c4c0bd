package manage_tables

import (
	"github.com/dev4ox/anti-cafe-reservation/internal/domain"
)

// TableRequest HTTP request model для создания и обновления стола
type TableRequest struct {
	Name         string `json:"name"`
	Capacity     int    `json:"capacity"`
	IsActive     *bool  `json:"isActive,omitempty"`
	LocationNote string `json:"locationNote,omitempty"`
}

// TableResponse HTTP модель стола
type TableResponse struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Capacity     int    `json:"capacity"`
	IsActive     bool   `json:"isActive"`
	LocationNote string `json:"locationNote,omitempty"`
}

// ListResponse HTTP response model
type ListResponse struct {
	Tables []TableResponse `json:"tables"`
}

// ToDomain конвертирует HTTP запрос в domain модель
func (r *TableRequest) ToDomain() *domain.Table {
	isActive := true
	if r.IsActive != nil {
		isActive = *r.IsActive
	}
	return &domain.Table{
		Name:         r.Name,
		Capacity:     r.Capacity,
		IsActive:     isActive,
		LocationNote: r.LocationNote,
	}
}

// FromDomain конвертирует domain модель в HTTP response
func FromDomain(t *domain.Table) *TableResponse {
	return &TableResponse{
		ID:           t.ID,
		Name:         t.Name,
		Capacity:     t.Capacity,
		IsActive:     t.IsActive,
		LocationNote: t.LocationNote,
	}
}

// FromDomainList конвертирует список столов в HTTP response
func FromDomainList(list []*domain.Table) *ListResponse {
	out := &ListResponse{Tables: make([]TableResponse, 0, len(list))}
	for _, t := range list {
		out.Tables = append(out.Tables, *FromDomain(t))
	}
	return out
}
