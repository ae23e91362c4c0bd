package contact

import (
	"time"

	"github.com/dev4ox/anti-cafe-reservation/internal/domain"
)

// ContactRequest HTTP request model для формы обратной связи
type ContactRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

// UpdateStatusRequest HTTP request model для смены статуса сообщения
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// MessageResponse HTTP модель входящего сообщения
type MessageResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Message   string `json:"message"`
	Status    string `json:"status"`
	CreatedAt string `json:"createdAt"`
}

// ListResponse HTTP response model
type ListResponse struct {
	Messages []MessageResponse `json:"messages"`
}

// FromDomain конвертирует domain модель в HTTP response
func FromDomain(m *domain.ContactMessage) *MessageResponse {
	return &MessageResponse{
		ID:        m.ID,
		Name:      m.Name,
		Phone:     m.Phone,
		Message:   m.Message,
		Status:    string(m.Status),
		CreatedAt: m.CreatedAt.Format(time.RFC3339),
	}
}

// FromDomainList конвертирует список сообщений в HTTP response
func FromDomainList(list []*domain.ContactMessage) *ListResponse {
	out := &ListResponse{Messages: make([]MessageResponse, 0, len(list))}
	for _, m := range list {
		out.Messages = append(out.Messages, *FromDomain(m))
	}
	return out
}
