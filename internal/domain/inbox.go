package domain

import "time"

// MessageStatus represents the processing status of a contact message
type MessageStatus string

const (
	MessageStatusNew        MessageStatus = "NEW"
	MessageStatusInProgress MessageStatus = "IN_PROGRESS"
	MessageStatusDone       MessageStatus = "DONE"
)

// IsValid reports whether the status is a known token.
func (s MessageStatus) IsValid() bool {
	return s == MessageStatusNew || s == MessageStatusInProgress || s == MessageStatusDone
}

// ContactMessage входящее сообщение от клиента
type ContactMessage struct {
	ID        int64
	Name      string
	Phone     string
	Message   string
	Status    MessageStatus
	CreatedAt time.Time
}
