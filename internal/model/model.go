package model

import "time"

// Roles a message author may have. The store enforces the same set via a
// CHECK constraint, but validation happens in the service before any write.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ValidRole reports whether role is one of the allowed author roles.
func ValidRole(role string) bool {
	return role == RoleUser || role == RoleAssistant
}

// Chat stores metadata about a conversation. A chat owns its messages:
// deleting the chat deletes every message that references it.
type Chat struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Message is a single turn in a chat. Messages are immutable once saved;
// the service exposes no edit or delete operation for them.
type Message struct {
	ID        string    `json:"id"`
	ChatID    string    `json:"chat_id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// NewMessage is the caller-supplied part of a message before the service
// assigns an id and timestamp.
type NewMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}
