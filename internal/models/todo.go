package models

import (
	"time"

	"github.com/google/uuid"
)

// Todo represents a single todo item stored in the item table
type Todo struct {
	ID        string `json:"id" dynamodbav:"id" db:"id" validate:"required"`
	Text      string `json:"text" dynamodbav:"text" db:"text" validate:"required"`
	Checked   bool   `json:"checked" dynamodbav:"checked" db:"checked"`
	CreatedAt int64  `json:"createdAt" dynamodbav:"createdAt" db:"created_at"`
	UpdatedAt int64  `json:"updatedAt" dynamodbav:"updatedAt" db:"updated_at"`
}

// NewTodo creates a new todo with a generated time-ordered ID and timestamps.
// Both timestamps carry the same creation instant; Checked starts false.
func NewTodo(text string) *Todo {
	now := NowMillis()
	return &Todo{
		ID:        uuid.Must(uuid.NewV7()).String(),
		Text:      text,
		Checked:   false,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Touch advances the update timestamp to the current time
func (t *Todo) Touch() {
	t.UpdatedAt = NowMillis()
}

// NowMillis returns the current wall-clock time as milliseconds since epoch.
// All todo timestamps use this representation on both the create and update
// paths.
func NowMillis() int64 {
	return time.Now().UnixMilli()
}
