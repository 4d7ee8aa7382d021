package models

import (
	"time"
)

// Feedback is the model for the 'feedbacks' table. Rating is constrained
// to 1-5 at the API layer. Reply is set by an admin later, so it is
// nullable.
type Feedback struct {
	ID        string    `json:"_id" db:"id"`
	UserID    string    `json:"userId" db:"user_id"`
	Name      string    `json:"name" db:"name"`
	Email     string    `json:"email" db:"email"`
	Rating    int       `json:"rating" db:"rating"`
	Comment   string    `json:"comment" db:"comment"`
	Date      time.Time `json:"date" db:"date"`
	Reply     *string   `json:"reply" db:"reply"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}
