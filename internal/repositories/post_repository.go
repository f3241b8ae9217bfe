package repositories

import (
	"time"

	"flashcards/internal/models"
)

// PostWithAuthor is a community post joined with its author's username.
// The author is resolved by an explicit join rather than an object
// back-reference.
type PostWithAuthor struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	UserID    string    `json:"user_id"`
	Username  string    `json:"username"`
	Likes     int       `json:"likes"`
	CreatedAt time.Time `json:"created_at"`
}

// PostRepository defines the interface for community post data access.
type PostRepository interface {
	Create(post *models.Post) error
	GetAllByRecency() ([]PostWithAuthor, error)
}
