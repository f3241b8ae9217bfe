package repositories

import (
	"time"

	"flashcards/internal/models"
)

// FlashcardWithCategory is a flashcard row joined with its category
// name. The join is explicit so listing a user's cards is one query,
// not a lazy lookup per card.
type FlashcardWithCategory struct {
	ID           string    `json:"id"`
	Question     string    `json:"question"`
	Answer       string    `json:"answer"`
	CategoryID   string    `json:"category_id"`
	CategoryName string    `json:"category"`
	CreatedAt    time.Time `json:"created_at"`
}

// FlashcardRepository defines the interface for flashcard data access.
type FlashcardRepository interface {
	Create(card *models.Flashcard) error
	GetByUserID(userID string) ([]FlashcardWithCategory, error)
	CountByUserID(userID string) (int64, error)
	CountByUserIDSince(userID string, since time.Time) (int64, error)
}
