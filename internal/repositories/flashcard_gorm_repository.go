package repositories

import (
	"fmt"
	"time"

	"flashcards/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMFlashcardRepository is a GORM implementation of FlashcardRepository.
type GORMFlashcardRepository struct {
	db *gorm.DB
}

// NewGORMFlashcardRepository creates a new instance of GORMFlashcardRepository.
func NewGORMFlashcardRepository(db *gorm.DB) *GORMFlashcardRepository {
	return &GORMFlashcardRepository{
		db: db,
	}
}

// Create stores a new flashcard.
func (r *GORMFlashcardRepository) Create(card *models.Flashcard) error {
	if card.ID == "" {
		card.ID = uuid.New().String()
	}
	if err := r.db.Create(card).Error; err != nil {
		return fmt.Errorf("failed to create flashcard: %w", err)
	}
	return nil
}

// GetByUserID returns the user's flashcards with their category names
// resolved in a single joined query.
func (r *GORMFlashcardRepository) GetByUserID(userID string) ([]FlashcardWithCategory, error) {
	var cards []FlashcardWithCategory
	err := r.db.Model(&models.Flashcard{}).
		Select("flashcards.id, flashcards.question, flashcards.answer, flashcards.category_id, categories.name AS category_name, flashcards.created_at").
		Joins("JOIN categories ON categories.id = flashcards.category_id").
		Where("flashcards.user_id = ?", userID).
		Order("flashcards.created_at").
		Scan(&cards).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list flashcards for user %s: %w", userID, err)
	}
	return cards, nil
}

// CountByUserID returns the total number of flashcards the user owns.
func (r *GORMFlashcardRepository) CountByUserID(userID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Flashcard{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count flashcards for user %s: %w", userID, err)
	}
	return count, nil
}

// CountByUserIDSince returns how many of the user's flashcards were
// created at or after the given instant.
func (r *GORMFlashcardRepository) CountByUserIDSince(userID string, since time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&models.Flashcard{}).
		Where("user_id = ? AND created_at >= ?", userID, since).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count recent flashcards for user %s: %w", userID, err)
	}
	return count, nil
}
