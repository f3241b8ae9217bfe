package services

import (
	"errors"
	"fmt"
	"time"

	"flashcards/internal/models"
	"flashcards/internal/repositories"
)

// FlashcardService handles business logic related to flashcards.
type FlashcardService struct {
	cardRepo     repositories.FlashcardRepository
	categoryRepo repositories.CategoryRepository
}

// NewFlashcardService creates a new FlashcardService.
func NewFlashcardService(cardRepo repositories.FlashcardRepository, categoryRepo repositories.CategoryRepository) *FlashcardService {
	return &FlashcardService{
		cardRepo:     cardRepo,
		categoryRepo: categoryRepo,
	}
}

// CreateFlashcard stores a new card for the user. The category is
// checked up front so a bad reference surfaces as ErrCategoryNotFound
// instead of a foreign-key violation at commit time.
func (s *FlashcardService) CreateFlashcard(userID, categoryID, question, answer string) (*models.Flashcard, error) {
	if _, err := s.categoryRepo.GetByID(categoryID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to check category %s: %w", categoryID, err)
	}

	card := &models.Flashcard{
		Question:   question,
		Answer:     answer,
		CategoryID: categoryID,
		UserID:     userID,
	}
	if err := s.cardRepo.Create(card); err != nil {
		return nil, fmt.Errorf("failed to create flashcard: %w", err)
	}
	return card, nil
}

// GetFlashcardsForUser returns the user's cards with category names.
func (s *FlashcardService) GetFlashcardsForUser(userID string) ([]repositories.FlashcardWithCategory, error) {
	return s.cardRepo.GetByUserID(userID)
}

// CountFlashcardsForUser returns the user's total card count.
func (s *FlashcardService) CountFlashcardsForUser(userID string) (int64, error) {
	return s.cardRepo.CountByUserID(userID)
}

// CountFlashcardsCreatedToday counts cards created since UTC midnight
// of the given instant.
func (s *FlashcardService) CountFlashcardsCreatedToday(userID string, now time.Time) (int64, error) {
	utc := now.UTC()
	startOfDay := time.Date(utc.Year(), utc.Month(), utc.Day(), 0, 0, 0, 0, time.UTC)
	return s.cardRepo.CountByUserIDSince(userID, startOfDay)
}
