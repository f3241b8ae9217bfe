package services

import (
	"fmt"

	"flashcards/internal/models"
	"flashcards/internal/repositories"
)

// DefaultCategories is the fixed seed set created on first startup.
var DefaultCategories = []string{
	"Medicina Interna",
	"Cirurgia",
	"Pediatria",
	"Gineco e Obstetriz",
	"Perguntas do Grado",
}

// CategoryService handles business logic related to categories.
type CategoryService struct {
	repo repositories.CategoryRepository
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(repo repositories.CategoryRepository) *CategoryService {
	return &CategoryService{
		repo: repo,
	}
}

// GetAllCategories retrieves all categories.
func (s *CategoryService) GetAllCategories() ([]models.Category, error) {
	return s.repo.GetAll()
}

// SeedDefaults creates the default categories if the table is empty.
// Running it again is a no-op, and the name unique index keeps two
// processes racing through first boot from doubling the set.
func (s *CategoryService) SeedDefaults() error {
	count, err := s.repo.Count()
	if err != nil {
		return fmt.Errorf("failed to check existing categories: %w", err)
	}
	if count > 0 {
		return nil
	}

	categories := make([]models.Category, 0, len(DefaultCategories))
	for _, name := range DefaultCategories {
		categories = append(categories, models.Category{Name: name})
	}
	if err := s.repo.CreateAll(categories); err != nil {
		return fmt.Errorf("failed to seed default categories: %w", err)
	}
	return nil
}
