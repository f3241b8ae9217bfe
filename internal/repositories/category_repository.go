package repositories

import "flashcards/internal/models"

// CategoryRepository defines the interface for category data access.
type CategoryRepository interface {
	GetAll() ([]models.Category, error)
	GetByID(id string) (*models.Category, error)
	Count() (int64, error)
	// CreateAll inserts the given categories, silently skipping names
	// that already exist so a racing seeder cannot duplicate them.
	CreateAll(categories []models.Category) error
}
