package repositories

import (
	"fmt"

	"flashcards/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMPostRepository is a GORM implementation of PostRepository.
type GORMPostRepository struct {
	db *gorm.DB
}

// NewGORMPostRepository creates a new instance of GORMPostRepository.
func NewGORMPostRepository(db *gorm.DB) *GORMPostRepository {
	return &GORMPostRepository{
		db: db,
	}
}

// Create stores a new community post.
func (r *GORMPostRepository) Create(post *models.Post) error {
	if post.ID == "" {
		post.ID = uuid.New().String()
	}
	if err := r.db.Create(post).Error; err != nil {
		return fmt.Errorf("failed to create post: %w", err)
	}
	return nil
}

// GetAllByRecency returns every post newest-first, with the author's
// username resolved in the same query.
func (r *GORMPostRepository) GetAllByRecency() ([]PostWithAuthor, error) {
	var posts []PostWithAuthor
	err := r.db.Model(&models.Post{}).
		Select("posts.id, posts.content, posts.user_id, users.username AS username, posts.likes, posts.created_at").
		Joins("JOIN users ON users.id = posts.user_id").
		Order("posts.created_at DESC").
		Scan(&posts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	return posts, nil
}
