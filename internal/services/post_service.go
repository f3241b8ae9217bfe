package services

import "flashcards/internal/repositories"

// PostService handles business logic related to community posts.
type PostService struct {
	repo repositories.PostRepository
}

// NewPostService creates a new PostService.
func NewPostService(repo repositories.PostRepository) *PostService {
	return &PostService{
		repo: repo,
	}
}

// GetPostsByRecency returns every community post newest-first.
func (s *PostService) GetPostsByRecency() ([]repositories.PostWithAuthor, error) {
	return s.repo.GetAllByRecency()
}
