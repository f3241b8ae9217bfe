package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"flashcards/internal/models"
	"flashcards/internal/repositories"
	"flashcards/pkg/mailer"

	"golang.org/x/crypto/bcrypt"
)

// AuthService handles registration, credential verification and session
// identity rehydration.
type AuthService struct {
	userRepo repositories.UserRepository
	mail     *mailer.Client // optional; nil disables outbound mail
}

// NewAuthService creates a new AuthService. mail may be nil.
func NewAuthService(userRepo repositories.UserRepository, mail *mailer.Client) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		mail:     mail,
	}
}

// Register creates a new account with a bcrypt-hashed credential and the
// trial window starting now. Returns ErrUsernameTaken or ErrEmailTaken
// on conflict.
func (s *AuthService) Register(username, email, password string) (*models.User, error) {
	if err := s.checkAvailable(s.userRepo.GetByUsername, username, ErrUsernameTaken); err != nil {
		return nil, err
	}
	if err := s.checkAvailable(s.userRepo.GetByEmail, email, ErrEmailTaken); err != nil {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username:   username,
		Email:      email,
		Password:   string(hashed),
		IsAdmin:    false,
		TrialStart: time.Now().UTC(),
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	// Best effort: a failed greeting must not fail the registration.
	if s.mail != nil {
		if err := s.mail.SendWelcome(user.Email, user.Username); err != nil {
			log.Printf("Warning: failed to send welcome mail to %s: %v", user.Email, err)
		}
	} else {
		log.Println("Mailer is not configured. Skipping welcome mail.")
	}

	return user, nil
}

// Login verifies the supplied credentials and returns the account. The
// error never reveals whether the username or the password was wrong.
func (s *AuthService) Login(username, password string) (*models.User, error) {
	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// GetUserByID rehydrates the current identity for an active session.
func (s *AuthService) GetUserByID(id string) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to load user %s: %w", id, err)
	}
	return user, nil
}

func (s *AuthService) checkAvailable(lookup func(string) (*models.User, error), value string, conflict error) error {
	existing, err := lookup(value)
	if err == nil && existing != nil {
		return conflict
	}
	if err != nil && !errors.Is(err, repositories.ErrNotFound) {
		return fmt.Errorf("failed to check availability of %q: %w", value, err)
	}
	return nil
}
