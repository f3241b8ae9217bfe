package repositories_test

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"flashcards/internal/models"
	"flashcards/internal/repositories"
	"flashcards/internal/services"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupDB opens a per-test in-memory SQLite database with the full
// schema migrated.
func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open in-memory database: %v", err)
	}
	err = db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Flashcard{},
		&models.Post{},
		&models.Follow{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func TestUserRepository_Lookups(t *testing.T) {
	db := setupDB(t)
	userRepo := repositories.NewGORMUserRepository(db)

	user := &models.User{
		Username:   "alice",
		Email:      "a@x.com",
		Password:   "hashed",
		TrialStart: time.Now().UTC(),
	}
	assert.NoError(t, userRepo.Create(user))
	assert.NotEmpty(t, user.ID)

	byName, err := userRepo.GetByUsername("alice")
	assert.NoError(t, err)
	assert.Equal(t, user.ID, byName.ID)

	byEmail, err := userRepo.GetByEmail("a@x.com")
	assert.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)

	byID, err := userRepo.GetByID(user.ID)
	assert.NoError(t, err)
	assert.Equal(t, "alice", byID.Username)

	_, err = userRepo.GetByUsername("nobody")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestUserRepository_UniqueConstraints(t *testing.T) {
	db := setupDB(t)
	userRepo := repositories.NewGORMUserRepository(db)

	first := &models.User{Username: "alice", Email: "a@x.com", Password: "h", TrialStart: time.Now().UTC()}
	assert.NoError(t, userRepo.Create(first))

	// Same username, different email.
	err := userRepo.Create(&models.User{Username: "alice", Email: "b@x.com", Password: "h", TrialStart: time.Now().UTC()})
	assert.Error(t, err)

	// Same email, different username.
	err = userRepo.Create(&models.User{Username: "bob", Email: "a@x.com", Password: "h", TrialStart: time.Now().UTC()})
	assert.Error(t, err)
}

func TestCategorySeeding_Idempotent(t *testing.T) {
	db := setupDB(t)
	categoryRepo := repositories.NewGORMCategoryRepository(db)
	categoryService := services.NewCategoryService(categoryRepo)

	assert.NoError(t, categoryService.SeedDefaults())
	assert.NoError(t, categoryService.SeedDefaults())

	count, err := categoryRepo.Count()
	assert.NoError(t, err)
	assert.Equal(t, int64(5), count)

	categories, err := categoryRepo.GetAll()
	assert.NoError(t, err)
	names := make([]string, 0, len(categories))
	for _, cat := range categories {
		names = append(names, cat.Name)
	}
	assert.ElementsMatch(t, services.DefaultCategories, names)
}

func TestCategoryRepository_CreateAllSkipsDuplicates(t *testing.T) {
	db := setupDB(t)
	categoryRepo := repositories.NewGORMCategoryRepository(db)

	// Two seeders racing through first boot insert the same names; the
	// name unique index plus DO NOTHING keeps one row per name.
	batch := func() []models.Category {
		return []models.Category{{Name: "Cirurgia"}, {Name: "Pediatria"}}
	}
	assert.NoError(t, categoryRepo.CreateAll(batch()))
	assert.NoError(t, categoryRepo.CreateAll(batch()))

	count, err := categoryRepo.Count()
	assert.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestFlashcardRepository_Counts(t *testing.T) {
	db := setupDB(t)
	userRepo := repositories.NewGORMUserRepository(db)
	categoryRepo := repositories.NewGORMCategoryRepository(db)
	cardRepo := repositories.NewGORMFlashcardRepository(db)

	user := &models.User{Username: "alice", Email: "a@x.com", Password: "h", TrialStart: time.Now().UTC()}
	assert.NoError(t, userRepo.Create(user))
	assert.NoError(t, categoryRepo.CreateAll([]models.Category{{Name: "Cirurgia"}}))
	categories, err := categoryRepo.GetAll()
	assert.NoError(t, err)
	categoryID := categories[0].ID

	now := time.Now().UTC()
	yesterday := now.Add(-36 * time.Hour)

	old := &models.Flashcard{Question: "old?", Answer: "a", CategoryID: categoryID, UserID: user.ID}
	old.CreatedAt = yesterday
	assert.NoError(t, cardRepo.Create(old))
	for i := 0; i < 2; i++ {
		card := &models.Flashcard{Question: fmt.Sprintf("q%d?", i), Answer: "a", CategoryID: categoryID, UserID: user.ID}
		assert.NoError(t, cardRepo.Create(card))
	}

	total, err := cardRepo.CountByUserID(user.ID)
	assert.NoError(t, err)
	assert.Equal(t, int64(3), total)

	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	today, err := cardRepo.CountByUserIDSince(user.ID, midnight)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), today)
}

func TestFlashcardRepository_GetByUserIDJoinsCategory(t *testing.T) {
	db := setupDB(t)
	userRepo := repositories.NewGORMUserRepository(db)
	categoryRepo := repositories.NewGORMCategoryRepository(db)
	cardRepo := repositories.NewGORMFlashcardRepository(db)

	user := &models.User{Username: "alice", Email: "a@x.com", Password: "h", TrialStart: time.Now().UTC()}
	other := &models.User{Username: "bob", Email: "b@x.com", Password: "h", TrialStart: time.Now().UTC()}
	assert.NoError(t, userRepo.Create(user))
	assert.NoError(t, userRepo.Create(other))
	assert.NoError(t, categoryRepo.CreateAll([]models.Category{{Name: "Pediatria"}}))
	categories, err := categoryRepo.GetAll()
	assert.NoError(t, err)

	mine := &models.Flashcard{Question: "mine?", Answer: "a", CategoryID: categories[0].ID, UserID: user.ID}
	theirs := &models.Flashcard{Question: "theirs?", Answer: "a", CategoryID: categories[0].ID, UserID: other.ID}
	assert.NoError(t, cardRepo.Create(mine))
	assert.NoError(t, cardRepo.Create(theirs))

	cards, err := cardRepo.GetByUserID(user.ID)
	assert.NoError(t, err)
	assert.Len(t, cards, 1)
	assert.Equal(t, "mine?", cards[0].Question)
	assert.Equal(t, "Pediatria", cards[0].CategoryName)
}

func TestPostRepository_GetAllByRecency(t *testing.T) {
	db := setupDB(t)
	userRepo := repositories.NewGORMUserRepository(db)
	postRepo := repositories.NewGORMPostRepository(db)

	user := &models.User{Username: "alice", Email: "a@x.com", Password: "h", TrialStart: time.Now().UTC()}
	assert.NoError(t, userRepo.Create(user))

	base := time.Now().UTC().Add(-time.Hour)
	for i, content := range []string{"first", "second", "third"} {
		post := &models.Post{Content: content, UserID: user.ID}
		post.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		assert.NoError(t, postRepo.Create(post))
	}

	posts, err := postRepo.GetAllByRecency()
	assert.NoError(t, err)
	assert.Len(t, posts, 3)
	assert.Equal(t, "third", posts[0].Content)
	assert.Equal(t, "first", posts[2].Content)
	assert.Equal(t, "alice", posts[0].Username)
	assert.Equal(t, 0, posts[0].Likes)
}
