package handlers

import (
	"errors"
	"log"

	"flashcards/internal/middleware"
	"flashcards/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// APIHandler serves the JSON flashcard and category endpoints.
type APIHandler struct {
	cardService     *services.FlashcardService
	categoryService *services.CategoryService
	validate        *validator.Validate
}

// NewAPIHandler creates a new APIHandler.
func NewAPIHandler(cardService *services.FlashcardService, categoryService *services.CategoryService) *APIHandler {
	return &APIHandler{
		cardService:     cardService,
		categoryService: categoryService,
		validate:        validator.New(),
	}
}

// RegisterRoutes registers the API routes. They run the same
// auth-then-gate chain as the pages; the gate is applied here too so no
// protected resource is reachable without it.
func (h *APIHandler) RegisterRoutes(router fiber.Router, authRequired, accessRequired fiber.Handler) {
	api := router.Group("/api", authRequired, accessRequired)
	api.Get("/flashcards", h.HandleListFlashcards)
	api.Post("/flashcards", h.HandleCreateFlashcard)
	api.Get("/categories", h.HandleListCategories)
}

// FlashcardResponse is the wire shape of a listed flashcard.
type FlashcardResponse struct {
	ID       string `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Category string `json:"category"`
}

// HandleListFlashcards lists the current user's cards with their
// category names.
func (h *APIHandler) HandleListFlashcards(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	cards, err := h.cardService.GetFlashcardsForUser(user.ID)
	if err != nil {
		log.Printf("Error listing flashcards for user %s: %v", user.ID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve flashcards",
		})
	}

	out := make([]FlashcardResponse, 0, len(cards))
	for _, card := range cards {
		out = append(out, FlashcardResponse{
			ID:       card.ID,
			Question: card.Question,
			Answer:   card.Answer,
			Category: card.CategoryName,
		})
	}
	return c.JSON(out)
}

// CreateFlashcardRequest represents the card creation body.
type CreateFlashcardRequest struct {
	Question   string `json:"question" validate:"required"`
	Answer     string `json:"answer" validate:"required"`
	CategoryID string `json:"category_id" validate:"required"`
}

// HandleCreateFlashcard creates a card for the current user.
func (h *APIHandler) HandleCreateFlashcard(c *fiber.Ctx) error {
	var req CreateFlashcardRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing flashcard request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  validationMessages(err),
		})
	}

	user := middleware.CurrentUser(c)
	if _, err := h.cardService.CreateFlashcard(user.ID, req.CategoryID, req.Question, req.Answer); err != nil {
		if errors.Is(err, services.ErrCategoryNotFound) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Flashcard creation failed",
				"error":   err.Error(),
			})
		}
		log.Printf("Error creating flashcard for user %s: %v", user.ID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create flashcard",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Flashcard created successfully",
	})
}

// HandleListCategories lists every category.
func (h *APIHandler) HandleListCategories(c *fiber.Ctx) error {
	categories, err := h.categoryService.GetAllCategories()
	if err != nil {
		log.Printf("Error listing categories: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve categories",
		})
	}
	return c.JSON(categoryResponses(categories))
}
