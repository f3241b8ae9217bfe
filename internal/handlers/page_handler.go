package handlers

import (
	"log"
	"time"

	"flashcards/internal/middleware"
	"flashcards/internal/models"
	"flashcards/internal/services"

	"github.com/gofiber/fiber/v2"
)

// PageHandler serves the view models behind the authenticated pages.
type PageHandler struct {
	cardService     *services.FlashcardService
	categoryService *services.CategoryService
	postService     *services.PostService
}

// NewPageHandler creates a new PageHandler.
func NewPageHandler(cardService *services.FlashcardService, categoryService *services.CategoryService, postService *services.PostService) *PageHandler {
	return &PageHandler{
		cardService:     cardService,
		categoryService: categoryService,
		postService:     postService,
	}
}

// RegisterRoutes registers the page routes. Every route requires an
// authenticated session; all but /payment also require the access gate.
func (h *PageHandler) RegisterRoutes(router fiber.Router, authRequired, accessRequired fiber.Handler) {
	router.Get("/payment", authRequired, h.HandlePayment)

	protected := router.Group("", authRequired, accessRequired)
	protected.Get("/dashboard", h.HandleDashboard)
	protected.Get("/flashcards", h.HandleFlashcards)
	protected.Get("/study", h.HandleStudy)
	protected.Get("/community", h.HandleCommunity)
	protected.Get("/reports", h.HandleReports)
}

// HandleDashboard shows the user's card totals.
func (h *PageHandler) HandleDashboard(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	totalCards, err := h.cardService.CountFlashcardsForUser(user.ID)
	if err != nil {
		log.Printf("Error counting flashcards for user %s: %v", user.ID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not load dashboard",
		})
	}
	cardsToday, err := h.cardService.CountFlashcardsCreatedToday(user.ID, time.Now())
	if err != nil {
		log.Printf("Error counting today's flashcards for user %s: %v", user.ID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not load dashboard",
		})
	}

	return c.JSON(fiber.Map{
		"page":        "dashboard",
		"total_cards": totalCards,
		"cards_today": cardsToday,
	})
}

// HandlePayment is a placeholder; no payment capture exists.
func (h *PageHandler) HandlePayment(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"page":    "payment",
		"message": "Your trial has ended. Subscribe to keep studying.",
	})
}

// HandleFlashcards lists the user's cards and every category.
func (h *PageHandler) HandleFlashcards(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	cards, err := h.cardService.GetFlashcardsForUser(user.ID)
	if err != nil {
		log.Printf("Error listing flashcards for user %s: %v", user.ID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not load flashcards",
		})
	}
	categories, err := h.categoryService.GetAllCategories()
	if err != nil {
		log.Printf("Error listing categories: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not load categories",
		})
	}

	return c.JSON(fiber.Map{
		"page":       "flashcards",
		"cards":      cards,
		"categories": categoryResponses(categories),
	})
}

// HandleStudy lists the categories available to study.
func (h *PageHandler) HandleStudy(c *fiber.Ctx) error {
	categories, err := h.categoryService.GetAllCategories()
	if err != nil {
		log.Printf("Error listing categories: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not load categories",
		})
	}
	return c.JSON(fiber.Map{
		"page":       "study",
		"categories": categoryResponses(categories),
	})
}

// HandleCommunity lists posts newest-first.
func (h *PageHandler) HandleCommunity(c *fiber.Ctx) error {
	posts, err := h.postService.GetPostsByRecency()
	if err != nil {
		log.Printf("Error listing posts: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not load posts",
		})
	}
	return c.JSON(fiber.Map{
		"page":  "community",
		"posts": posts,
	})
}

// HandleReports is a placeholder page.
func (h *PageHandler) HandleReports(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"page": "reports"})
}

// CategoryResponse is the wire shape of a category.
type CategoryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func categoryResponses(categories []models.Category) []CategoryResponse {
	out := make([]CategoryResponse, 0, len(categories))
	for _, cat := range categories {
		out = append(out, CategoryResponse{ID: cat.ID, Name: cat.Name})
	}
	return out
}
