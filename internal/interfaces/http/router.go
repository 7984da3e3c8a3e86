package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/compdir/company-directory-api/internal/application/usecase"
)

// RouterDeps carries the dependencies the routes need.
type RouterDeps struct {
	CompanyUC *usecase.CompanyUseCase
	Log       zerolog.Logger
}

// Router registers the API routes.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", Health)

	api := app.Group("/api")

	companies := api.Group("/companies")
	h := NewCompanyHandler(deps.CompanyUC, deps.Log)
	companies.Get("/", h.List)
	companies.Post("/", h.Create)
	companies.Get("/:id", h.GetByID)
	companies.Put("/:id", h.Update)
	companies.Delete("/:id", h.Delete)
}

// Health godoc
// @Summary      Liveness probe
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":    "OK",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
