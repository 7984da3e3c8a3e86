package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/compdir/company-directory-api/internal/application/dto"
	"github.com/compdir/company-directory-api/internal/application/usecase"
	"github.com/compdir/company-directory-api/internal/application/validation"
	"github.com/compdir/company-directory-api/internal/domain"
)

// errorBody is the wire shape of every error response. Details carries the
// aggregated validation failures; Field flags the join-date rejection.
type errorBody struct {
	Error   string            `json:"error"`
	Details validation.Errors `json:"details,omitempty"`
	Field   string            `json:"field,omitempty"`
}

// CompanyHandler serves the /api/companies resource.
type CompanyHandler struct {
	uc  *usecase.CompanyUseCase
	log zerolog.Logger
}

// NewCompanyHandler builds the handler around the use case.
func NewCompanyHandler(uc *usecase.CompanyUseCase, log zerolog.Logger) *CompanyHandler {
	return &CompanyHandler{uc: uc, log: log}
}

// List godoc
// @Summary      List companies
// @Tags         companies
// @Produce      json
// @Param        search  query  string  false  "Substring match on companyName or email"
// @Param        page    query  int     false  "1-indexed page"   default(1)
// @Param        limit   query  int     false  "Page size"        default(10)
// @Success      200  {object}  dto.CompanyListResponse
// @Router       /api/companies [get]
func (h *CompanyHandler) List(c *fiber.Ctx) error {
	search := c.Query("search")
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", usecase.DefaultLimit)

	out, err := h.uc.List(c.UserContext(), search, page, limit)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Get one company with its nested graph
// @Tags         companies
// @Produce      json
// @Param        id   path  string  true  "Company id"
// @Success      200  {object}  dto.CompanyResponse
// @Failure      404  {object}  errorBody
// @Router       /api/companies/{id} [get]
func (h *CompanyHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Create a company with employees, skills and education
// @Tags         companies
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CompanyPayload  true  "Company payload"
// @Success      201  {object}  dto.CompanyResponse
// @Failure      400  {object}  errorBody
// @Router       /api/companies [post]
func (h *CompanyHandler) Create(c *fiber.Ctx) error {
	var in dto.CompanyPayload
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorBody{Error: "Invalid request body"})
	}
	out, err := h.uc.Create(c.UserContext(), &in)
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Update a company, replacing its employee subtree
// @Tags         companies
// @Accept       json
// @Produce      json
// @Param        id    path  string              true  "Company id"
// @Param        body  body  dto.CompanyPayload  true  "Company payload"
// @Success      200  {object}  dto.CompanyResponse
// @Failure      400  {object}  errorBody
// @Failure      404  {object}  errorBody
// @Router       /api/companies/{id} [put]
func (h *CompanyHandler) Update(c *fiber.Ctx) error {
	var in dto.CompanyPayload
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorBody{Error: "Invalid request body"})
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), &in)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Delete a company and its whole subtree
// @Tags         companies
// @Param        id   path  string  true  "Company id"
// @Success      204  "no content"
// @Failure      404  {object}  errorBody
// @Router       /api/companies/{id} [delete]
func (h *CompanyHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return h.fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// fail translates the error taxonomy to HTTP. Validation and join-date
// failures become structured 400s, unknown ids become 404, everything
// else is logged and surfaced as an opaque 500.
func (h *CompanyHandler) fail(c *fiber.Ctx, err error) error {
	var verrs validation.Errors
	switch {
	case errors.As(err, &verrs):
		return c.Status(fiber.StatusBadRequest).JSON(errorBody{Error: "Validation error", Details: verrs})
	case errors.Is(err, domain.ErrJoinDateNotPast):
		return c.Status(fiber.StatusBadRequest).JSON(errorBody{Error: "Join date must be in the past", Field: "joinDate"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(errorBody{Error: "Company not found"})
	default:
		h.log.Error().Err(err).Str("path", c.Path()).Msg("request failed")
		return c.Status(fiber.StatusInternalServerError).JSON(errorBody{Error: "Internal server error"})
	}
}
