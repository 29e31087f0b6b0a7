package http

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gallery-api/internal/application/dto"
	"github.com/jhoicas/gallery-api/internal/application/usecase"
	"github.com/jhoicas/gallery-api/pkg/token"
)

// CategoryHandler endpoints de categorías como configuraciones del pipeline.
type CategoryHandler struct {
	p  *Pipeline
	uc *usecase.CategoryUseCase
}

// NewCategoryHandler construye el handler.
func NewCategoryHandler(p *Pipeline, uc *usecase.CategoryUseCase) *CategoryHandler {
	return &CategoryHandler{p: p, uc: uc}
}

// Create godoc
// @Summary      Crear categoría
// @Tags         categories
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCategoryRequest  true  "Datos de la categoría"
// @Success      201   {object}  dto.CreateCategoryResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/categories [post]
func (h *CategoryHandler) Create() fiber.Handler {
	return Handle(h.p, Endpoint[dto.CreateCategoryRequest]{
		Name:           "create-category",
		RequiresAuth:   true,
		RequiredGroups: []string{GroupAdmin},
		DeniedMessage:  "Access denied. Admin privileges required.",
		Parse: func(c *fiber.Ctx) (dto.CreateCategoryRequest, error) {
			var in dto.CreateCategoryRequest
			if err := c.BodyParser(&in); err != nil {
				return in, fmt.Errorf("parse body: %w", err)
			}
			if in.Name == "" {
				return in, fmt.Errorf("name is required")
			}
			return in, nil
		},
		// La plantilla referenciada debe existir ANTES de escribir la categoría.
		Precondition: func(ctx context.Context, in dto.CreateCategoryRequest) error {
			return h.uc.TemplateExists(in.TemplateID)
		},
		Execute: func(ctx context.Context, in dto.CreateCategoryRequest, caller *token.ClaimSet) (any, error) {
			return h.uc.Create(in)
		},
		SuccessStatus: func(dto.CreateCategoryRequest) int { return fiber.StatusCreated },
	})
}

// List godoc
// @Summary      Listar categorías (público)
// @Tags         categories
// @Produce      json
// @Success      200  {array}  dto.CategoryResponse
// @Router       /api/categories [get]
func (h *CategoryHandler) List() fiber.Handler {
	return Handle(h.p, Endpoint[struct{}]{
		Name: "get-categories",
		Parse: func(c *fiber.Ctx) (struct{}, error) {
			return struct{}{}, nil
		},
		Execute: func(ctx context.Context, _ struct{}, _ *token.ClaimSet) (any, error) {
			return h.uc.List()
		},
	})
}
