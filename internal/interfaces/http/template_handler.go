package http

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gallery-api/internal/application/dto"
	"github.com/jhoicas/gallery-api/internal/application/usecase"
	"github.com/jhoicas/gallery-api/pkg/token"
)

// TemplateHandler endpoints de plantillas como configuraciones del pipeline.
type TemplateHandler struct {
	p  *Pipeline
	uc *usecase.TemplateUseCase
}

// NewTemplateHandler construye el handler.
func NewTemplateHandler(p *Pipeline, uc *usecase.TemplateUseCase) *TemplateHandler {
	return &TemplateHandler{p: p, uc: uc}
}

// Upsert godoc
// @Summary      Crear o actualizar plantilla
// @Tags         templates
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpsertTemplateRequest  true  "Datos de la plantilla; templateId presente = update"
// @Success      200   {object}  dto.TemplateResponse
// @Success      201   {object}  dto.TemplateResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/templates [post]
func (h *TemplateHandler) Upsert() fiber.Handler {
	return Handle(h.p, Endpoint[dto.UpsertTemplateRequest]{
		Name:           "upsert-template",
		RequiresAuth:   true,
		RequiredGroups: []string{GroupAdmin},
		DeniedMessage:  "Access denied. Admin privileges required.",
		Parse: func(c *fiber.Ctx) (dto.UpsertTemplateRequest, error) {
			var in dto.UpsertTemplateRequest
			if err := c.BodyParser(&in); err != nil {
				return in, fmt.Errorf("parse body: %w", err)
			}
			if in.Name == "" {
				return in, fmt.Errorf("name is required")
			}
			return in, nil
		},
		Execute: func(ctx context.Context, in dto.UpsertTemplateRequest, caller *token.ClaimSet) (any, error) {
			return h.uc.Upsert(in)
		},
		// Con id del llamador es update (200); sin id, insert (201).
		SuccessStatus: func(in dto.UpsertTemplateRequest) int {
			if in.TemplateID != "" {
				return fiber.StatusOK
			}
			return fiber.StatusCreated
		},
	})
}

// List godoc
// @Summary      Listar plantillas (requiere autenticación, sin grupo)
// @Tags         templates
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.TemplateResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/templates [get]
func (h *TemplateHandler) List() fiber.Handler {
	return Handle(h.p, Endpoint[struct{}]{
		Name:         "get-templates",
		RequiresAuth: true, // cualquier llamador autenticado; sin filtro de grupos
		Parse: func(c *fiber.Ctx) (struct{}, error) {
			return struct{}{}, nil
		},
		Execute: func(ctx context.Context, _ struct{}, _ *token.ClaimSet) (any, error) {
			return h.uc.List()
		},
	})
}

// GetByID godoc
// @Summary      Obtener plantilla por ID (público)
// @Tags         templates
// @Produce      json
// @Param        templateId  path  string  true  "ID de la plantilla"
// @Success      200  {object}  dto.TemplateResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/templates/{templateId} [get]
func (h *TemplateHandler) GetByID() fiber.Handler {
	return Handle(h.p, Endpoint[string]{
		Name: "get-template",
		Parse: func(c *fiber.Ctx) (string, error) {
			id := c.Params("templateId")
			if id == "" {
				return "", fmt.Errorf("templateId is required")
			}
			return id, nil
		},
		Execute: func(ctx context.Context, id string, _ *token.ClaimSet) (any, error) {
			return h.uc.GetByID(id)
		},
	})
}
