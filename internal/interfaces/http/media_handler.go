package http

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gallery-api/internal/application/dto"
	"github.com/jhoicas/gallery-api/internal/application/usecase"
	"github.com/jhoicas/gallery-api/pkg/token"
)

// MediaHandler endpoints de media como configuraciones del pipeline. La
// exigencia de autenticación de ambos endpoints varía por despliegue y llega
// como flag de configuración en lugar de estar fijada en el código.
type MediaHandler struct {
	p  *Pipeline
	uc *usecase.MediaUseCase
}

// NewMediaHandler construye el handler.
func NewMediaHandler(p *Pipeline, uc *usecase.MediaUseCase) *MediaHandler {
	return &MediaHandler{p: p, uc: uc}
}

// Upload godoc
// @Summary      Subir media a una categoría
// @Tags         media
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UploadMediaRequest  true  "Imagen (data URI), categoryId y metadata opcional"
// @Success      201   {object}  dto.UploadMediaResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/media [post]
func (h *MediaHandler) Upload(requiresAuth bool) fiber.Handler {
	return Handle(h.p, Endpoint[dto.UploadMediaRequest]{
		Name:           "upload-media",
		RequiresAuth:   requiresAuth,
		RequiredGroups: []string{GroupAdmin, GroupUsers},
		DeniedMessage:  "Access denied. Must be a member of Admin or Users group.",
		Parse: func(c *fiber.Ctx) (dto.UploadMediaRequest, error) {
			var in dto.UploadMediaRequest
			if err := c.BodyParser(&in); err != nil {
				return in, fmt.Errorf("parse body: %w", err)
			}
			if in.Image == "" || in.CategoryID == "" {
				return in, fmt.Errorf("image and categoryId are required")
			}
			return in, nil
		},
		Execute: func(ctx context.Context, in dto.UploadMediaRequest, caller *token.ClaimSet) (any, error) {
			return h.uc.Upload(ctx, in, caller)
		},
		SuccessStatus: func(dto.UploadMediaRequest) int { return fiber.StatusCreated },
	})
}

// GetByCategory godoc
// @Summary      Listar media de una categoría con URLs firmadas
// @Tags         media
// @Produce      json
// @Param        categoryId  path  string  true  "ID de la categoría"
// @Success      200  {array}  dto.MediaItemResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/media/{categoryId} [get]
func (h *MediaHandler) GetByCategory(requiresAuth bool) fiber.Handler {
	return Handle(h.p, Endpoint[string]{
		Name:         "get-media-by-category",
		RequiresAuth: requiresAuth,
		Parse: func(c *fiber.Ctx) (string, error) {
			id := c.Params("categoryId")
			if id == "" {
				return "", fmt.Errorf("categoryId is required")
			}
			return id, nil
		},
		Execute: func(ctx context.Context, categoryID string, _ *token.ClaimSet) (any, error) {
			return h.uc.ListByCategory(ctx, categoryID)
		},
	})
}
