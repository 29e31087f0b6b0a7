package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/gallery-api/internal/application/dto"
	"github.com/jhoicas/gallery-api/internal/domain"
	"github.com/jhoicas/gallery-api/internal/domain/entity"
	"github.com/jhoicas/gallery-api/internal/domain/repository"
)

// TemplateUseCase casos de uso de plantillas: upsert (solo Admin), detalle y listado.
type TemplateUseCase struct {
	repo repository.TemplateRepository
}

// NewTemplateUseCase construye el caso de uso.
func NewTemplateUseCase(repo repository.TemplateRepository) *TemplateUseCase {
	return &TemplateUseCase{repo: repo}
}

// Upsert inserta o actualiza según la presencia de TemplateID en la petición.
// Sin id: se genera uno nuevo y createdAt = updatedAt = ahora. Con id: el store
// preserva createdAt y solo avanza updatedAt.
func (uc *TemplateUseCase) Upsert(in dto.UpsertTemplateRequest) (*dto.TemplateResponse, error) {
	now := time.Now().UTC()
	template := &entity.Template{
		TemplateID:  in.TemplateID,
		Name:        in.Name,
		Description: in.Description,
		Fields:      in.Fields,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	message := "Template updated successfully"
	if template.TemplateID == "" {
		template.TemplateID = uuid.New().String()
		message = "Template created successfully"
	}
	stored, err := uc.repo.Upsert(template)
	if err != nil {
		return nil, err
	}
	resp := toTemplateResponse(stored)
	resp.Message = message
	return resp, nil
}

// GetByID obtiene una plantilla; 404 si no existe.
func (uc *TemplateUseCase) GetByID(id string) (*dto.TemplateResponse, error) {
	t, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domain.NewStatusError(404, "Template not found")
	}
	return toTemplateResponse(t), nil
}

// List devuelve todas las plantillas.
func (uc *TemplateUseCase) List() ([]dto.TemplateResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.TemplateResponse, 0, len(list))
	for _, t := range list {
		items = append(items, *toTemplateResponse(t))
	}
	return items, nil
}

func toTemplateResponse(t *entity.Template) *dto.TemplateResponse {
	if t == nil {
		return nil
	}
	return &dto.TemplateResponse{
		TemplateID:  t.TemplateID,
		Name:        t.Name,
		Description: t.Description,
		Fields:      t.Fields,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}
