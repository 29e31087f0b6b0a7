package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/gallery-api/internal/application/dto"
	"github.com/jhoicas/gallery-api/internal/domain"
	"github.com/jhoicas/gallery-api/internal/domain/entity"
	"github.com/jhoicas/gallery-api/internal/domain/repository"
)

// CategoryUseCase casos de uso de categorías: creación (solo Admin) y listado
// público. Las categorías no se actualizan ni se borran desde esta API.
type CategoryUseCase struct {
	repo      repository.CategoryRepository
	templates repository.TemplateRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository, templates repository.TemplateRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo, templates: templates}
}

// TemplateExists precondición de creación: la plantilla referenciada debe existir
// antes de aceptar la escritura. Con id vacío no aplica.
func (uc *CategoryUseCase) TemplateExists(templateID string) error {
	if templateID == "" {
		return nil
	}
	t, err := uc.templates.GetByID(templateID)
	if err != nil {
		return err
	}
	if t == nil {
		return domain.NewStatusError(404, "Template not found")
	}
	return nil
}

// Create crea una nueva categoría con id generado en el servidor.
func (uc *CategoryUseCase) Create(in dto.CreateCategoryRequest) (*dto.CreateCategoryResponse, error) {
	category := &entity.Category{
		CategoryID:  uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		TemplateID:  in.TemplateID,
		CreatedAt:   time.Now().UTC(),
	}
	if err := uc.repo.Create(category); err != nil {
		return nil, err
	}
	return &dto.CreateCategoryResponse{
		CategoryID:  category.CategoryID,
		TemplateID:  category.TemplateID,
		Name:        category.Name,
		Description: category.Description,
		Message:     "Category created successfully",
	}, nil
}

// List devuelve todas las categorías.
func (uc *CategoryUseCase) List() ([]dto.CategoryResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		items = append(items, dto.CategoryResponse{
			CategoryID:  c.CategoryID,
			Name:        c.Name,
			Description: c.Description,
			TemplateID:  c.TemplateID,
			CreatedAt:   c.CreatedAt,
		})
	}
	return items, nil
}
