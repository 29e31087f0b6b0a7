package repository

import "github.com/jhoicas/gallery-api/internal/domain/entity"

// TemplateRepository define el puerto de persistencia para Template (DIP).
type TemplateRepository interface {
	// Upsert inserta o sobreescribe por TemplateID y devuelve el registro final
	// con CreatedAt preservado cuando ya existía.
	Upsert(template *entity.Template) (*entity.Template, error)
	// GetByID devuelve nil, nil si no existe.
	GetByID(id string) (*entity.Template, error)
	List() ([]*entity.Template, error)
}
