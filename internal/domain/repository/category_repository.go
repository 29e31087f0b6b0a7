package repository

import "github.com/jhoicas/gallery-api/internal/domain/entity"

// CategoryRepository define el puerto de persistencia para Category (DIP).
// Las categorías nunca se actualizan ni se borran desde esta API.
type CategoryRepository interface {
	Create(category *entity.Category) error
	List() ([]*entity.Category, error)
}
