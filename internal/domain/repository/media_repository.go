package repository

import "github.com/jhoicas/gallery-api/internal/domain/entity"

// MediaRepository define el puerto de persistencia para MediaItem (DIP).
// ListByCategory usa el índice secundario por categoría.
type MediaRepository interface {
	Create(item *entity.MediaItem) error
	ListByCategory(categoryID string) ([]*entity.MediaItem, error)
}
