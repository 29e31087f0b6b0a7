package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/gallery-api/internal/domain/entity"
	"github.com/jhoicas/gallery-api/internal/domain/repository"
)

// Asegura que MediaRepo implementa repository.MediaRepository.
var _ repository.MediaRepository = (*MediaRepo)(nil)

// MediaRepo implementación del puerto MediaRepository sobre PostgreSQL.
// metadata se guarda como JSONB opaco; la tabla tiene índice por category_id.
type MediaRepo struct {
	pool *pgxpool.Pool
}

// NewMediaRepository construye el adaptador de persistencia para media.
func NewMediaRepository(pool *pgxpool.Pool) *MediaRepo {
	return &MediaRepo{pool: pool}
}

// Create persiste el registro de un media ya subido al blob store.
func (r *MediaRepo) Create(item *entity.MediaItem) error {
	meta, err := json.Marshal(item.Metadata)
	if err != nil {
		return fmt.Errorf("marshal metadata: %w", err)
	}
	query := `
		INSERT INTO media_items (media_id, category_id, s3_key, metadata, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err = r.pool.Exec(context.Background(), query,
		item.MediaID, item.CategoryID, item.S3Key, meta, item.CreatedBy, item.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert media item: %w", err)
	}
	return nil
}

// ListByCategory devuelve los media de una categoría usando el índice por category_id.
func (r *MediaRepo) ListByCategory(categoryID string) ([]*entity.MediaItem, error) {
	query := `
		SELECT media_id, category_id, s3_key, metadata, created_by, created_at
		FROM media_items WHERE category_id = $1`
	rows, err := r.pool.Query(context.Background(), query, categoryID)
	if err != nil {
		return nil, fmt.Errorf("list media by category: %w", err)
	}
	defer rows.Close()

	var list []*entity.MediaItem
	for rows.Next() {
		var m entity.MediaItem
		var meta []byte
		if err := rows.Scan(&m.MediaID, &m.CategoryID, &m.S3Key, &meta, &m.CreatedBy, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan media item: %w", err)
		}
		if len(meta) > 0 {
			if err := json.Unmarshal(meta, &m.Metadata); err != nil {
				return nil, fmt.Errorf("unmarshal metadata: %w", err)
			}
		}
		list = append(list, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate media items: %w", err)
	}
	return list, nil
}
