package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/gallery-api/internal/domain/entity"
	"github.com/jhoicas/gallery-api/internal/domain/repository"
)

// Asegura que CategoryRepo implementa repository.CategoryRepository.
var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación del puerto CategoryRepository sobre PostgreSQL.
type CategoryRepo struct {
	pool *pgxpool.Pool
}

// NewCategoryRepository construye el adaptador de persistencia para categorías.
func NewCategoryRepository(pool *pgxpool.Pool) *CategoryRepo {
	return &CategoryRepo{pool: pool}
}

// Create persiste una nueva categoría. template_id vacío se guarda como NULL.
func (r *CategoryRepo) Create(category *entity.Category) error {
	query := `
		INSERT INTO categories (category_id, name, description, template_id, created_at)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5)`
	_, err := r.pool.Exec(context.Background(), query,
		category.CategoryID, category.Name, category.Description,
		category.TemplateID, category.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

// List devuelve todas las categorías (scan completo, sin orden garantizado).
func (r *CategoryRepo) List() ([]*entity.Category, error) {
	query := `
		SELECT category_id, name, description, COALESCE(template_id, ''), created_at
		FROM categories`
	rows, err := r.pool.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var list []*entity.Category
	for rows.Next() {
		var c entity.Category
		if err := rows.Scan(&c.CategoryID, &c.Name, &c.Description, &c.TemplateID, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		list = append(list, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate categories: %w", err)
	}
	return list, nil
}
