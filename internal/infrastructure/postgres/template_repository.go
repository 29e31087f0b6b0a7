package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/gallery-api/internal/domain/entity"
	"github.com/jhoicas/gallery-api/internal/domain/repository"
)

// Asegura que TemplateRepo implementa repository.TemplateRepository.
var _ repository.TemplateRepository = (*TemplateRepo)(nil)

// TemplateRepo implementación del puerto TemplateRepository sobre PostgreSQL.
type TemplateRepo struct {
	pool *pgxpool.Pool
}

// NewTemplateRepository construye el adaptador de persistencia para plantillas.
func NewTemplateRepository(pool *pgxpool.Pool) *TemplateRepo {
	return &TemplateRepo{pool: pool}
}

// Upsert inserta o sobreescribe la plantilla por template_id. En el conflicto no se
// toca created_at, con lo que el valor original queda preservado entre escrituras.
// Escrituras concurrentes del mismo id resuelven last-write-wins (semántica aceptada).
func (r *TemplateRepo) Upsert(template *entity.Template) (*entity.Template, error) {
	query := `
		INSERT INTO templates (template_id, name, description, fields, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (template_id) DO UPDATE
		SET name = EXCLUDED.name,
		    description = EXCLUDED.description,
		    fields = EXCLUDED.fields,
		    updated_at = EXCLUDED.updated_at
		RETURNING template_id, name, description, fields, created_at, updated_at`
	var t entity.Template
	err := r.pool.QueryRow(context.Background(), query,
		template.TemplateID, template.Name, template.Description,
		template.Fields, template.CreatedAt, template.UpdatedAt,
	).Scan(&t.TemplateID, &t.Name, &t.Description, &t.Fields, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("upsert template: %w", err)
	}
	return &t, nil
}

// GetByID obtiene una plantilla por ID. Devuelve nil, nil si no existe.
func (r *TemplateRepo) GetByID(id string) (*entity.Template, error) {
	query := `
		SELECT template_id, name, description, fields, created_at, updated_at
		FROM templates WHERE template_id = $1`
	var t entity.Template
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&t.TemplateID, &t.Name, &t.Description, &t.Fields, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get template: %w", err)
	}
	return &t, nil
}

// List devuelve todas las plantillas (scan completo, sin orden garantizado).
func (r *TemplateRepo) List() ([]*entity.Template, error) {
	query := `
		SELECT template_id, name, description, fields, created_at, updated_at
		FROM templates`
	rows, err := r.pool.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list templates: %w", err)
	}
	defer rows.Close()

	var list []*entity.Template
	for rows.Next() {
		var t entity.Template
		if err := rows.Scan(&t.TemplateID, &t.Name, &t.Description, &t.Fields, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan template: %w", err)
		}
		list = append(list, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate templates: %w", err)
	}
	return list, nil
}
