package dto

import "time"

// CreateCategoryRequest cuerpo de POST /api/categories. TemplateID es opcional;
// cuando viene, la plantilla debe existir antes de aceptar la escritura.
type CreateCategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	TemplateID  string `json:"templateId"`
}

// CreateCategoryResponse respuesta de creación (201).
type CreateCategoryResponse struct {
	CategoryID  string `json:"categoryId"`
	TemplateID  string `json:"templateId,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Message     string `json:"message"`
}

// CategoryResponse un registro de categoría en listados.
type CategoryResponse struct {
	CategoryID  string    `json:"categoryId"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	TemplateID  string    `json:"templateId,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}
