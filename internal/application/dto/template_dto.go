package dto

import (
	"encoding/json"
	"time"
)

// UpsertTemplateRequest cuerpo de POST /api/templates. La presencia de TemplateID
// selecciona update-or-insert-con-ese-id; su ausencia, insert con id nuevo.
// Fields es un esquema opaco que se persiste sin interpretar.
type UpsertTemplateRequest struct {
	TemplateID  string          `json:"templateId"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Fields      json.RawMessage `json:"fields"`
}

// TemplateResponse registro de plantilla; Message solo viene en escrituras.
type TemplateResponse struct {
	TemplateID  string          `json:"templateId"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Fields      json.RawMessage `json:"fields"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
	Message     string          `json:"message,omitempty"`
}
