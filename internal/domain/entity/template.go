package entity

import (
	"encoding/json"
	"time"
)

// Template esquema de campos para las categorías. Fields es un esquema opaco que
// se persiste y devuelve sin interpretar. CreatedAt se fija una vez y se preserva
// en cada upsert; UpdatedAt cambia en cada escritura.
type Template struct {
	TemplateID  string
	Name        string
	Description string
	Fields      json.RawMessage
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
