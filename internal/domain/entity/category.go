package entity

import "time"

// Category agrupa los media de la galería. TemplateID es opcional y, cuando viene,
// debe referenciar un Template existente en el momento de la creación (se valida
// con una lectura previa; no hay enforcement posterior).
type Category struct {
	CategoryID  string
	Name        string
	Description string
	TemplateID  string // opcional
	CreatedAt   time.Time
}
