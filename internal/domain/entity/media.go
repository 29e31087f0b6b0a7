package entity

import (
	"fmt"
	"time"
)

// MediaItem registro de un binario subido a la galería. El binario vive en el blob
// store bajo S3Key; el registro guarda solo el puntero. Metadata es un mapa opaco
// aportado por el cliente que se mezcla en la respuesta.
type MediaItem struct {
	MediaID    string
	CategoryID string
	S3Key      string
	Metadata   map[string]any
	CreatedBy  string // sujeto del token verificado; vacío si el despliegue no exige auth
	CreatedAt  time.Time
}

// MediaKey deriva la clave del blob a partir de (categoryId, mediaId).
// El orden de escritura es siempre blob primero y registro después, así que un
// registro nunca es visible sin su blob.
func MediaKey(categoryID, mediaID string) string {
	return fmt.Sprintf("gallery-images/%s/%s", categoryID, mediaID)
}
