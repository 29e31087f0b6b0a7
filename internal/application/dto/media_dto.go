package dto

// UploadMediaRequest cuerpo de POST /api/media. Image es un data URI
// ("data:image/jpeg;base64,...") cuyo payload se decodifica y sube al blob store.
// Metadata es un mapa opaco que se mezcla en el registro persistido.
type UploadMediaRequest struct {
	Image      string         `json:"image"`
	CategoryID string         `json:"categoryId"`
	Metadata   map[string]any `json:"metadata"`
}

// UploadMediaResponse respuesta de subida (201).
type UploadMediaResponse struct {
	MediaID string `json:"mediaId"`
	Message string `json:"message"`
}

// MediaItemResponse un media en listados: los campos del registro (metadata
// incluido, aplanado) más la URL firmada fresca. Se modela como mapa porque
// metadata es de forma libre y se mezcla al mismo nivel que los campos fijos.
type MediaItemResponse map[string]any
