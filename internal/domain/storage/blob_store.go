package storage

import (
	"context"
	"time"
)

// BlobStore puerto del almacén de binarios (S3 o compatible). Las URLs firmadas
// se generan frescas en cada lectura; este núcleo nunca las cachea ni reutiliza.
type BlobStore interface {
	Put(ctx context.Context, key string, data []byte, contentType string) error
	SignedGetURL(ctx context.Context, key string, expires time.Duration) (string, error)
}
