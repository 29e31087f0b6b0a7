package usecase

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/gallery-api/internal/application/dto"
	"github.com/jhoicas/gallery-api/internal/domain/entity"
	"github.com/jhoicas/gallery-api/internal/domain/repository"
	"github.com/jhoicas/gallery-api/internal/domain/storage"
	"github.com/jhoicas/gallery-api/pkg/token"
)

// MediaUseCase casos de uso de media: subida (blob primero, registro después) y
// listado por categoría con URL firmada fresca por ítem.
type MediaUseCase struct {
	repo         repository.MediaRepository
	blobs        storage.BlobStore
	signedURLTTL time.Duration
}

// NewMediaUseCase construye el caso de uso.
func NewMediaUseCase(repo repository.MediaRepository, blobs storage.BlobStore, signedURLTTL time.Duration) *MediaUseCase {
	return &MediaUseCase{repo: repo, blobs: blobs, signedURLTTL: signedURLTTL}
}

// Upload decodifica el data URI, sube el binario y persiste el registro, en ese
// orden y sin rollback: si la segunda escritura falla queda un blob huérfano sin
// registro (comportamiento documentado, no se compensa). caller puede ser nil en
// despliegues donde el endpoint no exige autenticación.
func (uc *MediaUseCase) Upload(ctx context.Context, in dto.UploadMediaRequest, caller *token.ClaimSet) (*dto.UploadMediaResponse, error) {
	data, err := decodeDataURI(in.Image)
	if err != nil {
		return nil, err
	}

	mediaID := uuid.New().String()
	key := entity.MediaKey(in.CategoryID, mediaID)

	if err := uc.blobs.Put(ctx, key, data, "image/jpeg"); err != nil {
		return nil, err
	}

	item := &entity.MediaItem{
		MediaID:    mediaID,
		CategoryID: in.CategoryID,
		S3Key:      key,
		Metadata:   in.Metadata,
		CreatedAt:  time.Now().UTC(),
	}
	if caller != nil {
		item.CreatedBy = caller.Subject
	}
	if err := uc.repo.Create(item); err != nil {
		return nil, err
	}

	return &dto.UploadMediaResponse{
		MediaID: mediaID,
		Message: "Media uploaded successfully",
	}, nil
}

// ListByCategory consulta el índice por categoría y genera una URL firmada fresca
// por registro. Las generaciones no dependen entre sí y se lanzan concurrentes;
// el join es todo-o-nada: un solo fallo falla la petición completa.
func (uc *MediaUseCase) ListByCategory(ctx context.Context, categoryID string) ([]dto.MediaItemResponse, error) {
	list, err := uc.repo.ListByCategory(categoryID)
	if err != nil {
		return nil, err
	}

	items := make([]dto.MediaItemResponse, len(list))
	g, gctx := errgroup.WithContext(ctx)
	for i, m := range list {
		i, m := i, m
		g.Go(func() error {
			url, err := uc.blobs.SignedGetURL(gctx, m.S3Key, uc.signedURLTTL)
			if err != nil {
				return err
			}
			items[i] = toMediaItemResponse(m, url)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return items, nil
}

// toMediaItemResponse mezcla metadata con los campos fijos del registro; los
// campos fijos ganan en caso de colisión de claves.
func toMediaItemResponse(m *entity.MediaItem, signedURL string) dto.MediaItemResponse {
	item := make(dto.MediaItemResponse, len(m.Metadata)+6)
	for k, v := range m.Metadata {
		item[k] = v
	}
	item["mediaId"] = m.MediaID
	item["categoryId"] = m.CategoryID
	item["s3Key"] = m.S3Key
	item["createdAt"] = m.CreatedAt
	if m.CreatedBy != "" {
		item["createdBy"] = m.CreatedBy
	}
	item["signedUrl"] = signedURL
	return item
}

// decodeDataURI extrae y decodifica el payload base64 de un data URI
// "data:image/jpeg;base64,...".
func decodeDataURI(s string) ([]byte, error) {
	parts := strings.SplitN(s, ",", 2)
	if len(parts) != 2 {
		return nil, fmt.Errorf("imagen no es un data URI válido")
	}
	data, err := base64.StdEncoding.DecodeString(parts[1])
	if err != nil {
		return nil, fmt.Errorf("decodificar imagen: %w", err)
	}
	return data, nil
}
