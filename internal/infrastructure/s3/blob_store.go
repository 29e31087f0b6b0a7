package s3

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/jhoicas/gallery-api/internal/domain/storage"
	"github.com/jhoicas/gallery-api/pkg/config"
)

// Asegura que BlobStore implementa storage.BlobStore.
var _ storage.BlobStore = (*BlobStore)(nil)

// BlobStore adaptador del puerto storage.BlobStore sobre S3 o un backend
// compatible (MinIO vía S3_ENDPOINT). Los clientes del SDK son seguros para uso
// concurrente; se construyen una vez y se comparten entre peticiones.
type BlobStore struct {
	bucket  string
	client  *s3.Client
	presign *s3.PresignClient
}

// New construye el adaptador. Con S3_ACCESS_KEY_ID vacío se usa la cadena de
// credenciales por defecto del SDK (roles, env vars, etc.).
func New(ctx context.Context, cfg config.S3Config) (*BlobStore, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKeyID != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("cargar configuración AWS: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(cfg.BaseEndpoint)
			o.UsePathStyle = true
		}
	})

	return &BlobStore{
		bucket:  cfg.Bucket,
		client:  client,
		presign: s3.NewPresignClient(client),
	}, nil
}

// Put sube el binario bajo la clave dada.
func (b *BlobStore) Put(ctx context.Context, key string, data []byte, contentType string) error {
	_, err := b.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(b.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("put object %s: %w", key, err)
	}
	return nil
}

// SignedGetURL genera una URL GET firmada y fresca para la clave dada.
func (b *BlobStore) SignedGetURL(ctx context.Context, key string, expires time.Duration) (string, error) {
	req, err := b.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(b.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(expires))
	if err != nil {
		return "", fmt.Errorf("presign get %s: %w", key, err)
	}
	return req.URL, nil
}
