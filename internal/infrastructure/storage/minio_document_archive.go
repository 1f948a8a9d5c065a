package storage

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"

	"vendor_registration/internal/domain/entities"
	"vendor_registration/internal/usecase/interfaces"
	"vendor_registration/pkg/logger"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"
)

// MinioDocumentArchive keeps a copy of every registration document in an
// S3-compatible bucket under <recordID>/<file name>.
type MinioDocumentArchive struct {
	client *minio.Client
	bucket string
}

var _ interfaces.IDocumentArchive = (*MinioDocumentArchive)(nil)

type MinioConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	Region    string
	UseSSL    bool
}

func NewMinioDocumentArchive(cfg MinioConfig) (*MinioDocumentArchive, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}
	return &MinioDocumentArchive{client: client, bucket: cfg.Bucket}, nil
}

// EnsureBucket creates the bucket if it doesn't exist.
func (a *MinioDocumentArchive) EnsureBucket(ctx context.Context) error {
	exists, err := a.client.BucketExists(ctx, a.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket: %w", err)
	}
	if !exists {
		if err := a.client.MakeBucket(ctx, a.bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}
	}
	return nil
}

func (a *MinioDocumentArchive) Archive(ctx context.Context, recordID string, doc entities.Document) error {
	name := ObjectName(recordID, doc.Name)
	contentType := doc.MimeType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err := a.client.PutObject(ctx, a.bucket, name, bytes.NewReader(doc.Content), int64(len(doc.Content)), minio.PutObjectOptions{
		ContentType:  contentType,
		UserMetadata: map[string]string{"record-id": recordID},
	})
	if err != nil {
		return fmt.Errorf("failed to archive %s: %w", name, err)
	}

	logger.FromContext(ctx).Debug("[archive][minio] document archived",
		zap.String("bucket", a.bucket), zap.String("object", name))
	return nil
}

// ObjectName builds the object key for a document. Path elements in the
// uploaded file name are dropped.
func ObjectName(recordID, fileName string) string {
	base := path.Base(strings.ReplaceAll(fileName, "\\", "/"))
	if base == "." || base == "/" || base == "" {
		base = "document"
	}
	return recordID + "/" + base
}
