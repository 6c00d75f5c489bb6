package filestorage

import (
	"context"
	"fmt"
	"time"

	"github.com/SeakMengs/name2ecert/internal/config"
	"github.com/SeakMengs/name2ecert/internal/util"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"
)

func NewMinioClient(cfg *config.MinioConfig) (*minio.Client, error) {
	return minio.New(cfg.ENDPOINT, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.ACCESS_KEY, cfg.SECRET_KEY, ""),
		Secure: cfg.USE_SSL,
		Region: "us-east-1",
	})
}

type ExportedFile struct {
	ID         string    `json:"id"`
	Bucket     string    `json:"bucket"`
	ObjectName string    `json:"objectName"`
	Size       int64     `json:"size"`
	URL        string    `json:"url"`
	ExpiresAt  time.Time `json:"expiresAt"`
}

// Exporter publishes a generated file and returns a link to download it.
type Exporter interface {
	Export(ctx context.Context, filename, contentType string, data []byte) (*ExportedFile, error)
}

type MinioExporter struct {
	s3     *minio.Client
	bucket string
	expiry time.Duration
	logger *zap.SugaredLogger
}

func NewMinioExporter(s3 *minio.Client, cfg config.MinioConfig, logger *zap.SugaredLogger) *MinioExporter {
	return &MinioExporter{
		s3:     s3,
		bucket: cfg.BUCKET,
		expiry: cfg.PRESIGN_EXPIRY,
		logger: logger,
	}
}

// Export uploads data to exports/<id>/<filename> and presigns a download url for it.
func (e *MinioExporter) Export(ctx context.Context, filename, contentType string, data []byte) (*ExportedFile, error) {
	id, err := util.GenerateExportID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate export id: %w", err)
	}

	info, err := util.UploadBytesToS3(ctx, data, filename, &util.FileUploadOptions{
		DirectoryPath: util.GetExportDirectoryPath(id),
		Bucket:        e.bucket,
		ContentType:   contentType,
		S3:            e.s3,
	})
	if err != nil {
		return nil, err
	}

	url, err := util.PresignedDownloadURL(ctx, e.s3, info.Bucket, info.Key, filename, e.expiry)
	if err != nil {
		return nil, err
	}

	e.logger.Infow("Exported file", "bucket", info.Bucket, "object", info.Key, "size", info.Size)

	return &ExportedFile{
		ID:         id,
		Bucket:     info.Bucket,
		ObjectName: info.Key,
		Size:       info.Size,
		URL:        url,
		ExpiresAt:  time.Now().Add(e.expiry),
	}, nil
}
