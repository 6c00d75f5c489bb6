package util

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"path"
	"time"

	"github.com/minio/minio-go/v7"
)

func GetExportDirectoryPath(exportId string) string {
	return fmt.Sprintf("exports/%s", exportId)
}

func ToExportDirectoryPath(exportId string, filename string) string {
	return path.Join(GetExportDirectoryPath(exportId), path.Base(filename))
}

func createBucketIfNotExists(ctx context.Context, s3 *minio.Client, bucketName string) error {
	exists, err := s3.BucketExists(ctx, bucketName)
	if err != nil {
		return err
	}

	if !exists {
		err = s3.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{})
		if err != nil {
			return err
		}
	}

	return nil
}

type FileUploadOptions struct {
	// Add a prefix to the file name
	// For example, if the file name is "certificates.zip" and the prefix is "exports/abc",
	// the resulting name will be "exports/abc/certificates.zip"
	DirectoryPath string
	UniquePrefix  bool
	Bucket        string
	ContentType   string
	S3            *minio.Client
}

// UploadBytesToS3 stores data under filename and returns the upload info. The object key is
// derived from fuo.
func UploadBytesToS3(ctx context.Context, data []byte, filename string, fuo *FileUploadOptions) (minio.UploadInfo, error) {
	if err := createBucketIfNotExists(ctx, fuo.S3, fuo.Bucket); err != nil {
		return minio.UploadInfo{}, fmt.Errorf("failed to create bucket: %w", err)
	}

	objectName := prepareFileName(filename, fuo)

	info, err := fuo.S3.PutObject(
		ctx,
		fuo.Bucket,
		objectName,
		bytes.NewReader(data),
		int64(len(data)),
		minio.PutObjectOptions{
			ContentType: fuo.ContentType,
		},
	)
	if err != nil {
		return minio.UploadInfo{}, fmt.Errorf("failed to upload file to S3: %w", err)
	}

	return info, nil
}

// PresignedDownloadURL returns a time limited GET url that downloads the object as
// downloadName.
func PresignedDownloadURL(ctx context.Context, s3 *minio.Client, bucket, objectName, downloadName string, expiry time.Duration) (string, error) {
	params := url.Values{}
	if downloadName != "" {
		params.Set("response-content-disposition", fmt.Sprintf(`attachment; filename="%s"`, downloadName))
	}

	presignedURL, err := s3.PresignedGetObject(ctx, bucket, objectName, expiry, params)
	if err != nil {
		return "", fmt.Errorf("failed to presign %s: %w", objectName, err)
	}

	return presignedURL.String(), nil
}

// Generates the final object name with uniqueness and prefix
func prepareFileName(originalName string, fuo *FileUploadOptions) string {
	fileName := path.Base(originalName)

	if fuo != nil {
		if fuo.UniquePrefix {
			fileName = AddUniquePrefixToFileName(fileName)
		}

		if fuo.DirectoryPath != "" {
			fileName = path.Join(fuo.DirectoryPath, fileName)
		}
	}

	return fileName
}
