package filestorage

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"

	"bygg-tools-backend/config"
	s3client "bygg-tools-backend/s3"
)

type Provider interface {
	UploadFile(ctx context.Context, companyID, objectKey string, fileReader io.Reader, fileSize int64, contentType string) error
	GetFile(ctx context.Context, companyID, objectKey string) ([]byte, error)
	DeleteFile(ctx context.Context, companyID, objectKey string) error
	MakeCompanyBucket(ctx context.Context, companyID string) error
}

var Instance Provider

func NewHandler() {
	Instance = &impl{
		s3client: s3client.Client,
	}
}

type impl struct {
	s3client *minio.Client
}

func (i impl) UploadFile(ctx context.Context, companyID, objectKey string, fileReader io.Reader, fileSize int64, contentType string) error {
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	bucket := i.getCompanyBucketName(companyID)
	_, err := i.s3client.PutObject(ctx, bucket, objectKey, fileReader, fileSize, minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return errors.Wrap(err, "file upload failed")
	}
	return nil
}

func (i impl) GetFile(ctx context.Context, companyID, objectKey string) ([]byte, error) {
	bucket := i.getCompanyBucketName(companyID)
	object, err := i.s3client.GetObject(ctx, bucket, objectKey, minio.GetObjectOptions{})
	if err != nil {
		return nil, errors.Wrap(err, "file download failed")
	}
	defer object.Close()
	buf := new(bytes.Buffer)
	if _, err = io.Copy(buf, object); err != nil {
		return nil, errors.Wrap(err, "file read failed")
	}
	return buf.Bytes(), nil
}

func (i impl) DeleteFile(ctx context.Context, companyID, objectKey string) error {
	bucket := i.getCompanyBucketName(companyID)
	return i.s3client.RemoveObject(ctx, bucket, objectKey, minio.RemoveObjectOptions{})
}

func (i impl) MakeCompanyBucket(ctx context.Context, companyID string) error {
	bucketName := i.getCompanyBucketName(companyID)
	location := "us-east-1"
	exists, err := i.s3client.BucketExists(ctx, bucketName)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	err = i.s3client.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{Region: location})
	if err != nil {
		return err
	}
	return nil
}

func (i impl) getCompanyBucketName(companyID string) string {
	return fmt.Sprintf("%s-%s", config.Conf.S3.BucketName, companyID)
}
