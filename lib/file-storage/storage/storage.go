package storage

import (
	"bytes"
	"context"
	"io"

	"talentflow-backend/config"

	"github.com/minio/minio-go/v7"
)

type Provider interface {
	Upload(ctx context.Context, objectName, contentType string, data []byte) error
	Download(ctx context.Context, objectName string) ([]byte, error)
	Remove(ctx context.Context, objectName string) error
}

func NewInstance(s3client *minio.Client) Provider {
	return &impl{
		s3client: s3client,
	}
}

type impl struct {
	s3client *minio.Client
}

func (i impl) Upload(ctx context.Context, objectName, contentType string, data []byte) error {
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	_, err := i.s3client.PutObject(ctx, config.Conf.S3.BucketName, objectName,
		bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return err
	}
	return nil
}

func (i impl) Download(ctx context.Context, objectName string) ([]byte, error) {
	object, err := i.s3client.GetObject(ctx, config.Conf.S3.BucketName, objectName, minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}
	defer object.Close()
	return io.ReadAll(object)
}

func (i impl) Remove(ctx context.Context, objectName string) error {
	return i.s3client.RemoveObject(ctx, config.Conf.S3.BucketName, objectName, minio.RemoveObjectOptions{})
}
