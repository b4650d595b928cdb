package utils

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Uploader pushes product images to S3 and returns their public URLs.
type Uploader struct {
	uploader *manager.Uploader
	bucket   string
}

func NewUploader(ctx context.Context, bucket string) (*Uploader, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("error loading AWS config: %w", err)
	}

	client := s3.NewFromConfig(cfg)
	return &Uploader{uploader: manager.NewUploader(client), bucket: bucket}, nil
}

// UploadImage stores one image under a unique key and returns its URL.
func (u *Uploader) UploadImage(ctx context.Context, productID uint, filename, contentType string, body io.Reader) (string, error) {
	// Timestamped key prevents overwrites between uploads of the same
	// filename.
	key := fmt.Sprintf("%d-%s-%s", productID, time.Now().Format("20060102150405"), filename)

	result, err := u.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        body,
		ACL:         "public-read",
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", err
	}
	return result.Location, nil
}
