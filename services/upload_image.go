package services

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// ImageUploader stores cover images in an S3 bucket and hands back the public
// URL. Failures surface to the caller raw; uploads are never retried.
type ImageUploader struct {
	client *s3.Client
	bucket string
	region string
}

func NewImageUploader(ctx context.Context, bucket, region string) (*ImageUploader, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("loading AWS config: %w", err)
	}

	return &ImageUploader{
		client: s3.NewFromConfig(cfg),
		bucket: bucket,
		region: region,
	}, nil
}

// Upload writes the image under a timestamped key in the quickk/ folder and
// returns its public URL.
func (u *ImageUploader) Upload(ctx context.Context, filename string, body io.Reader) (string, error) {
	key := fmt.Sprintf("quickk/quickk_%d_%s", time.Now().UnixMilli(), filepath.Base(filename))

	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(u.bucket),
		Key:    aws.String(key),
		Body:   body,
	})
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", u.bucket, u.region, key), nil
}
