package store

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// localizeDataset resolves a dataset path to a local file. Local paths
// pass through; s3://bucket/key URLs are downloaded to a temp file
// using the default AWS credential chain.
func localizeDataset(ctx context.Context, path string) (string, error) {
	if !strings.HasPrefix(path, "s3://") {
		return path, nil
	}

	parsed, err := url.Parse(path)
	if err != nil {
		return "", fmt.Errorf("store: invalid s3 url %s: %w", path, err)
	}
	bucket := parsed.Host
	key := strings.TrimPrefix(parsed.Path, "/")
	if bucket == "" || key == "" {
		return "", fmt.Errorf("store: s3 url %s must be s3://bucket/key", path)
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return "", fmt.Errorf("store: loading AWS config: %w", err)
	}
	client := s3.NewFromConfig(cfg)

	object, err := client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return "", fmt.Errorf("store: fetching %s: %w", path, err)
	}
	defer object.Body.Close()

	tmp, err := os.CreateTemp("", "arms-dashboard-*.db")
	if err != nil {
		return "", fmt.Errorf("store: creating temp dataset file: %w", err)
	}
	if _, err := io.Copy(tmp, object.Body); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", fmt.Errorf("store: downloading %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", err
	}
	return tmp.Name(), nil
}
