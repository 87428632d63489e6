// Package storage resolves CSV input paths to local files.
//
// Plain paths pass through untouched. Paths of the form s3://bucket/key are
// downloaded to a temporary file and the local path is returned, so the
// rest of the program only ever deals with local files.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
)

const s3Prefix = "s3://"

// IsS3 reports whether path names an S3 object.
func IsS3(path string) bool {
	return strings.HasPrefix(path, s3Prefix)
}

// SplitS3 splits an s3://bucket/key path into bucket and key.
// Returns ok=false when the path is not an S3 path or names no key.
func SplitS3(path string) (bucket, key string, ok bool) {
	if !IsS3(path) {
		return "", "", false
	}
	rest := strings.TrimPrefix(path, s3Prefix)
	bucket, key, found := strings.Cut(rest, "/")
	if !found || bucket == "" || key == "" {
		return "", "", false
	}
	return bucket, key, true
}

// Fetch resolves path to a local file. Local paths are returned as-is; S3
// objects are downloaded to the system temp directory first.
func Fetch(path string) (string, error) {
	if !IsS3(path) {
		return path, nil
	}

	bucket, key, ok := SplitS3(path)
	if !ok {
		return "", fmt.Errorf("invalid S3 path: %s", path)
	}

	f, err := tempFile(key)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer func() { _ = f.Close() }()

	sess := session.Must(session.NewSession())
	downloader := s3manager.NewDownloader(sess)
	if _, err := downloader.Download(f, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	}); err != nil {
		_ = f.Close()
		_ = os.Remove(f.Name())
		return "", fmt.Errorf("failed to download file from S3: %w", err)
	}

	return f.Name(), nil
}

// tempFile creates a uniquely named download target so objects sharing a
// key basename across buckets never collide.
func tempFile(key string) (*os.File, error) {
	return os.CreateTemp("", "csv-tools-*-"+filepath.Base(key))
}
