package loader

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/DRSN-tech/store-api/pkg/e"
	"github.com/jimlawless/whereami"
)

const s3Scheme = "s3://"

// ObjectOpener открывает объект в объектном хранилище.
type ObjectOpener interface {
	Open(ctx context.Context, bucket, key string) (io.ReadCloser, error)
}

// OpenSource открывает локальный файл или объект вида s3://bucket/key.
// objects может быть nil, если хранилище не настроено.
func OpenSource(ctx context.Context, path string, objects ObjectOpener) (io.ReadCloser, error) {
	if !strings.HasPrefix(path, s3Scheme) {
		f, err := os.Open(path)
		if err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
		return f, nil
	}

	bucket, key, err := ParseObjectURL(path)
	if err != nil {
		return nil, err
	}

	if objects == nil {
		return nil, e.Wrap(whereami.WhereAmI(), fmt.Errorf("%s: object storage is not configured (MINIO_ENDPOINT)", path))
	}

	rc, err := objects.Open(ctx, bucket, key)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return rc, nil
}

// ParseObjectURL разбирает s3://bucket/key.
func ParseObjectURL(path string) (string, string, error) {
	bucket, key, ok := strings.Cut(strings.TrimPrefix(path, s3Scheme), "/")
	if !ok || bucket == "" || key == "" {
		return "", "", e.Wrap(whereami.WhereAmI(), fmt.Errorf("invalid object url %q, expected s3://bucket/key", path))
	}

	return bucket, key, nil
}

// IsObjectURL сообщает, указывает ли путь на объектное хранилище.
func IsObjectURL(path string) bool {
	return strings.HasPrefix(path, s3Scheme)
}
