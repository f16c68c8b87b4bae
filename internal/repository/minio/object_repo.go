package minio

import (
	"context"
	"io"

	"github.com/DRSN-tech/store-api/pkg/e"
	"github.com/jimlawless/whereami"
	"github.com/minio/minio-go/v7"
)

// ObjectRepo читает файлы импорта из MinIO/S3.
type ObjectRepo struct {
	mc *minio.Client
}

func NewObjectRepo(mc *minio.Client) *ObjectRepo {
	return &ObjectRepo{
		mc: mc,
	}
}

// Open возвращает поток чтения объекта. Отсутствующий объект обнаруживается
// сразу, а не при первом чтении.
func (o *ObjectRepo) Open(ctx context.Context, bucket, key string) (io.ReadCloser, error) {
	obj, err := o.mc.GetObject(ctx, bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if _, err := obj.Stat(); err != nil {
		obj.Close()
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return obj, nil
}
