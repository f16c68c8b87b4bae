package loader

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeObjects struct {
	bucket, key string
	body        string
	err         error
}

func (f *fakeObjects) Open(_ context.Context, bucket, key string) (io.ReadCloser, error) {
	f.bucket, f.key = bucket, key
	if f.err != nil {
		return nil, f.err
	}
	return io.NopCloser(strings.NewReader(f.body)), nil
}

func readAll(t *testing.T, rc io.ReadCloser) string {
	t.Helper()
	defer rc.Close()

	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	return string(data)
}

func TestOpenSource_LocalFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "products.csv")
	require.NoError(t, os.WriteFile(path, []byte("name\n"), 0o600))

	rc, err := OpenSource(context.Background(), path, nil)
	require.NoError(t, err)
	assert.Equal(t, "name\n", readAll(t, rc))
}

func TestOpenSource_MissingFile(t *testing.T) {
	_, err := OpenSource(context.Background(), filepath.Join(t.TempDir(), "nope.csv"), nil)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestOpenSource_Object(t *testing.T) {
	objects := &fakeObjects{body: "data"}

	rc, err := OpenSource(context.Background(), "s3://imports/2024/products.csv", objects)
	require.NoError(t, err)
	assert.Equal(t, "data", readAll(t, rc))
	assert.Equal(t, "imports", objects.bucket)
	assert.Equal(t, "2024/products.csv", objects.key)
}

func TestOpenSource_ObjectErrors(t *testing.T) {
	ctx := context.Background()

	_, err := OpenSource(ctx, "s3://imports/products.csv", nil)
	assert.Error(t, err)

	for _, path := range []string{"s3://", "s3://bucket", "s3://bucket/", "s3:///key"} {
		_, err := OpenSource(ctx, path, &fakeObjects{})
		assert.Error(t, err, path)
	}

	storageErr := errors.New("access denied")
	_, err = OpenSource(ctx, "s3://imports/products.csv", &fakeObjects{err: storageErr})
	assert.ErrorIs(t, err, storageErr)
}

func TestIsObjectURL(t *testing.T) {
	assert.True(t, IsObjectURL("s3://a/b"))
	assert.False(t, IsObjectURL("Amazon_Products.csv"))
}

func TestParseObjectURL(t *testing.T) {
	bucket, key, err := ParseObjectURL("s3://imports/a/b.csv")
	require.NoError(t, err)
	assert.Equal(t, "imports", bucket)
	assert.Equal(t, "a/b.csv", key)
}
