package storage

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T) *LocalStorage {
	t.Helper()
	s, err := NewLocalStorage(Config{
		BasePath: t.TempDir(),
		BaseURL:  "/uploads",
	})
	require.NoError(t, err)
	return s
}

func TestLocalStorage_SaveGetDelete(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "cert.pdf", strings.NewReader("file-content")))

	exists, err := s.Exists(ctx, "cert.pdf")
	require.NoError(t, err)
	assert.True(t, exists)

	reader, err := s.Get(ctx, "cert.pdf")
	require.NoError(t, err)
	defer reader.Close()

	data, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Equal(t, "file-content", string(data))

	require.NoError(t, s.Delete(ctx, "cert.pdf"))

	exists, err = s.Exists(ctx, "cert.pdf")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestLocalStorage_DeleteMissingIsNoop(t *testing.T) {
	s := newTestStorage(t)

	assert.NoError(t, s.Delete(context.Background(), "never-existed.pdf"))
}

func TestLocalStorage_GetURL(t *testing.T) {
	s := newTestStorage(t)

	url, err := s.GetURL(context.Background(), "123-cert.pdf")
	require.NoError(t, err)
	assert.Equal(t, "/uploads/123-cert.pdf", url)
}
