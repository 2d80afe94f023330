package imagestore

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecobin/config"
)

func newTestStore(t *testing.T, uploadURL string) *freeimageStore {
	t.Helper()

	svc, err := newFreeimageStore(&config.ImageStoreConfig{
		APIKey:    "test-key",
		UploadURL: uploadURL,
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	store, ok := svc.(*freeimageStore)
	require.True(t, ok)

	return store
}

func TestFreeimageStore_MissingAPIKey(t *testing.T) {
	_, err := newFreeimageStore(&config.ImageStoreConfig{}, nil)
	assert.Error(t, err)
}

func TestFreeimageStore_Upload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "test-key", r.FormValue("key"))
		assert.Equal(t, "upload", r.FormValue("action"))
		assert.Equal(t, "json", r.FormValue("format"))

		_, _, err := r.FormFile("source")
		assert.NoError(t, err)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status_code":200,"image":{"url":"https://img.example/abc.jpg"}}`))
	}))
	defer server.Close()

	store := newTestStore(t, server.URL)

	url, err := store.Upload(context.Background(), []byte("fake-image"))
	require.NoError(t, err)
	assert.Equal(t, "https://img.example/abc.jpg", url)
}

func TestFreeimageStore_RejectedUpload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status_code":400}`))
	}))
	defer server.Close()

	store := newTestStore(t, server.URL)

	_, err := store.Upload(context.Background(), []byte("fake-image"))
	assert.Error(t, err)
}

func TestNew_UnknownProvider(t *testing.T) {
	_, err := New(Params{
		Config: &config.Config{
			ImageStore: &config.ImageStoreConfig{Provider: "carrier-pigeon"},
		},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	assert.Error(t, err)
}
