package cloud

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublicID(t *testing.T) {
	assert.Equal(t, "avatars/me", PublicID("https://res.cloudinary.com/demo/image/upload/v1712/avatars/me.png"))
	assert.Equal(t, "me", PublicID("https://res.cloudinary.com/demo/image/upload/me.jpg"))
	assert.Equal(t, "", PublicID("https://example.com/default-avatar.png"))
}

func newTestCloudinary(t *testing.T, h http.HandlerFunc) *Cloudinary {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	c, err := NewCloudinary("demo", "key", "secret", srv.URL)
	require.NoError(t, err)
	return c
}

func TestUploadSigned(t *testing.T) {
	c := newTestCloudinary(t, func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasPrefix(r.URL.Path, "/v1_1/demo/"), r.URL.Path)
		assert.True(t, strings.HasSuffix(r.URL.Path, "/upload"), r.URL.Path)
		assert.Equal(t, "key", r.FormValue("api_key"))
		assert.NotEmpty(t, r.FormValue("signature"))
		assert.Equal(t, "avatars", r.FormValue("folder"))
		_, _, err := r.FormFile("file")
		require.NoError(t, err)
		_, _ = w.Write([]byte(`{"secure_url":"https://res.test/image/upload/v1/avatars/me.png"}`))
	})
	u, err := c.Upload(context.Background(), "me.png", []byte("png"))
	require.NoError(t, err)
	assert.Equal(t, "https://res.test/image/upload/v1/avatars/me.png", u)
}

func TestUploadAPIError(t *testing.T) {
	c := newTestCloudinary(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"message":"Invalid image file"}}`))
	})
	_, err := c.Upload(context.Background(), "me.png", []byte("not an image"))
	assert.Error(t, err)
}

func TestDelete(t *testing.T) {
	var destroyed string
	c := newTestCloudinary(t, func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasSuffix(r.URL.Path, "/destroy"), r.URL.Path)
		destroyed = r.FormValue("public_id")
		assert.NotEmpty(t, r.FormValue("signature"))
		_, _ = w.Write([]byte(`{"result":"ok"}`))
	})
	require.NoError(t, c.Delete(context.Background(), "https://res.test/image/upload/v9/avatars/old.png"))
	assert.Equal(t, "avatars/old", destroyed)

	destroyed = ""
	require.NoError(t, c.Delete(context.Background(), "https://example.com/default.png"))
	assert.Empty(t, destroyed)
}

func TestStatic(t *testing.T) {
	s := NewStatic("https://img.test/")
	u, err := s.Upload(context.Background(), "a b.png", nil)
	require.NoError(t, err)
	assert.Equal(t, "https://img.test/a%20b.png", u)
	assert.True(t, s.Has(u))
	require.NoError(t, s.Delete(context.Background(), u))
	assert.False(t, s.Has(u))
}
