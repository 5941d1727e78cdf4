package ipfs

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sethvargo/go-retry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastRetry(p *Pinata) {
	p.backoff = func() retry.Backoff {
		return retry.WithMaxRetries(2, retry.NewConstant(time.Millisecond))
	}
}

func TestPinFile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/pinning/pinFileToIPFS", r.URL.Path)
		assert.Equal(t, "Bearer jwt", r.Header.Get("Authorization"))
		f, fh, err := r.FormFile("file")
		require.NoError(t, err)
		data, _ := io.ReadAll(f)
		assert.Equal(t, "art.png", fh.Filename)
		assert.Equal(t, "png-bytes", string(data))
		_, _ = w.Write([]byte(`{"IpfsHash":"QmFile"}`))
	}))
	defer srv.Close()

	p := NewPinata(srv.URL, "jwt", "https://gw.test/ipfs")
	url, err := p.PinFile(context.Background(), "art.png", []byte("png-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "https://gw.test/ipfs/QmFile", url)
}

func TestPinJSONRetriesServerErrors(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		var body struct {
			Content  map[string]string `json:"pinataContent"`
			Metadata map[string]string `json:"pinataMetadata"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Tower", body.Content["name"])
		assert.Equal(t, "Tower.json", body.Metadata["name"])
		_, _ = w.Write([]byte(`{"IpfsHash":"QmMeta"}`))
	}))
	defer srv.Close()

	p := NewPinata(srv.URL, "jwt", "https://gw.test/ipfs/")
	fastRetry(p)
	uri, err := p.PinJSON(context.Background(), "Tower.json", map[string]string{"name": "Tower"})
	require.NoError(t, err)
	assert.Equal(t, "ipfs://QmMeta", uri)
	assert.EqualValues(t, 2, atomic.LoadInt32(&calls))
}

func TestPinRejectedIsNotRetried(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		http.Error(w, "invalid jwt", http.StatusUnauthorized)
	}))
	defer srv.Close()

	p := NewPinata(srv.URL, "bad", "https://gw.test/ipfs/")
	fastRetry(p)
	_, err := p.PinFile(context.Background(), "a.png", []byte{1})
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "401"))
	assert.EqualValues(t, 1, atomic.LoadInt32(&calls))
}

func TestMemory(t *testing.T) {
	m := NewMemory("https://gw.test/ipfs/")
	url, err := m.PinFile(context.Background(), "a.png", []byte("abc"))
	require.NoError(t, err)
	hash := strings.TrimPrefix(url, "https://gw.test/ipfs/")
	data, ok := m.Get(hash)
	require.True(t, ok)
	assert.Equal(t, "abc", string(data))

	uri, err := m.PinJSON(context.Background(), "meta", map[string]int{"n": 1})
	require.NoError(t, err)
	data, ok = m.Get(strings.TrimPrefix(uri, "ipfs://"))
	require.True(t, ok)
	assert.JSONEq(t, `{"n":1}`, string(data))
}
