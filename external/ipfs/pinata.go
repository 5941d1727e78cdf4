package ipfs

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sethvargo/go-retry"
)

// Pinata pins files and JSON documents through the Pinata pinning API
type Pinata struct {
	apiURL  string
	jwt     string
	gateway string //public gateway prefix ending with /ipfs/
	client  *http.Client
	backoff func() retry.Backoff
}

type pinRes struct {
	IpfsHash string `json:"IpfsHash"`
}

func NewPinata(apiURL, jwt, gateway string) *Pinata {
	if !strings.HasSuffix(gateway, "/") {
		gateway += "/"
	}
	return &Pinata{
		apiURL:  strings.TrimRight(apiURL, "/"),
		jwt:     jwt,
		gateway: gateway,
		client:  &http.Client{Timeout: 60 * time.Second},
		backoff: func() retry.Backoff {
			return retry.WithMaxRetries(3, retry.NewExponential(500*time.Millisecond))
		},
	}
}

// PinFile uploads data and returns its gateway url
func (p *Pinata) PinFile(ctx context.Context, name string, data []byte) (string, error) {
	hash, err := p.pin(ctx, "/pinning/pinFileToIPFS", func() (io.Reader, string, error) {
		var buf bytes.Buffer
		w := multipart.NewWriter(&buf)
		fw, err := w.CreateFormFile("file", name)
		if err != nil {
			return nil, "", err
		}
		if _, err = fw.Write(data); err != nil {
			return nil, "", err
		}
		meta, _ := json.Marshal(map[string]string{"name": name})
		if err = w.WriteField("pinataMetadata", string(meta)); err != nil {
			return nil, "", err
		}
		if err = w.Close(); err != nil {
			return nil, "", err
		}
		return &buf, w.FormDataContentType(), nil
	})
	if err != nil {
		return "", errors.Wrapf(err, "pin file %s", name)
	}
	return p.gateway + hash, nil
}

// PinJSON uploads v as a JSON document and returns its ipfs:// uri
func (p *Pinata) PinJSON(ctx context.Context, name string, v interface{}) (string, error) {
	body, err := json.Marshal(map[string]interface{}{
		"pinataContent":  v,
		"pinataMetadata": map[string]string{"name": name},
	})
	if err != nil {
		return "", errors.Wrap(err, "encode metadata")
	}
	hash, err := p.pin(ctx, "/pinning/pinJSONToIPFS", func() (io.Reader, string, error) {
		return bytes.NewReader(body), "application/json", nil
	})
	if err != nil {
		return "", errors.Wrapf(err, "pin json %s", name)
	}
	return "ipfs://" + hash, nil
}

// pin posts the body built by build, retrying throttled and 5xx answers
func (p *Pinata) pin(ctx context.Context, path string, build func() (io.Reader, string, error)) (string, error) {
	var hash string
	err := retry.Do(ctx, p.backoff(), func(ctx context.Context) error {
		body, contentType, err := build()
		if err != nil {
			return err
		}
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.apiURL+path, body)
		if err != nil {
			return err
		}
		req.Header.Set("Content-Type", contentType)
		req.Header.Set("Authorization", "Bearer "+p.jwt)
		resp, err := p.client.Do(req)
		if err != nil {
			return retry.RetryableError(err)
		}
		defer resp.Body.Close()
		raw, err := io.ReadAll(resp.Body)
		if err != nil {
			return retry.RetryableError(err)
		}
		switch {
		case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
			return retry.RetryableError(fmt.Errorf("pinata http %d: %s", resp.StatusCode, raw))
		case resp.StatusCode != http.StatusOK:
			return fmt.Errorf("pinata http %d: %s", resp.StatusCode, raw)
		}
		var res pinRes
		if err = json.Unmarshal(raw, &res); err != nil {
			return errors.Wrap(err, "decode pinata response")
		}
		if res.IpfsHash == "" {
			return errors.New("pinata response without IpfsHash")
		}
		hash = res.IpfsHash
		return nil
	})
	return hash, err
}
