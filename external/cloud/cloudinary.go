package cloud

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"path"
	"strconv"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// avatar folder on the cloud account
const folder = "avatars"

// Cloudinary signed image upload and destroy through the cloudinary SDK
type Cloudinary struct {
	cld *cloudinary.Cloudinary
}

// NewCloudinary apiURL overrides the upload API root, empty keeps the SDK default
func NewCloudinary(cloudName, apiKey, apiSecret, apiURL string) (*Cloudinary, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, errors.Wrap(err, "cloudinary config")
	}
	if apiURL != "" {
		cld.Config.API.UploadPrefix = strings.TrimRight(apiURL, "/")
	}
	cld.Config.API.Timeout = 60
	return &Cloudinary{cld: cld}, nil
}

// Upload stores an image and returns its https url
func (c *Cloudinary) Upload(ctx context.Context, name string, data []byte) (string, error) {
	res, err := c.cld.Upload.Upload(ctx, bytes.NewReader(data), uploader.UploadParams{
		PublicID: uuid.NewString(),
		Folder:   folder,
	})
	if err != nil {
		return "", errors.Wrapf(err, "upload image %s", name)
	}
	if res.Error.Message != "" {
		return "", fmt.Errorf("upload image %s: %s", name, res.Error.Message)
	}
	return res.SecureURL, nil
}

// Delete destroys the image behind a url returned by Upload, foreign urls are ignored
func (c *Cloudinary) Delete(ctx context.Context, imageURL string) error {
	id := PublicID(imageURL)
	if id == "" {
		return nil
	}
	res, err := c.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: id})
	if err != nil {
		return errors.Wrapf(err, "delete image %s", id)
	}
	if res.Error.Message != "" {
		return fmt.Errorf("delete image %s: %s", id, res.Error.Message)
	}
	if res.Result != "ok" && res.Result != "not found" {
		return fmt.Errorf("delete image %s: %s", id, res.Result)
	}
	return nil
}

// PublicID extracts the asset id of a delivery url:
// .../image/upload/v123/folder/name.png -> folder/name
func PublicID(imageURL string) string {
	u, err := url.Parse(imageURL)
	if err != nil {
		return ""
	}
	_, rest, ok := strings.Cut(u.Path, "/upload/")
	if !ok {
		return ""
	}
	parts := strings.Split(rest, "/")
	if len(parts) > 1 && strings.HasPrefix(parts[0], "v") {
		if _, err := strconv.ParseUint(parts[0][1:], 10, 64); err == nil {
			parts = parts[1:]
		}
	}
	id := strings.Join(parts, "/")
	return strings.TrimSuffix(id, path.Ext(id))
}
