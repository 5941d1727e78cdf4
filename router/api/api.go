package api

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"nftmarket/log"
	"nftmarket/middleware"
	"nftmarket/service"
)

// maxUpload largest accepted image
const maxUpload = 10 << 20

// API http handlers over one Service
type API struct {
	Svc          *service.Service
	Log          *log.Logger
	Auth         gin.HandlerFunc //bearer token check for protected routes
	SecureCookie bool            //refresh cookie only over https
}

// fail writes err as an ErrRes with the status of its kind
func fail(c *gin.Context, err error) {
	res := service.ErrRes{ErrStr: err.Error()}
	code := http.StatusInternalServerError
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		code, res.Fields = http.StatusBadRequest, verr.Fields
	case errors.Is(err, service.ErrNotFound), errors.Is(err, service.ErrBusiness):
		code = http.StatusBadRequest
	case errors.Is(err, service.ErrUnauthorized):
		code = http.StatusUnauthorized
	case errors.Is(err, service.ErrForbidden):
		code = http.StatusForbidden
	}
	if code == http.StatusInternalServerError {
		_ = c.Error(err)
		res.ErrStr = "Internal server error"
	}
	c.AbortWithStatusJSON(code, res)
}

// badRequest a binding failure
func badRequest(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusBadRequest, service.ErrRes{ErrStr: err.Error()})
}

// upload reads an optional multipart file
func upload(c *gin.Context, field string) (*service.Upload, error) {
	fh, err := c.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, service.Invalid(field, "must be a file")
	}
	if fh.Size > maxUpload {
		return nil, service.Invalid(field, "must be at most 10MB")
	}
	f, err := fh.Open()
	if err != nil {
		return nil, errors.Wrap(err, "open upload")
	}
	defer f.Close()
	data, err := io.ReadAll(io.LimitReader(f, maxUpload))
	if err != nil {
		return nil, errors.Wrap(err, "read upload")
	}
	return &service.Upload{Name: fh.Filename, Data: data}, nil
}

// jsonField decodes a JSON encoded multipart value, empty leaves v untouched
func jsonField(c *gin.Context, field string, v interface{}) error {
	raw := strings.TrimSpace(c.PostForm(field))
	if raw == "" {
		return nil
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return service.Invalid(field, "must be a JSON array")
	}
	return nil
}

// caller the wallet of the access token
func caller(c *gin.Context) string {
	return middleware.Wallet(c)
}

// self rejects requests acting on another wallet than the caller's
func self(c *gin.Context, wallet string) bool {
	if !strings.EqualFold(strings.TrimSpace(wallet), caller(c)) {
		fail(c, service.Forbidden("You can only act on your own account"))
		return false
	}
	return true
}
