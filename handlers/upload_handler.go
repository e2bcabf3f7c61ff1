package handlers

import (
	"errors"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"

	"storefront/internal/shop"

	"github.com/gofiber/fiber/v2"
	"github.com/valyala/fasthttp"
)

var avatarExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// UploadHandler validates avatar uploads before the storefront reads them.
type UploadHandler struct {
	MaxSize int64
}

func NewUploadHandler() *UploadHandler {
	return &UploadHandler{MaxSize: shop.MaxAvatarSize}
}

// OpenAvatar opens the "avatar" form file. It returns a nil reader when the
// form carries no file.
func (h *UploadHandler) OpenAvatar(c *fiber.Ctx) (io.ReadCloser, string, error) {
	file, err := c.FormFile("avatar")
	if errors.Is(err, fasthttp.ErrMissingFile) {
		return nil, "", nil
	}
	if err != nil {
		return nil, "", shop.ErrInvalidAvatar
	}
	return h.open(file)
}

func (h *UploadHandler) open(file *multipart.FileHeader) (io.ReadCloser, string, error) {
	// Validate file type (simple check extension)
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !avatarExtensions[ext] || file.Size > h.MaxSize {
		return nil, "", shop.ErrInvalidAvatar
	}

	f, err := file.Open()
	if err != nil {
		return nil, "", err
	}
	return f, file.Header.Get(fiber.HeaderContentType), nil
}
