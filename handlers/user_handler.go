package handlers

import (
	"strings"

	"storefront/internal/shop"

	"github.com/gofiber/fiber/v2"
)

type UserHandler struct {
	Storefront *shop.Storefront
	Upload     *UploadHandler
}

func NewUserHandler(f *shop.Storefront, upload *UploadHandler) *UserHandler {
	return &UserHandler{Storefront: f, Upload: upload}
}

// UpdateProfileRequest edits the signed-in account. Empty fields are kept.
// Avatar, when sent as JSON, must already be an image data URL.
type UpdateProfileRequest struct {
	Phone    string `json:"phone" form:"phone"`
	Password string `json:"password" form:"password"`
	Avatar   string `json:"avatar" form:"-"`
}

// GetMe - GET /api/me
func (h *UserHandler) GetMe(c *fiber.Ctx) error {
	session := h.Storefront.Session()
	if session == nil {
		return respond(c, "", nil, shop.ErrNotAuthenticated)
	}
	return respond(c, "Profile", session, nil)
}

// UpdateMe - PUT /api/me, JSON or multipart with an "avatar" file
func (h *UserHandler) UpdateMe(c *fiber.Ctx) error {
	var req UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid input")
	}
	if req.Avatar != "" && !strings.HasPrefix(req.Avatar, "data:image/") {
		return respond(c, "", nil, shop.ErrInvalidAvatar)
	}

	update := shop.ProfileUpdate{
		Phone:    strings.TrimSpace(req.Phone),
		Password: req.Password,
		Avatar:   req.Avatar,
	}

	if strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEMultipartForm) {
		file, contentType, err := h.Upload.OpenAvatar(c)
		if err != nil {
			return respond(c, "", nil, err)
		}
		if file != nil {
			defer file.Close()
			update.AvatarFile, update.AvatarType = file, contentType
		}
	}

	snap, err := h.Storefront.UpdateProfile(c.UserContext(), update)
	if err != nil && !shop.IsPersistence(err) {
		return respond(c, "", nil, err)
	}
	return respond(c, "Profile updated", snap.Session, err)
}
