package shop

import (
	"bytes"
	"context"
	"encoding/base64"
	"io"
	"net/http"
	"strings"

	"storefront/models"
)

// MaxAvatarSize bounds an uploaded avatar image.
const MaxAvatarSize = 2 << 20

var avatarTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// ProfileUpdate carries the editable account fields. Empty fields are left alone.
// AvatarFile, when set, is read and stored as a data URL and wins over Avatar.
type ProfileUpdate struct {
	Phone    string
	Password string
	Avatar   string

	AvatarFile io.Reader
	AvatarType string
}

// shortPassword reports a non-empty password that is below the minimum.
func shortPassword(p string) bool {
	return p != "" && passwordLen(p) < PasswordMinLength
}

// ApplyProfile edits the account userID on a copy of d. Fields are applied in
// the order phone, password, avatar; a short password rejects the whole update,
// including a phone change already made to the copy.
func ApplyProfile(d Directory, userID string, u ProfileUpdate) (Directory, models.UserAccount, error) {
	i := d.indexByID(userID)
	if i < 0 {
		return d, models.UserAccount{}, ErrAccountNotFound
	}
	next := make(Directory, len(d))
	copy(next, d)

	if u.Phone != "" {
		next[i].Phone = u.Phone
	}
	if passwordLen(u.Password) >= PasswordMinLength {
		next[i].Password = u.Password
	} else if shortPassword(u.Password) {
		return d, models.UserAccount{}, ErrPasswordTooShort
	}
	if u.Avatar != "" {
		next[i].Avatar = u.Avatar
	}
	return next, next[i], nil
}

// ReadAvatar turns an image stream into a data: URL. It stops early when ctx is done.
func ReadAvatar(ctx context.Context, r io.Reader, contentType string) (string, error) {
	data, err := io.ReadAll(io.LimitReader(ctxReader{ctx: ctx, r: r}, MaxAvatarSize+1))
	if err != nil {
		return "", err
	}
	if len(data) == 0 || len(data) > MaxAvatarSize {
		return "", ErrInvalidAvatar
	}

	mediaType := strings.TrimSpace(strings.Split(contentType, ";")[0])
	if mediaType == "" || mediaType == "application/octet-stream" {
		mediaType = http.DetectContentType(data)
	}
	if !avatarTypes[mediaType] {
		return "", ErrInvalidAvatar
	}

	var buf bytes.Buffer
	buf.WriteString("data:")
	buf.WriteString(mediaType)
	buf.WriteString(";base64,")
	buf.WriteString(base64.StdEncoding.EncodeToString(data))
	return buf.String(), nil
}

type ctxReader struct {
	ctx context.Context
	r   io.Reader
}

func (c ctxReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}
