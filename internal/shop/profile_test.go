package shop

import (
	"bytes"
	"context"
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// a 1x1 transparent png
var tinyPNG, _ = base64.StdEncoding.DecodeString("iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mNkYPhfDwAChwGA60e6kgAAAABJRU5ErkJggg==")

func TestApplyProfile(t *testing.T) {
	d := Directory{testAccount()}

	next, account, err := ApplyProfile(d, "u-1", ProfileUpdate{Phone: "099", Password: "longer-secret", Avatar: "https://img/a.png"})
	require.NoError(t, err)
	assert.Equal(t, "099", account.Phone)
	assert.Equal(t, "longer-secret", account.Password)
	assert.Equal(t, "https://img/a.png", account.Avatar)
	assert.Equal(t, account, next[0])
	assert.Equal(t, "012", d[0].Phone, "input directory must not change")

	_, _, err = ApplyProfile(d, "missing", ProfileUpdate{Phone: "1"})
	assert.ErrorIs(t, err, ErrAccountNotFound)
}

func TestApplyProfileShortPasswordDiscardsPhone(t *testing.T) {
	d := Directory{testAccount()}
	next, _, err := ApplyProfile(d, "u-1", ProfileUpdate{Phone: "099", Password: "abc"})
	assert.ErrorIs(t, err, ErrPasswordTooShort)
	assert.Equal(t, "012", next[0].Phone)
	assert.Equal(t, "012", d[0].Phone)
}

func TestApplyProfileEmptyFieldsKeepValues(t *testing.T) {
	d := Directory{testAccount()}
	_, account, err := ApplyProfile(d, "u-1", ProfileUpdate{})
	require.NoError(t, err)
	assert.Equal(t, testAccount(), account)
}

func TestReadAvatar(t *testing.T) {
	url, err := ReadAvatar(context.Background(), bytes.NewReader(tinyPNG), "")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "data:image/png;base64,"))

	url, err = ReadAvatar(context.Background(), bytes.NewReader(tinyPNG), "image/png; name=a.png")
	require.NoError(t, err)
	assert.Equal(t, "data:image/png;base64,"+base64.StdEncoding.EncodeToString(tinyPNG), url)
}

func TestReadAvatarRejects(t *testing.T) {
	_, err := ReadAvatar(context.Background(), strings.NewReader("plain text"), "")
	assert.ErrorIs(t, err, ErrInvalidAvatar)

	_, err = ReadAvatar(context.Background(), bytes.NewReader(nil), "image/png")
	assert.ErrorIs(t, err, ErrInvalidAvatar)

	big := bytes.Repeat([]byte{0}, MaxAvatarSize+1)
	_, err = ReadAvatar(context.Background(), bytes.NewReader(big), "image/png")
	assert.ErrorIs(t, err, ErrInvalidAvatar)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = ReadAvatar(ctx, bytes.NewReader(tinyPNG), "image/png")
	assert.ErrorIs(t, err, context.Canceled)
}
