package handler

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tkexclusiv/catalog_api/internal/service"
)

func TestUploadImage(t *testing.T) {
	s := newTestServer(t)
	file := base64.StdEncoding.EncodeToString([]byte("GIF89a"))

	w := s.do(t, request{method: http.MethodPost, target: "/upload-image", body: fmt.Sprintf(`{"file":%q}`, file)})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = s.admin(t, http.MethodGet, "/upload-image", "")
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)

	w = s.admin(t, http.MethodPost, "/upload-image", fmt.Sprintf(`{"file":%q,"content_type":"image/gif","folder":"banners"}`, file))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	url := decode(t, w)["url"].(string)
	require.Len(t, s.storage.keys, 1)
	assert.Equal(t, "https://cdn.example.com/files/"+s.storage.keys[0], url)
	assert.True(t, strings.HasPrefix(s.storage.keys[0], "catalog/banners/"))
	assert.True(t, strings.HasSuffix(url, ".gif"))
}

func TestUploadImageTooLarge(t *testing.T) {
	s := newTestServer(t)
	big := base64.StdEncoding.EncodeToString(bytes.Repeat([]byte{1}, service.MaxImageSize+1))

	w := s.admin(t, http.MethodPost, "/upload-image", fmt.Sprintf(`{"file":%q}`, big))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, s.storage.keys)

	w = s.admin(t, http.MethodPost, "/upload-image", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, s.storage.keys)
}
