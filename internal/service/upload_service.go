package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"regexp"
	"strings"

	"github.com/tkexclusiv/catalog_api/internal/utils"
)

// MaxImageSize is the largest decoded image accepted for upload.
const MaxImageSize = 5 << 20

var imageExtensions = map[string]string{
	"image/jpeg": "jpg",
	"image/jpg":  "jpg",
	"image/png":  "png",
	"image/webp": "webp",
	"image/gif":  "gif",
}

var folderPattern = regexp.MustCompile(`^[a-z0-9_-]+$`)

type UploadInput struct {
	File        string `json:"file"`
	ContentType string `json:"content_type"`
	Folder      string `json:"folder"`
}

// UploadService validates base64 images and stores them for the CDN.
type UploadService struct {
	storage ObjectStorage
	baseURL string
}

func NewUploadService(storage ObjectStorage, publicBaseURL string) *UploadService {
	return &UploadService{storage: storage, baseURL: strings.TrimRight(publicBaseURL, "/")}
}

// UploadImage stores the decoded image and returns its public URL. Nothing is
// written unless every check passes.
func (s *UploadService) UploadImage(ctx context.Context, in UploadInput) (string, error) {
	if in.ContentType == "" {
		in.ContentType = "image/jpeg"
	}
	if in.Folder == "" {
		in.Folder = "products"
	}

	if in.File == "" {
		return "", utils.NewValidationError("file is required (base64)")
	}
	ext, ok := imageExtensions[in.ContentType]
	if !ok {
		return "", utils.NewValidationError("Unsupported content type: %s", in.ContentType)
	}
	if !folderPattern.MatchString(in.Folder) {
		return "", utils.NewValidationError("Invalid folder: %s", in.Folder)
	}

	data, err := decodeBase64Payload(in.File)
	if err != nil {
		return "", utils.NewValidationError("file is not valid base64")
	}
	if len(data) > MaxImageSize {
		return "", utils.NewValidationError("File too large (max 5MB)")
	}

	key := fmt.Sprintf("catalog/%s/%s.%s", in.Folder, utils.GenerateObjectName(), ext)
	if err := s.storage.PutObject(ctx, key, data, in.ContentType); err != nil {
		return "", err
	}
	return s.baseURL + "/" + key, nil
}

// decodeBase64Payload strips an optional data-URL prefix and decodes the rest.
func decodeBase64Payload(payload string) ([]byte, error) {
	if i := strings.Index(payload, ","); i >= 0 {
		payload = payload[i+1:]
	}
	payload = strings.TrimSpace(payload)
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return base64.RawStdEncoding.DecodeString(strings.TrimRight(payload, "="))
	}
	return data, nil
}
