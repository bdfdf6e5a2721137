// file: internals/helpers/convert_image.go
package helper

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

const (
	avatarMaxDim     = 512
	avatarQuality    = 80
	maxAvatarUpload  = 5 * 1024 * 1024
	avatarUploadRoot = "uploads/avatars"
)

// ConvertToWebP decodes a JPEG/PNG upload, resizes it to fit the avatar
// bounds and re-encodes as lossy WebP.
func ConvertToWebP(fileHeader *multipart.FileHeader) ([]byte, error) {
	if fileHeader.Size > maxAvatarUpload {
		return nil, fmt.Errorf("image larger than %dMB", maxAvatarUpload/(1024*1024))
	}

	src, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("open image: %w", err)
	}
	defer src.Close()

	img, _, err := image.Decode(src)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	img = imaging.Fit(img, avatarMaxDim, avatarMaxDim, imaging.Lanczos)

	buf := new(bytes.Buffer)
	if err := webp.Encode(buf, img, &webp.Options{Lossless: false, Quality: avatarQuality}); err != nil {
		return nil, fmt.Errorf("encode webp: %w", err)
	}
	return buf.Bytes(), nil
}

// SaveAvatarWebP converts the upload and writes it under the avatar upload
// root. Returns the relative path to store on the profile row.
func SaveAvatarWebP(fileHeader *multipart.FileHeader) (string, error) {
	data, err := ConvertToWebP(fileHeader)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(avatarUploadRoot, 0o755); err != nil {
		return "", fmt.Errorf("prepare upload dir: %w", err)
	}

	name := strings.ToLower(uuid.New().String()) + ".webp"
	path := filepath.Join(avatarUploadRoot, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write avatar: %w", err)
	}
	return path, nil
}
