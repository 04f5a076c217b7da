package services

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/emberlight/chronicle/pkg/internal/models"
	"github.com/gabriel-vasile/mimetype"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

var allowedImageTypes = []string{
	"image/png",
	"image/jpeg",
	"image/gif",
	"image/webp",
}

// SniffImage decides by content, not filename, whether the payload is an
// image we accept.
func SniffImage(payload []byte) (*mimetype.MIME, error) {
	if len(payload) == 0 {
		return nil, fmt.Errorf("attachment is empty")
	}

	mime := mimetype.Detect(payload)
	if !lo.Contains(allowedImageTypes, mime.String()) {
		return nil, fmt.Errorf("unsupported attachment type %s, expected an image", mime.String())
	}

	return mime, nil
}

// SaveAttachment sniffs and persists an uploaded image under the uploads
// content path, keyed by its filename. Collisions overwrite; de-duplication
// is left to the storage layer.
func SaveAttachment(filename string, payload []byte) (models.PostImage, error) {
	var image models.PostImage

	mime, err := SniffImage(payload)
	if err != nil {
		return image, err
	}

	basePath := filepath.Join(viper.GetString("storage.uploads"), "posts")
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return image, fmt.Errorf("unable to prepare uploads directory: %v", err)
	}

	destination := filepath.Join(basePath, filepath.Base(filename))
	if err := os.WriteFile(destination, payload, 0o644); err != nil {
		return image, fmt.Errorf("unable to store attachment: %v", err)
	}

	image = models.PostImage{
		Path:     destination,
		MimeType: mime.String(),
		Size:     int64(len(payload)),
	}
	return image, nil
}

// DiscardAttachment removes a stored upload whose post row never made it to
// the database.
func DiscardAttachment(image models.PostImage) error {
	if err := os.Remove(image.Path); err != nil {
		return fmt.Errorf("unable to discard attachment: %v", err)
	}
	return nil
}
