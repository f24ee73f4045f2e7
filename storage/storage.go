// Package storage resolves uploaded meal images to public URLs. The
// backend is chosen once at startup from configuration; handlers only
// see the ImageStorage interface.
package storage

import (
	"context"
	"fmt"
	"mime/multipart"

	"github.com/Temur01/restaurant-server/config"
)

type ImageStorage interface {
	// Save persists the uploaded file and returns its public URL.
	Save(ctx context.Context, file *multipart.FileHeader) (string, error)
}

func FromConfig(cfg *config.Config) (ImageStorage, error) {
	switch cfg.UploadDriver {
	case "s3":
		return NewS3Storage(cfg)
	case "local":
		return NewLocalStorage(cfg.UploadDir, cfg.BaseURL)
	default:
		return nil, fmt.Errorf("unknown upload driver %q", cfg.UploadDriver)
	}
}
