package server

import (
	"fmt"
	"image"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"

	"plume/internal/models"

	"github.com/google/uuid"
)

const maxImageSize = 10 << 20 // 10 MiB

// saveImage validates an uploaded image by decoding its header and writes it
// to the media directory under a random name. Returns the public URL of the
// stored file.
func (s *Server) saveImage(fileHeader *multipart.FileHeader) (string, error) {
	if fileHeader.Size > maxImageSize {
		return "", models.NewValidationError("Image is too large")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", models.NewInternalError(err)
	}
	defer file.Close()

	// DecodeConfig reads just the header, which is enough to reject files
	// that are not actually images.
	_, format, err := image.DecodeConfig(file)
	if err != nil {
		return "", models.NewValidationError("Unsupported image format")
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return "", models.NewInternalError(err)
	}

	if err := os.MkdirAll(s.config.MediaDir, 0o755); err != nil {
		return "", models.NewInternalError(err)
	}

	name := fmt.Sprintf("%s.%s", uuid.New().String(), format)
	path := filepath.Join(s.config.MediaDir, name)

	dst, err := os.Create(path)
	if err != nil {
		return "", models.NewInternalError(err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		os.Remove(path)
		return "", models.NewInternalError(err)
	}

	return "/media/" + name, nil
}
