package ioutils

import (
	"bytes"
	"image"
	_ "image/gif"  // GIF decoder registration
	_ "image/jpeg" // JPEG decoder registration
	_ "image/png"  // PNG decoder registration

	_ "golang.org/x/image/bmp"  // BMP decoder registration
	_ "golang.org/x/image/tiff" // TIFF decoder registration
	_ "golang.org/x/image/webp" // WebP decoder registration
)

// ImageInfo describes an encoded image without decoding its pixels.
type ImageInfo struct {
	// Format is the registered format name, e.g. "jpeg", "png", "webp".
	Format string

	// Width and Height are the image dimensions in pixels.
	Width  int
	Height int
}

// ImageService inspects embedded cover art.
//
// ImageService is used by the cover-art detector to report the format and
// dimensions of attached pictures. Only the image header is read.
//
// Example usage:
//
//	svc := NewImageService()
//	info, err := svc.Describe(frame.Picture)
//	// info.Format == "jpeg", info.Width == 500, info.Height == 500
type ImageService struct{}

// NewImageService creates a new ImageService.
func NewImageService() *ImageService {
	return &ImageService{}
}

// Describe returns the format and dimensions of an encoded image.
//
// Supported formats are JPEG, PNG, GIF, BMP, TIFF and WebP. An error is
// returned for anything else, including empty data.
func (s *ImageService) Describe(data []byte) (ImageInfo, error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return ImageInfo{}, err
	}
	return ImageInfo{
		Format: format,
		Width:  cfg.Width,
		Height: cfg.Height,
	}, nil
}
