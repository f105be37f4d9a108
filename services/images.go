package services

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"time"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"

	"github.com/hyemin916/drip-drop-dev/errs"
	"github.com/hyemin916/drip-drop-dev/models"
)

const (
	// MaxUploadSize is the upload limit in bytes (5MB).
	MaxUploadSize = 5242880

	maxImageWidth = 800
	jpegQuality   = 80
)

// UploadInput carries one uploaded binary plus its descriptive fields.
type UploadInput struct {
	Data         []byte
	OriginalName string
	MimeType     string
	Alt          string
	Caption      *string
}

// ImageService validates, normalizes, and persists uploaded images.
type ImageService struct {
	blobs BlobStore
}

func NewImageService(blobs BlobStore) *ImageService {
	return &ImageService{blobs: blobs}
}

// Upload validates size and MIME type, derives a content-addressed id from
// the bytes so identical uploads are idempotently identifiable, downscales
// anything wider than maxImageWidth, re-encodes to JPEG as the single
// normalized stored format, and persists the result. The returned metadata
// reflects what was actually stored, which may differ from the input.
func (s *ImageService) Upload(ctx context.Context, in UploadInput) (*models.Image, error) {
	if int64(len(in.Data)) > MaxUploadSize {
		return nil, errs.NewPayloadTooLargeError(int64(len(in.Data)), MaxUploadSize)
	}
	if _, ok := models.FormatFromMIME(in.MimeType); !ok {
		return nil, errs.NewUnsupportedFormatError(in.MimeType)
	}

	sum := sha256.Sum256(in.Data)
	id := hex.EncodeToString(sum[:])[:16]

	img, _, err := image.Decode(bytes.NewReader(in.Data))
	if err != nil {
		return nil, errs.NewInvalidFieldError("file", "not a decodable image")
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w > maxImageWidth {
		newH := h * maxImageWidth / w
		dst := image.NewRGBA(image.Rect(0, 0, maxImageWidth, newH))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
		img = dst
		w = maxImageWidth
		h = newH
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, errs.NewInternalError("encode jpeg: " + err.Error())
	}

	url, err := s.blobs.Put(ctx, id+".jpg", buf.Bytes(), "image/jpeg")
	if err != nil {
		return nil, errs.NewStorageError("store", "image", err)
	}

	return &models.Image{
		ID:         id,
		URL:        url,
		Alt:        in.Alt,
		Caption:    in.Caption,
		Width:      w,
		Height:     h,
		Format:     models.FormatJpeg,
		FileSize:   int64(buf.Len()),
		UploadedAt: time.Now(),
	}, nil
}
