package services

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/hyemin916/drip-drop-dev/errs"
	"github.com/hyemin916/drip-drop-dev/models"
)

func pngBytes(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 100, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encoding test png: %v", err)
	}
	return buf.Bytes()
}

func newTestImageService(t *testing.T) *ImageService {
	t.Helper()
	blobs, err := NewDiskStore(t.TempDir(), "http://localhost:8080")
	if err != nil {
		t.Fatalf("creating disk store: %v", err)
	}
	return NewImageService(blobs)
}

func TestUpload(t *testing.T) {
	svc := newTestImageService(t)

	caption := "a caption"
	img, err := svc.Upload(context.Background(), UploadInput{
		Data:         pngBytes(t, 200, 100),
		OriginalName: "photo.png",
		MimeType:     "image/png",
		Alt:          "a photo",
		Caption:      &caption,
	})
	if err != nil {
		t.Fatalf("Upload failed: %v", err)
	}

	if len(img.ID) != 16 {
		t.Errorf("ID = %q, want 16 hex chars", img.ID)
	}
	if img.Width != 200 || img.Height != 100 {
		t.Errorf("dimensions = %dx%d, want 200x100", img.Width, img.Height)
	}
	if img.Format != models.FormatJpeg {
		t.Errorf("Format = %q, want %q", img.Format, models.FormatJpeg)
	}
	if img.FileSize <= 0 {
		t.Errorf("FileSize = %d, want > 0", img.FileSize)
	}
	if img.Alt != "a photo" {
		t.Errorf("Alt = %q", img.Alt)
	}
	if img.Caption == nil || *img.Caption != caption {
		t.Errorf("Caption = %v, want %q", img.Caption, caption)
	}
	if img.URL == "" {
		t.Error("URL should be set")
	}
	if img.UploadedAt.IsZero() {
		t.Error("UploadedAt should be set")
	}
}

func TestUploadIsContentAddressed(t *testing.T) {
	svc := newTestImageService(t)
	ctx := context.Background()
	data := pngBytes(t, 50, 50)

	first, err := svc.Upload(ctx, UploadInput{Data: data, MimeType: "image/png", Alt: "x"})
	if err != nil {
		t.Fatalf("first Upload failed: %v", err)
	}
	second, err := svc.Upload(ctx, UploadInput{Data: data, MimeType: "image/png", Alt: "y"})
	if err != nil {
		t.Fatalf("second Upload failed: %v", err)
	}

	if first.ID != second.ID {
		t.Errorf("same bytes produced different ids: %q vs %q", first.ID, second.ID)
	}
}

func TestUploadResizesWideImages(t *testing.T) {
	svc := newTestImageService(t)

	img, err := svc.Upload(context.Background(), UploadInput{
		Data:     pngBytes(t, 1600, 400),
		MimeType: "image/png",
		Alt:      "wide",
	})
	if err != nil {
		t.Fatalf("Upload failed: %v", err)
	}

	if img.Width != 800 {
		t.Errorf("Width = %d, want 800", img.Width)
	}
	if img.Height != 200 {
		t.Errorf("Height = %d, want 200 (aspect ratio preserved)", img.Height)
	}
}

func TestUploadTooLarge(t *testing.T) {
	svc := newTestImageService(t)

	_, err := svc.Upload(context.Background(), UploadInput{
		Data:     make([]byte, MaxUploadSize+1),
		MimeType: "image/png",
		Alt:      "big",
	})
	if !errs.IsPayloadTooLargeError(err) {
		t.Errorf("error = %v, want payload-too-large", err)
	}
}

func TestUploadUnsupportedMIME(t *testing.T) {
	svc := newTestImageService(t)

	_, err := svc.Upload(context.Background(), UploadInput{
		Data:     []byte("hello"),
		MimeType: "text/plain",
		Alt:      "not an image",
	})
	if !errs.IsUnsupportedFormatError(err) {
		t.Errorf("error = %v, want unsupported-format", err)
	}
}

func TestUploadUndecodableBytes(t *testing.T) {
	svc := newTestImageService(t)

	_, err := svc.Upload(context.Background(), UploadInput{
		Data:     []byte("these are not image bytes"),
		MimeType: "image/png",
		Alt:      "liar",
	})
	if !errs.IsInvalidFieldError(err) {
		t.Errorf("error = %v, want invalid-field", err)
	}
}
