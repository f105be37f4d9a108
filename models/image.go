package models

import "time"

// ImageFormat is the set of image formats accepted for upload.
type ImageFormat string

const (
	FormatWebp ImageFormat = "webp"
	FormatPng  ImageFormat = "png"
	FormatJpeg ImageFormat = "jpeg"
	FormatGif  ImageFormat = "gif"
)

// Image describes an uploaded or body-embedded image.
type Image struct {
	ID         string      `json:"id"`
	URL        string      `json:"url"`
	Alt        string      `json:"alt"`
	Caption    *string     `json:"caption"`
	Width      int         `json:"width"`
	Height     int         `json:"height"`
	Format     ImageFormat `json:"format"`
	FileSize   int64       `json:"fileSize"`
	UploadedAt time.Time   `json:"uploadedAt"`
}

var mimeFormats = map[string]ImageFormat{
	"image/webp": FormatWebp,
	"image/png":  FormatPng,
	"image/jpeg": FormatJpeg,
	"image/jpg":  FormatJpeg,
	"image/gif":  FormatGif,
}

// FormatFromMIME maps a MIME type to an ImageFormat. The second return value
// is false for types outside the allow-list.
func FormatFromMIME(mimeType string) (ImageFormat, bool) {
	f, ok := mimeFormats[mimeType]
	return f, ok
}
