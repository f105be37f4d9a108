package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// Request & Input-Validation Errors
var (
	ErrMalformedPayload     = errors.New("malformed payload")
	ErrMissingRequiredField = errors.New("missing required field")
	ErrInvalidField         = errors.New("invalid field")
	ErrInvalidCategory      = errors.New("invalid category")
	ErrUnsupportedFormat    = errors.New("unsupported image format")
	ErrPayloadTooLarge      = errors.New("payload too large")
)

// Request & Input-Validation Error Constructors
func NewMalformedPayloadError(payloadType string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		err:        ErrMalformedPayload,
		Details:    fmt.Sprintf("Malformed %s payload", payloadType),
		Cause:      cause,
		Field:      "payload",
	}
}

func NewMissingRequiredFieldError(fieldName string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		err:        ErrMissingRequiredField,
		Details:    fmt.Sprintf("Missing required field: %s", fieldName),
		Field:      fieldName,
	}
}

func NewInvalidFieldError(fieldName string, reason string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		err:        ErrInvalidField,
		Details:    fmt.Sprintf("Invalid field %s: %s", fieldName, reason),
		Field:      fieldName,
	}
}

// NewInvalidCategoryError rejects category values outside the fixed enumeration.
func NewInvalidCategoryError(value string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		err:        ErrInvalidCategory,
		Details:    fmt.Sprintf("Invalid category: %q. Must be one of \"일상\", \"Daily\", \"개발\", \"Dev\"", value),
		Field:      "category",
	}
}

func NewUnsupportedFormatError(mimeType string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		err:        ErrUnsupportedFormat,
		Details:    fmt.Sprintf("Unsupported image format: %s", mimeType),
		Field:      "file",
	}
}

func NewPayloadTooLargeError(size, maxSize int64) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusRequestEntityTooLarge,
		err:        ErrPayloadTooLarge,
		Details:    fmt.Sprintf("File size %d exceeds maximum allowed size of %d bytes", size, maxSize),
		Field:      "file",
	}
}

// Request & Input-Validation Error Type Checkers
func IsMalformedPayloadError(err error) bool {
	return errors.Is(err, ErrMalformedPayload)
}

func IsMissingRequiredFieldError(err error) bool {
	return errors.Is(err, ErrMissingRequiredField)
}

func IsInvalidFieldError(err error) bool {
	return errors.Is(err, ErrInvalidField)
}

func IsInvalidCategoryError(err error) bool {
	return errors.Is(err, ErrInvalidCategory)
}

func IsUnsupportedFormatError(err error) bool {
	return errors.Is(err, ErrUnsupportedFormat)
}

func IsPayloadTooLargeError(err error) bool {
	return errors.Is(err, ErrPayloadTooLarge)
}
