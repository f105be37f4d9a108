package config

import (
	"os"
	"strconv"
	"strings"
)

// Recognized keys. The blob sink switches from local disk to S3 when
// KeyS3Bucket is present.
const (
	KeyPort           = "PORT"
	KeyStorageBackend = "STORAGE_BACKEND" // "postgres" or "markdown"
	KeyDatabaseURL    = "DATABASE_URL"
	KeyContentDir     = "CONTENT_DIR"
	KeyAdminSecret    = "ADMIN_SECRET"
	KeyOwnerName      = "OWNER_NAME"
	KeyOwnerEmail     = "OWNER_EMAIL"
	KeyBaseURL        = "BASE_URL"
	KeyUploadDir      = "UPLOAD_DIR"
	KeyS3Bucket       = "S3_BUCKET"
	KeyS3Region       = "S3_REGION"
	KeyS3PublicURL    = "S3_PUBLIC_URL"

	KeyAcceptedOrigins = "ACCEPTED_ORIGINS"
)

func New() map[string]string {
	environ := os.Environ()
	envAsMap := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry != "" {
			key, value := split(entry)
			envAsMap[key] = value
		}
	}
	return envAsMap
}

// assumes entry is not the empty string
func split(entry string) (key, value string) {
	parts := strings.SplitN(entry, "=", 2)
	if len(parts) < 2 {
		return parts[0], ""
	}
	return parts[0], parts[1]
}

func GetString(config map[string]string, key string, defaultValue string) string {
	if config == nil {
		return defaultValue
	}

	if val, ok := config[key]; ok && val != "" {
		return val
	}
	return defaultValue
}

// Split reads a comma-separated value and returns its trimmed parts.
func Split(config map[string]string, key string, defaultValue string) []string {
	raw := GetString(config, key, defaultValue)

	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			values = append(values, trimmed)
		}
	}
	return values
}

func GetInt(config map[string]string, key string, defaultValue int) int {
	if config == nil {
		return defaultValue
	}

	s, ok := config[key]
	if !ok {
		return defaultValue
	}

	asInt, err := strconv.Atoi(s)
	if err != nil {
		return defaultValue
	}

	return asInt
}

func GetInt64(config map[string]string, key string, defaultValue int64) int64 {
	if config == nil {
		return defaultValue
	}

	s, ok := config[key]
	if !ok {
		return defaultValue
	}

	asInt, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return defaultValue
	}

	return asInt
}
