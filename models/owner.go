package models

import "github.com/hyemin916/drip-drop-dev/config"

// BlogOwner identifies the single author of the blog, read from environment
// configuration. Recorded as the author on about-page writes.
type BlogOwner struct {
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}

func OwnerFromConfig(c map[string]string) BlogOwner {
	return BlogOwner{
		Name:  config.GetString(c, config.KeyOwnerName, "Blog Owner"),
		Email: config.GetString(c, config.KeyOwnerEmail, ""),
	}
}
