package models

import (
	"net/mail"
	"net/url"
	"time"

	"github.com/hyemin916/drip-drop-dev/errs"
)

const MaxAboutContentLength = 10000

// AboutMe is the singleton "about me" record. Exactly one logical instance
// exists; the ID is fixed.
type AboutMe struct {
	ID        string    `json:"id"` // always "about-me"
	Content   string    `json:"content"`
	UpdatedAt time.Time `json:"updatedAt"`
	Author    string    `json:"author"`
	Image     string    `json:"image,omitempty"`
	Email     string    `json:"email,omitempty"`
	Github    string    `json:"github,omitempty"`
	Twitter   string    `json:"twitter,omitempty"`
	Linkedin  string    `json:"linkedin,omitempty"`
}

const AboutMeID = "about-me"

// AboutMeUpdate is the payload for the create-or-update-in-place write.
type AboutMeUpdate struct {
	Content  string `json:"content"`
	Image    string `json:"image,omitempty"`
	Email    string `json:"email,omitempty"`
	Github   string `json:"github,omitempty"`
	Twitter  string `json:"twitter,omitempty"`
	Linkedin string `json:"linkedin,omitempty"`
}

func (a AboutMeUpdate) Validate() error {
	if a.Content == "" {
		return errs.NewMissingRequiredFieldError("content")
	}
	if len(a.Content) > MaxAboutContentLength {
		return errs.NewInvalidFieldError("content", "must be at most 10000 characters")
	}
	if a.Email != "" {
		if _, err := mail.ParseAddress(a.Email); err != nil {
			return errs.NewInvalidFieldError("email", "must be a valid email address")
		}
	}
	for field, value := range map[string]string{
		"github":   a.Github,
		"twitter":  a.Twitter,
		"linkedin": a.Linkedin,
	} {
		if value == "" {
			continue
		}
		u, err := url.Parse(value)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return errs.NewInvalidFieldError(field, "must be an absolute URL")
		}
	}
	return nil
}
