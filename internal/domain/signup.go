package domain

import (
	"fmt"
	"strings"
	"time"
)

const (
	defaultPackSubject = "Recipe Pack"
	notSpecified       = "Not specified"
)

// SignupRequest is the body posted by the pack pages' signup forms.
type SignupRequest struct {
	Email    string `json:"email" validate:"required"`
	PackName string `json:"packName,omitempty"`
	Source   string `json:"source,omitempty"`
}

// Notification builds the message that tells the site owner about a signup.
// Optional fields that were left out read "Not specified".
func (r SignupRequest) Notification(to string, at time.Time) Message {
	subjectPack := r.PackName
	if subjectPack == "" {
		subjectPack = defaultPackSubject
	}

	var b strings.Builder
	b.WriteString("New email signup!\n\n")
	fmt.Fprintf(&b, "Email: %s\n", r.Email)
	fmt.Fprintf(&b, "Pack: %s\n", orNotSpecified(r.PackName))
	fmt.Fprintf(&b, "Source: %s\n", orNotSpecified(r.Source))
	fmt.Fprintf(&b, "Time: %s", at.UTC().Format("2006-01-02T15:04:05.000Z07:00"))

	return Message{
		To:      to,
		Subject: "New Signup: " + subjectPack,
		Body:    b.String(),
	}
}

func orNotSpecified(s string) string {
	if s == "" {
		return notSpecified
	}
	return s
}
