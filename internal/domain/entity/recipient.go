// Package entity contains the core business objects of the project.
package entity

import (
	"strings"

	"github.com/google/uuid"
)

// Recipient is a read-only view of a directory user that can receive notifications.
type Recipient struct {
	ID                 uuid.UUID `json:"id"`                  // The directory user ID.
	Name               string    `json:"name"`                // Display name used in email greetings.
	EmailAddress       string    `json:"email_address"`       // Optional email address.
	PushToken          string    `json:"push_token"`          // Optional FCM registration token.
	Locality           string    `json:"locality"`            // Neighbourhood-level community name, free text.
	Town               string    `json:"town"`                // Town name, free text.
	BloodGroup         string    `json:"blood_group"`         // Optional blood group, e.g. "O+".
	ProfessionCategory string    `json:"profession_category"` // Profession category used by service targeting.
}

// HasEmail reports whether the recipient can be reached by email.
func (r *Recipient) HasEmail() bool {
	return strings.TrimSpace(r.EmailAddress) != ""
}

// HasPushToken reports whether the recipient can be reached by push.
func (r *Recipient) HasPushToken() bool {
	return strings.TrimSpace(r.PushToken) != ""
}
