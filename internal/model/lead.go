// internal/model/lead.go
package model

import "time"

// Lead is one captured video-tour form submission. Field names match the
// legacy lead collection so read-back stays shape-compatible.
type Lead struct {
	FormID    string         `db:"form_id" json:"-"`
	Name      string         `db:"name" json:"name"`
	Email     string         `db:"email" json:"email"`
	Phone     string         `db:"phone" json:"phone"`
	Leased    bool           `db:"leased" json:"leased"`
	Source    string         `db:"source" json:"source"`
	Answers   []string       `db:"answers" json:"answers"`
	CreatedAt string         `db:"created_at" json:"created_at"` // tour time as submitted by the caller
	UpdatedAt time.Time      `db:"updated_at" json:"updated_at"`
	Entrata   *EntrataResult `db:"entrata" json:"entrata,omitempty"`
}

// EntrataResult is appended to a lead after a successful CRM push.
type EntrataResult struct {
	ApplicantID   string `json:"applicant_id"`
	ApplicationID string `json:"application_id"`
}
