// internal/model/integration.go
package model

// IntegrationConfig is one row of a customer's integrations collection.
// The config JSON carries whichever credential fields the kind needs.
type IntegrationConfig struct {
	FormID string `db:"form_id" json:"-"`
	Kind   string `db:"kind" json:"kind"`
	Live   bool   `db:"live" json:"live"`

	// entrata
	Username            string `json:"username,omitempty"`
	Password            string `json:"password,omitempty"`
	PropertyID          string `json:"property_id,omitempty"`
	OriginatingSourceID string `json:"originating_source_id,omitempty"`

	// email-team
	TeamEmail string `json:"team_email,omitempty"`
}
