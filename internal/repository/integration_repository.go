package repository

import (
	"database/sql"
	"encoding/json"

	"github.com/leasemagnets/leadintake-backend/internal/model"
)

type IntegrationRepositoryInterface interface {
	ListByFormID(formID string) ([]model.IntegrationConfig, error)
}

type IntegrationRepository struct {
	DB *sql.DB
}

// ListByFormID returns every configured integration for a form, live or
// not, ordered by kind so enumeration is deterministic per configuration.
func (r *IntegrationRepository) ListByFormID(formID string) ([]model.IntegrationConfig, error) {
	query := `
        SELECT kind, live, config
        FROM integrations
        WHERE form_id = $1
        ORDER BY kind
    `
	rows, err := r.DB.Query(query, formID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	integrations := []model.IntegrationConfig{}
	for rows.Next() {
		var ic model.IntegrationConfig
		var kind string
		var live bool
		var config []byte
		if err := rows.Scan(&kind, &live, &config); err != nil {
			return nil, err
		}
		if len(config) > 0 {
			if err := json.Unmarshal(config, &ic); err != nil {
				return nil, err
			}
		}
		ic.FormID = formID
		ic.Kind = kind
		ic.Live = live
		integrations = append(integrations, ic)
	}
	return integrations, rows.Err()
}

var _ IntegrationRepositoryInterface = (*IntegrationRepository)(nil)
