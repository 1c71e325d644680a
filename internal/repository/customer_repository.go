package repository

import (
	"database/sql"
	"encoding/json"

	appErrors "github.com/leasemagnets/leadintake-backend/internal/errors"
	"github.com/leasemagnets/leadintake-backend/internal/model"
)

// CustomerRepositoryInterface defines methods used by service and dispatcher
type CustomerRepositoryInterface interface {
	GetByFormID(formID string) (*model.CustomerConfig, error)
	Exists(formID string) (bool, error)
	Ensure(formID string) error
}

// CustomerRepository is the concrete implementation
type CustomerRepository struct {
	DB *sql.DB
}

// GetByFormID fetches the customer document for a form. The JSONB columns
// may be empty for a customer created implicitly by a lead write.
func (r *CustomerRepository) GetByFormID(formID string) (*model.CustomerConfig, error) {
	query := `
        SELECT form_id, company_info, branding, promos
        FROM customers
        WHERE form_id = $1
    `
	var cfg model.CustomerConfig
	var companyInfo, branding, promos []byte
	err := r.DB.QueryRow(query, formID).Scan(&cfg.FormID, &companyInfo, &branding, &promos)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.NewCustomerNotFound(formID)
		}
		return nil, err
	}

	if len(companyInfo) > 0 {
		if err := json.Unmarshal(companyInfo, &cfg.CompanyInfo); err != nil {
			return nil, err
		}
	}
	if len(branding) > 0 {
		if err := json.Unmarshal(branding, &cfg.Branding); err != nil {
			return nil, err
		}
	}
	if len(promos) > 0 {
		if err := json.Unmarshal(promos, &cfg.Promos); err != nil {
			return nil, err
		}
	}
	return &cfg, nil
}

func (r *CustomerRepository) Exists(formID string) (bool, error) {
	var count int
	err := r.DB.QueryRow(`SELECT COUNT(*) FROM customers WHERE form_id = $1`, formID).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Ensure creates the customer row if it doesn't exist yet, mirroring the
// legacy store where a first lead write created the customer document.
func (r *CustomerRepository) Ensure(formID string) error {
	_, err := r.DB.Exec(`INSERT INTO customers (form_id) VALUES ($1) ON CONFLICT (form_id) DO NOTHING`, formID)
	return err
}

var _ CustomerRepositoryInterface = (*CustomerRepository)(nil)
