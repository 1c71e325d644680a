package repository

import (
    "database/sql"
    "encoding/json"
    "time"

    "github.com/leasemagnets/leadintake-backend/internal/model"
)

type LeadRepositoryInterface interface {
    Upsert(lead *model.Lead) error
    GetByEmail(formID, email string) (*model.Lead, error)
    ListByFormID(formID string) ([]model.Lead, error)
    SetEntrataResult(formID, email string, result *model.EntrataResult) error
}

type LeadRepository struct {
    DB *sql.DB
}

// Upsert writes a lead under its (form_id, email) key. Re-submitting the
// same email overwrites the previous document instead of duplicating it.
func (r *LeadRepository) Upsert(lead *model.Lead) error {
    lead.UpdatedAt = time.Now()

    answers, err := json.Marshal(lead.Answers)
    if err != nil {
        return err
    }

    query := `
        INSERT INTO leads (form_id, email, name, phone, leased, source, answers, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        ON CONFLICT (form_id, email) DO UPDATE
        SET name=EXCLUDED.name, phone=EXCLUDED.phone, leased=EXCLUDED.leased,
            source=EXCLUDED.source, answers=EXCLUDED.answers,
            created_at=EXCLUDED.created_at, updated_at=EXCLUDED.updated_at
    `
    _, err = r.DB.Exec(query,
        lead.FormID, lead.Email, lead.Name, lead.Phone, lead.Leased,
        lead.Source, answers, lead.CreatedAt, lead.UpdatedAt,
    )
    return err
}

func (r *LeadRepository) GetByEmail(formID, email string) (*model.Lead, error) {
    query := `
        SELECT form_id, email, name, phone, leased, source, answers, created_at, updated_at, entrata
        FROM leads
        WHERE form_id=$1 AND email=$2
    `
    lead, err := scanLead(r.DB.QueryRow(query, formID, email))
    if err != nil {
        if err == sql.ErrNoRows {
            return nil, nil // not found
        }
        return nil, err
    }
    return lead, nil
}

func (r *LeadRepository) ListByFormID(formID string) ([]model.Lead, error) {
    query := `
        SELECT form_id, email, name, phone, leased, source, answers, created_at, updated_at, entrata
        FROM leads
        WHERE form_id=$1
        ORDER BY email
    `
    rows, err := r.DB.Query(query, formID)
    if err != nil {
        return nil, err
    }
    defer rows.Close()

    leads := []model.Lead{}
    for rows.Next() {
        lead, err := scanLead(rows)
        if err != nil {
            return nil, err
        }
        leads = append(leads, *lead)
    }
    return leads, rows.Err()
}

// SetEntrataResult merges the CRM ids onto an existing lead. Only the
// entrata column is touched, the intake fields survive untouched.
func (r *LeadRepository) SetEntrataResult(formID, email string, result *model.EntrataResult) error {
    payload, err := json.Marshal(result)
    if err != nil {
        return err
    }
    query := `UPDATE leads SET entrata=$1, updated_at=NOW() WHERE form_id=$2 AND email=$3`
    _, err = r.DB.Exec(query, payload, formID, email)
    return err
}

type rowScanner interface {
    Scan(dest ...interface{}) error
}

func scanLead(row rowScanner) (*model.Lead, error) {
    var lead model.Lead
    var answers, entrata []byte
    err := row.Scan(
        &lead.FormID, &lead.Email, &lead.Name, &lead.Phone, &lead.Leased,
        &lead.Source, &answers, &lead.CreatedAt, &lead.UpdatedAt, &entrata,
    )
    if err != nil {
        return nil, err
    }
    if len(answers) > 0 {
        if err := json.Unmarshal(answers, &lead.Answers); err != nil {
            return nil, err
        }
    }
    if len(entrata) > 0 {
        lead.Entrata = &model.EntrataResult{}
        if err := json.Unmarshal(entrata, lead.Entrata); err != nil {
            return nil, err
        }
    }
    return &lead, nil
}

var _ LeadRepositoryInterface = (*LeadRepository)(nil)
