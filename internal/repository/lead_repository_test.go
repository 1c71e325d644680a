package repository_test

import (
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/leasemagnets/leadintake-backend/internal/model"
	"github.com/leasemagnets/leadintake-backend/internal/repository"
)

func TestUpsertLeadWritesOneRowPerFormAndEmail(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	repo := &repository.LeadRepository{DB: db}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO leads")).
		WithArgs(
			"demo-lofts", "jane@example.com", "Jane Q Public", "555-0101",
			false, "Virtual Tour", sqlmock.AnyArg(), "2021-03-05T09:07:00Z", sqlmock.AnyArg(),
		).
		WillReturnResult(sqlmock.NewResult(0, 1))

	lead := &model.Lead{
		FormID:    "demo-lofts",
		Email:     "jane@example.com",
		Name:      "Jane Q Public",
		Phone:     "555-0101",
		Source:    "Virtual Tour",
		Answers:   []string{"Intro", "Pool"},
		CreatedAt: "2021-03-05T09:07:00Z",
	}
	if err := repo.Upsert(lead); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestSetEntrataResultTouchesOnlyEntrataColumn(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	repo := &repository.LeadRepository{DB: db}

	mock.ExpectExec(regexp.QuoteMeta("UPDATE leads SET entrata=$1, updated_at=NOW() WHERE form_id=$2 AND email=$3")).
		WithArgs([]byte(`{"applicant_id":"111","application_id":"222"}`), "demo-lofts", "jane@example.com").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.SetEntrataResult("demo-lofts", "jane@example.com", &model.EntrataResult{
		ApplicantID:   "111",
		ApplicationID: "222",
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestGetByEmailNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	repo := &repository.LeadRepository{DB: db}

	mock.ExpectQuery(regexp.QuoteMeta("SELECT form_id, email, name, phone, leased, source, answers, created_at, updated_at, entrata")).
		WithArgs("demo-lofts", "ghost@example.com").
		WillReturnRows(sqlmock.NewRows([]string{
			"form_id", "email", "name", "phone", "leased", "source", "answers", "created_at", "updated_at", "entrata",
		}))

	lead, err := repo.GetByEmail("demo-lofts", "ghost@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if lead != nil {
		t.Errorf("expected nil for missing lead, got %+v", lead)
	}
}
