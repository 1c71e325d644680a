package controller_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/leasemagnets/leadintake-backend/internal/controller"
	appErrors "github.com/leasemagnets/leadintake-backend/internal/errors"
	"github.com/leasemagnets/leadintake-backend/internal/model"
	"github.com/leasemagnets/leadintake-backend/internal/service"
)

type stubLeadRepo struct {
	leads map[string][]model.Lead
}

func (s *stubLeadRepo) Upsert(lead *model.Lead) error {
	s.leads[lead.FormID] = append(s.leads[lead.FormID], *lead)
	return nil
}

func (s *stubLeadRepo) GetByEmail(formID, email string) (*model.Lead, error) { return nil, nil }

func (s *stubLeadRepo) ListByFormID(formID string) ([]model.Lead, error) {
	leads, ok := s.leads[formID]
	if !ok {
		return []model.Lead{}, nil
	}
	return leads, nil
}

func (s *stubLeadRepo) SetEntrataResult(formID, email string, result *model.EntrataResult) error {
	return nil
}

type stubCustomerRepo struct {
	existing map[string]bool
}

func (s *stubCustomerRepo) GetByFormID(formID string) (*model.CustomerConfig, error) {
	return &model.CustomerConfig{FormID: formID}, nil
}

func (s *stubCustomerRepo) Exists(formID string) (bool, error) {
	return s.existing[formID], nil
}

func (s *stubCustomerRepo) Ensure(formID string) error {
	s.existing[formID] = true
	return nil
}

type stubQueue struct {
	published int
}

func (s *stubQueue) Publish(topic string, payload any) error {
	s.published++
	return nil
}

func (s *stubQueue) Subscribe(topic string, handler func(payload any) error) error { return nil }

func newController() (*controller.LeadController, *stubCustomerRepo, *stubQueue) {
	customers := &stubCustomerRepo{existing: map[string]bool{}}
	q := &stubQueue{}
	c := &controller.LeadController{
		LeadService: &service.LeadService{
			LeadRepo:     &stubLeadRepo{leads: map[string][]model.Lead{}},
			CustomerRepo: customers,
			Queue:        q,
		},
	}
	return c, customers, q
}

func TestInsertNewLeadRejectsNonPOST(t *testing.T) {
	c, _, q := newController()

	req := httptest.NewRequest(http.MethodGet, "/leads", nil)
	w := httptest.NewRecorder()

	c.InsertNewLead(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected 405, got %d", w.Code)
	}
	if q.published != 0 {
		t.Errorf("rejected request must have no side effects")
	}
}

func TestInsertNewLeadAccepted(t *testing.T) {
	c, _, q := newController()

	body := `{
        "formId": "demo-lofts",
        "name": "Jane Q Public",
        "email": "jane@example.com",
        "phone": "555-0101",
        "leased": false,
        "source": "Virtual Tour",
        "tourTime": "2021-03-05T09:07:00Z",
        "tourAnswers": ["Intro", "Pool"]
    }`
	req := httptest.NewRequest(http.MethodPost, "/leads", strings.NewReader(body))
	w := httptest.NewRecorder()

	c.InsertNewLead(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	// The response acknowledges intake only, never dispatch results.
	if w.Body.String() != "Inserted new lead" {
		t.Errorf("unexpected response body: %q", w.Body.String())
	}
	if q.published != 1 {
		t.Errorf("expected 1 queued dispatch, got %d", q.published)
	}
}

func TestInsertNewLeadMissingFields(t *testing.T) {
	c, _, _ := newController()

	req := httptest.NewRequest(http.MethodPost, "/leads", strings.NewReader(`{"name": "No Form"}`))
	w := httptest.NewRecorder()

	c.InsertNewLead(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestGetLeadsUnknownForm(t *testing.T) {
	c, _, _ := newController()

	req := httptest.NewRequest(http.MethodGet, "/leads?formID=nope", nil)
	w := httptest.NewRecorder()

	c.GetLeads(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
	wantMsg := (&appErrors.ErrCustomerNotFound{FormID: "nope"}).Error()
	if !strings.Contains(w.Body.String(), wantMsg) {
		t.Errorf("expected %q in body, got %q", wantMsg, w.Body.String())
	}
}

func TestGetLeadsEmptyCollection(t *testing.T) {
	c, customers, _ := newController()
	customers.existing["demo-lofts"] = true

	req := httptest.NewRequest(http.MethodGet, "/leads?formID=demo-lofts", nil)
	w := httptest.NewRecorder()

	c.GetLeads(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var leads []model.Lead
	if err := json.NewDecoder(w.Body).Decode(&leads); err != nil {
		t.Fatalf("response is not a JSON array: %v", err)
	}
	if len(leads) != 0 {
		t.Errorf("expected empty array, got %d leads", len(leads))
	}
}
