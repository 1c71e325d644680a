// internal/service/lead_service.go
package service

import (
	"errors"
	"log"
	"strings"

	appErrors "github.com/leasemagnets/leadintake-backend/internal/errors"
	"github.com/leasemagnets/leadintake-backend/internal/model"
	"github.com/leasemagnets/leadintake-backend/internal/queue"
	"github.com/leasemagnets/leadintake-backend/internal/repository"
)

// ErrMissingFields rejects a submission without the fields that key the
// lead document.
var ErrMissingFields = errors.New("formId and email are required")

type LeadService struct {
	LeadRepo     repository.LeadRepositoryInterface
	CustomerRepo repository.CustomerRepositoryInterface
	Queue        queue.Queue
}

// InsertLeadRequest is the inbound submission contract.
type InsertLeadRequest struct {
	FormID        string   `json:"formId"`
	Name          string   `json:"name"`
	Email         string   `json:"email"`
	Phone         string   `json:"phone"`
	Leased        bool     `json:"leased"`
	Source        string   `json:"source"`
	TourTime      string   `json:"tourTime"`
	TourAnswers   []string `json:"tourAnswers"`
	IsTestRequest bool     `json:"isTestRequest"`
}

// InsertNewLead persists the lead and, unless the submission is flagged
// as a test, enqueues the integration fan-out. Persistence always happens
// before the dispatch job is published; the caller's response never
// reflects dispatch outcomes.
func (s *LeadService) InsertNewLead(req *InsertLeadRequest) error {
	if strings.TrimSpace(req.FormID) == "" || strings.TrimSpace(req.Email) == "" {
		return ErrMissingFields
	}

	// First write for a form creates the customer document implicitly.
	if err := s.CustomerRepo.Ensure(req.FormID); err != nil {
		return err
	}

	lead := &model.Lead{
		FormID:    req.FormID,
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Leased:    req.Leased,
		Source:    req.Source,
		Answers:   req.TourAnswers,
		CreatedAt: req.TourTime,
	}
	if err := s.LeadRepo.Upsert(lead); err != nil {
		return err
	}
	log.Println("✅ Inserted new lead:", req.FormID, req.Email)

	if req.IsTestRequest {
		log.Println("📩 Received a test request, inserting lead but not pushing to integrations")
		return nil
	}

	if err := s.Queue.Publish(queue.DispatchTopic, queue.DispatchJob{FormID: req.FormID, Email: req.Email}); err != nil {
		// The lead is already stored; a publish failure only costs the
		// notifications, so it is logged rather than surfaced.
		log.Println("⚠️ failed to enqueue lead dispatch:", err)
	}

	return nil
}

// GetLeads returns every lead captured for a form.
func (s *LeadService) GetLeads(formID string) ([]model.Lead, error) {
	exists, err := s.CustomerRepo.Exists(formID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, appErrors.NewCustomerNotFound(formID)
	}
	return s.LeadRepo.ListByFormID(formID)
}
