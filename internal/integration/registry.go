// internal/integration/registry.go
package integration

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/leasemagnets/leadintake-backend/internal/model"
	"github.com/leasemagnets/leadintake-backend/internal/repository"
)

// Handler is one integration kind's capability pair: build the outbound
// payload and name the backend path it goes to.
type Handler interface {
	Path() string
	Build(req *DispatchRequest) (any, error)
}

// ResponseHandler is implemented by integrations that care about the
// backend's response body (today only entrata).
type ResponseHandler interface {
	HandleResponse(req *DispatchRequest, body []byte) error
}

// Registry maps integration kinds to handlers. New integrations register
// independently, there is no central switch to grow.
type Registry struct {
	handlers map[string]Handler
}

func NewRegistry() *Registry {
	return &Registry{handlers: make(map[string]Handler)}
}

func (r *Registry) Register(kind string, h Handler) {
	r.handlers[kind] = h
}

func (r *Registry) Lookup(kind string) (Handler, bool) {
	h, ok := r.handlers[kind]
	return h, ok
}

// NewDefaultRegistry wires the three production integrations.
func NewDefaultRegistry(leads repository.LeadRepositoryInterface) *Registry {
	r := NewRegistry()
	r.Register("entrata", &EntrataHandler{Leads: leads})
	r.Register("email-team", &TeamEmailHandler{})
	r.Register("email-lead-promo", &PromoEmailHandler{})
	return r
}

// ====================== entrata ======================

// EntrataHandler pushes the lead into the Entrata CRM and writes the
// returned applicant/application ids back onto the stored lead.
type EntrataHandler struct {
	Leads repository.LeadRepositoryInterface
}

func (h *EntrataHandler) Path() string { return "/integrations/entrata/sendLeads" }

func (h *EntrataHandler) Build(req *DispatchRequest) (any, error) {
	return BuildEntrataPayload(req), nil
}

// entrataResponse mirrors the nested envelope Entrata embeds in a 200.
type entrataResponse struct {
	Response struct {
		Result struct {
			Prospects struct {
				Prospect []entrataProspect `json:"prospect"`
			} `json:"prospects"`
		} `json:"result"`
	} `json:"response"`
}

type entrataProspect struct {
	Status        string      `json:"status"`
	ApplicantID   json.Number `json:"applicantId"`
	ApplicationID json.Number `json:"applicationId"`
	Message       string      `json:"message"`
}

func (h *EntrataHandler) HandleResponse(req *DispatchRequest, body []byte) error {
	var resp entrataResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return fmt.Errorf("unexpected entrata response: %w", err)
	}

	prospects := resp.Response.Result.Prospects.Prospect
	if len(prospects) == 0 {
		return fmt.Errorf("entrata response contained no prospect")
	}

	prospect := prospects[0]
	if prospect.Status != "Success" {
		return fmt.Errorf("entrata rejected lead: %s", prospect.Message)
	}

	log.Println("📩 Pushing Entrata applicant ID", prospect.ApplicantID.String(),
		"and application ID", prospect.ApplicationID.String(), "to store")

	return h.Leads.SetEntrataResult(req.Lead.FormID, req.Lead.Email, &model.EntrataResult{
		ApplicantID:   prospect.ApplicantID.String(),
		ApplicationID: prospect.ApplicationID.String(),
	})
}

// ====================== email-team ======================

// TeamEmailHandler triggers the new-lead notification email to the
// customer's team. The response body is not interesting.
type TeamEmailHandler struct{}

func (h *TeamEmailHandler) Path() string { return "/email/newLead" }

func (h *TeamEmailHandler) Build(req *DispatchRequest) (any, error) {
	return BuildTeamEmailPayload(req), nil
}

// ====================== email-lead-promo ======================

// PromoEmailHandler triggers the promo email to the lead itself.
type PromoEmailHandler struct{}

func (h *PromoEmailHandler) Path() string { return "/email/promo" }

func (h *PromoEmailHandler) Build(req *DispatchRequest) (any, error) {
	return BuildPromoEmailPayload(req)
}
