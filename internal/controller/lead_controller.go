// internal/controller/lead_controller.go
package controller

import (
    "encoding/json"
    "errors"
    "log"
    "net/http"

    appErrors "github.com/leasemagnets/leadintake-backend/internal/errors"
    "github.com/leasemagnets/leadintake-backend/internal/service"
)

type LeadController struct {
    LeadService *service.LeadService
}

// InsertNewLead accepts a form submission, stores it and queues the
// integration fan-out. The response only acknowledges intake: by design
// it is written before any dispatch resolves, so callers can never read
// dispatch results out of it.
func (c *LeadController) InsertNewLead(w http.ResponseWriter, r *http.Request) {
    if r.Method != http.MethodPost {
        http.Error(w, "insertNewLead should receive a POST request", http.StatusMethodNotAllowed)
        return
    }

    var body service.InsertLeadRequest
    if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
        http.Error(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
        return
    }

    log.Println("📩 Received new lead for form:", body.FormID)

    if err := c.LeadService.InsertNewLead(&body); err != nil {
        if errors.Is(err, service.ErrMissingFields) {
            http.Error(w, err.Error(), http.StatusBadRequest)
            return
        }
        http.Error(w, "failed to insert lead: "+err.Error(), http.StatusInternalServerError)
        return
    }

    w.Write([]byte("Inserted new lead"))
}

// GetLeads returns the lead collection of one form as a JSON array.
func (c *LeadController) GetLeads(w http.ResponseWriter, r *http.Request) {
    formID := r.URL.Query().Get("formID")
    if formID == "" {
        http.Error(w, "missing formID query parameter", http.StatusBadRequest)
        return
    }

    leads, err := c.LeadService.GetLeads(formID)
    if err != nil {
        var notFound *appErrors.ErrCustomerNotFound
        if errors.As(err, &notFound) {
            http.Error(w, "Error: "+notFound.Error(), http.StatusNotFound)
            return
        }
        http.Error(w, "failed to fetch leads: "+err.Error(), http.StatusInternalServerError)
        return
    }

    w.Header().Set("Content-Type", "application/json")
    json.NewEncoder(w).Encode(leads)
}
