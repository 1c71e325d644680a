// internal/integration/dispatcher.go
package integration

import (
	"context"
	"errors"
	"log"
	"sync"

	"github.com/google/uuid"

	"github.com/leasemagnets/leadintake-backend/internal/backend"
	appErrors "github.com/leasemagnets/leadintake-backend/internal/errors"
	"github.com/leasemagnets/leadintake-backend/internal/model"
	"github.com/leasemagnets/leadintake-backend/internal/repository"
)

// Dispatcher fans a persisted lead out to every live integration of the
// owning customer. Integrations dispatch concurrently and independently:
// a failure in one never blocks, delays or cancels another.
type Dispatcher struct {
	Backend      backend.Client
	CustomerRepo repository.CustomerRepositoryInterface
	Integrations repository.IntegrationRepositoryInterface
	Registry     *Registry
}

// Dispatch loads the customer configuration, filters the live
// integrations and dispatches each in its own goroutine. It returns once
// every integration's attempt has resolved; callers wanting
// fire-and-forget run it off a queue.
func (d *Dispatcher) Dispatch(ctx context.Context, lead *model.Lead) ([]Outcome, error) {
	runID := uuid.NewString()

	cfg, err := d.CustomerRepo.GetByFormID(lead.FormID)
	if err != nil {
		return nil, err
	}

	integrations, err := d.Integrations.ListByFormID(lead.FormID)
	if err != nil {
		return nil, err
	}

	var wg sync.WaitGroup
	results := make(chan Outcome, len(integrations))

	for _, ic := range integrations {
		if !ic.Live {
			continue
		}
		log.Println("📩 Found live integration:", ic.Kind, "run:", runID)

		req := &DispatchRequest{
			Lead:        *lead,
			CompanyInfo: cfg.CompanyInfo,
			Branding:    cfg.Branding,
			Promos:      cfg.Promos,
			Config:      ic,
		}

		wg.Add(1)
		go func(kind string) {
			defer wg.Done()
			results <- d.dispatchOne(ctx, kind, req)
		}(ic.Kind)
	}

	wg.Wait()
	close(results)

	outcomes := make([]Outcome, 0, len(integrations))
	for outcome := range results {
		switch outcome.Status {
		case StatusSuccess:
			log.Println("✅ Integration", outcome.Kind, "dispatched, run:", runID)
		case StatusWarning:
			log.Println("⚠️ Integration", outcome.Kind, "skipped:", outcome.Detail, "run:", runID)
		default:
			log.Println("⚠️ Integration", outcome.Kind, "failed:", outcome.Detail, "run:", runID)
		}
		outcomes = append(outcomes, outcome)
	}
	return outcomes, nil
}

// dispatchOne makes exactly one outbound attempt for one integration.
func (d *Dispatcher) dispatchOne(ctx context.Context, kind string, req *DispatchRequest) Outcome {
	handler, ok := d.Registry.Lookup(kind)
	if !ok {
		return Outcome{Kind: kind, Status: StatusWarning, Detail: "unknown live integration: " + kind}
	}

	payload, err := handler.Build(req)
	if err != nil {
		if errors.Is(err, appErrors.ErrPromoNotLive) {
			return Outcome{Kind: kind, Status: StatusWarning, Detail: err.Error()}
		}
		return Outcome{Kind: kind, Status: StatusIntegrationError, Detail: err.Error()}
	}

	body, err := d.Backend.Post(ctx, handler.Path(), payload)
	if err != nil {
		return Outcome{Kind: kind, Status: StatusTransportError, Detail: err.Error()}
	}

	if responder, ok := handler.(ResponseHandler); ok {
		if err := responder.HandleResponse(req, body); err != nil {
			return Outcome{Kind: kind, Status: StatusIntegrationError, Detail: err.Error()}
		}
	}

	return Outcome{Kind: kind, Status: StatusSuccess}
}
