// internal/integration/outcome.go
package integration

// OutcomeStatus classifies how one integration's dispatch ended.
type OutcomeStatus string

const (
	StatusSuccess          OutcomeStatus = "success"
	StatusTransportError   OutcomeStatus = "transport_error"   // the outbound call itself failed
	StatusIntegrationError OutcomeStatus = "integration_error" // the integration reported failure
	StatusWarning          OutcomeStatus = "warning"           // skipped: unknown kind or disabled prerequisite
)

// Outcome records the result of one integration attempt within a fan-out.
// Outcomes are logged, never persisted.
type Outcome struct {
	Kind   string
	Status OutcomeStatus
	Detail string
}

func (o Outcome) OK() bool {
	return o.Status == StatusSuccess
}
