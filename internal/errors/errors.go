// internal/errors/errors.go
package appErrors

import (
	"errors"
	"fmt"
)

// ErrCustomerNotFound is a sentinel error
type ErrCustomerNotFound struct {
	FormID string
}

func (e *ErrCustomerNotFound) Error() string {
	return fmt.Sprintf("no document with ID %s", e.FormID)
}

// Helper constructor
func NewCustomerNotFound(formID string) error {
	return &ErrCustomerNotFound{FormID: formID}
}

// ErrPromoNotLive signals an email-lead-promo dispatch whose first promo
// code is disabled, so no outbound call may be made.
var ErrPromoNotLive = errors.New("first promo code is not live")
