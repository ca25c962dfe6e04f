// util/phone_util.go

package util

import (
	"fmt"

	"github.com/nyaruka/phonenumbers"

	registry_errors "github.com/tracegraph/registry/errors"
)

type PhoneValidator struct{}

func NewPhoneValidator() *PhoneValidator {
	return &PhoneValidator{}
}

// Validate checks that phone is a possible number. Parsing with the "ZZ"
// region forces callers to submit full international (E.164) format.
func (v *PhoneValidator) Validate(phone string) error {
	parsed, err := phonenumbers.Parse(phone, "ZZ")
	if err != nil {
		return fmt.Errorf("%w: could not be parsed: %v", registry_errors.ErrInvalidPhoneNumber, err)
	}
	if reason := phonenumbers.IsPossibleNumberWithReason(parsed); reason != phonenumbers.IS_POSSIBLE {
		return fmt.Errorf("%w: not a possible number (reason %d)", registry_errors.ErrInvalidPhoneNumber, reason)
	}
	return nil
}
