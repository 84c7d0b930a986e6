// Package pin evaluates candidate transactional pins against the platform
// policies before submission. The server enforces the same rules again.
package pin

import (
	"github.com/atorresprocessa/go-aspen-client/aspen/api"
)

// Length every pin must have. Platform constant, not negotiable per app.
const Length = 6

// Policy is one independently evaluable rule over a candidate pin.
type Policy interface {
	Evaluate(pin string) error
}

// LengthPolicy requires exactly six digits.
type LengthPolicy struct{}

func (LengthPolicy) Evaluate(pin string) error {
	if len(pin) != Length || !allDigits(pin) {
		return api.NewPolicyError("Pin es muy largo o muy corto. Debe tener 6 caracteres")
	}
	return nil
}

// ConsecutivePolicy rejects strictly ascending or descending digit runs,
// like 123456 or 654321.
type ConsecutivePolicy struct{}

func (ConsecutivePolicy) Evaluate(pin string) error {
	if len(pin) < 2 {
		return nil
	}

	ascending, descending := true, true
	for i := 1; i < len(pin); i++ {
		if pin[i] != pin[i-1]+1 {
			ascending = false
		}
		if pin[i] != pin[i-1]-1 {
			descending = false
		}
	}

	if ascending || descending {
		return api.NewPolicyError("Pin invalido. Por favor utilice caracteres que no sean consecutivos")
	}
	return nil
}

// TwinsPolicy rejects pins built from one repeated digit, like 111111.
type TwinsPolicy struct{}

func (TwinsPolicy) Evaluate(pin string) error {
	if len(pin) < 2 {
		return nil
	}

	for i := 1; i < len(pin); i++ {
		if pin[i] != pin[0] {
			return nil
		}
	}
	return api.NewPolicyError("Pin invalido. Por favor utilice caracteres que no sean iguales")
}

// DefaultPolicies is the rule set the platform runs, in evaluation order.
func DefaultPolicies() []Policy {
	return []Policy{LengthPolicy{}, ConsecutivePolicy{}, TwinsPolicy{}}
}

// Evaluate runs the default policies and short-circuits on the first
// violation. A nil return means the candidate is submittable.
func Evaluate(pin string) error {
	for _, p := range DefaultPolicies() {
		if err := p.Evaluate(pin); err != nil {
			return err
		}
	}
	return nil
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
