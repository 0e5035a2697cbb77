package specialist

import (
	"fmt"

	contractx "github.com/tanpawarit/chative-specialists/agent/contract"
)

// Error is the single failure kind of a specialist. It unwraps to both the
// failure class (contract.ErrModelInvoke, contract.ErrValidation, ...) and the
// underlying cause.
type Error struct {
	Specialist contractx.SpecialistName
	Kind       error
	Err        error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s error: %v", displayName(e.Specialist), e.Err)
}

func (e *Error) Unwrap() []error {
	return []error{e.Kind, e.Err}
}

func newError(name contractx.SpecialistName, kind, err error) *Error {
	return &Error{Specialist: name, Kind: kind, Err: err}
}

func displayName(name contractx.SpecialistName) string {
	switch name {
	case contractx.SpecialistAddress:
		return "AddressSpecialist"
	case contractx.SpecialistDamage:
		return "DamageSpecialist"
	case contractx.SpecialistDummy:
		return "DummySpecialist"
	default:
		return "Specialist"
	}
}
