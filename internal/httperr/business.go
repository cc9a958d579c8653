package httperr

import "errors"

// BusinessError is a domain rule violation identified by a stable snake_case
// code (invalid_transition, not_dog_owner, ...). Handlers translate the code
// into an HTTP status; the code itself is the API contract.
type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// AsBusiness extracts the business error from err, if there is one.
func AsBusiness(err error) (BusinessError, bool) {
	var be BusinessError
	ok := errors.As(err, &be)
	return be, ok
}
