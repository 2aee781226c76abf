package httperr

import "errors"

// BusinessError is a request-scoped, recoverable rejection. Code is a
// stable machine identifier, Field names the offending input field and
// Message is safe to show to the caller.
type BusinessError struct {
	Code    string
	Field   string
	Message string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusinessField(code, field, message string) error {
	return BusinessError{Code: code, Field: field, Message: message}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

func AsBusiness(err error) (BusinessError, bool) {
	var be BusinessError
	ok := errors.As(err, &be)
	return be, ok
}
