package algebra

import "errors"

// ErrDivisionByZero is returned when a field element is divided by a value
// that IsZero.
var ErrDivisionByZero = errors.New("algebra: division by zero")
