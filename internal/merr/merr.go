// Package merr combines multiple independent errors into one, for
// vector.CheckInvariants, which walks an entire tree and wants to report
// every violation found, not just the first.
package merr

import "strings"

// Multi combines errs into one:
//
//   - If all errors are nil, it returns nil.
//   - If there is exactly one non-nil error, it is returned unchanged.
//   - Otherwise, the result's Error method reports all non-nil messages.
//
// Errors previously returned by Multi are flattened, so
// Multi(Multi(a, b), Multi(c, d)) and Multi(a, b, c, d) return the same
// value.
func Multi(errs ...error) error {
	var nonNil []error
	for _, err := range errs {
		if err == nil {
			continue
		}
		if multi, ok := err.(multiError); ok {
			nonNil = append(nonNil, multi...)
		} else {
			nonNil = append(nonNil, err)
		}
	}
	switch len(nonNil) {
	case 0:
		return nil
	case 1:
		return nonNil[0]
	default:
		return multiError(nonNil)
	}
}

type multiError []error

func (me multiError) Error() string {
	var sb strings.Builder
	sb.WriteString("multiple errors: ")
	for i, e := range me {
		if i > 0 {
			sb.WriteString("; ")
		}
		sb.WriteString(e.Error())
	}
	return sb.String()
}
