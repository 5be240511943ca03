// Package except lets code raise an error through panic and have a caller
// further up the stack recover exactly that error, without the two ends
// agreeing on anything but this package. Its user is vector.CheckInvariants:
// each structural check there is an ordinary recursive function with no
// error return value, which raises a problem with Throw the moment it finds
// one, and CheckInvariants turns it back into a normal Go error with PCall.
// The tree algorithms behind the Sequence methods do not use it.
package except

// Thrown wraps an error raised by Throw, so Catch can recognize it and
// distinguish it from an unrelated panic.
type Thrown struct {
	Wrapped error
}

func (t Thrown) Error() string {
	return "thrown: " + t.Wrapped.Error()
}

// Throw panics with err wrapped so that it can be recovered by Catch.
func Throw(err error) {
	panic(Thrown{err})
}

// Catch recovers a panic raised by Throw and stores the wrapped error into
// *perr. A panic not raised by Throw is re-raised unchanged. Catch must be
// called directly from a defer.
func Catch(perr *error) {
	r := recover()
	if r == nil {
		return
	}
	if exc, ok := r.(Thrown); ok {
		*perr = exc.Wrapped
	} else {
		panic(r)
	}
}

// PCall runs f and returns whatever error it Throw, or nil if f returned
// normally. It cannot distinguish between f throwing nothing and f
// throwing a nil error, and it does not protect against panics that
// didn't go through Throw.
func PCall(f func()) (e error) {
	defer Catch(&e)
	f()
	return nil
}
