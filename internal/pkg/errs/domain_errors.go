package errs

// Failure taxonomy shared by the use case layer and the HTTP mapping.
// Use case errors are marked with one of these so errors.Is keeps working
// after wrapping.
var (
	// ErrValidation: malformed input, or a seat that does not belong to the event.
	ErrValidation = New("validation failed")
	// ErrNotFound: the event or sale does not exist.
	ErrNotFound = New("not found")
	// ErrConflict: the event is cancelled or a seat is no longer available.
	ErrConflict = New("conflict")
	// ErrConsistency: the recomputed total differs from the quoted total; the caller must re-quote.
	ErrConsistency = New("quoted total no longer matches")
)

func IsValidation(err error) bool  { return Is(err, ErrValidation) }
func IsNotFound(err error) bool    { return Is(err, ErrNotFound) }
func IsConflict(err error) bool    { return Is(err, ErrConflict) }
func IsConsistency(err error) bool { return Is(err, ErrConsistency) }
