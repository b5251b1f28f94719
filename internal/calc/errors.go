package calc

// constError is an immutable error type for sentinel errors.
// It implements the error interface and provides compile-time safety.
type constError string

func (e constError) Error() string { return string(e) }

// Error types for emissions computation.
// These are sentinel errors that can be compared with errors.Is().
var (
	// ErrInvalidCategory indicates an input key with no matching
	// emission factor. These are user-input errors; the caller decides
	// how to surface them.
	ErrInvalidCategory = constError("invalid activity category")

	// ErrInvalidQuantity indicates a negative or non-finite quantity.
	ErrInvalidQuantity = constError("invalid activity quantity")
)
