package factors

// constError is an immutable error type for sentinel errors.
// It implements the error interface and provides compile-time safety.
type constError string

func (e constError) Error() string { return string(e) }

// Error types for factor dataset loading.
// These are sentinel errors that can be compared with errors.Is().
var (
	// ErrMalformedDataset indicates the dataset could not be parsed.
	ErrMalformedDataset = constError("malformed factor dataset")

	// ErrInvalidFactor indicates a dataset entry with a non-positive,
	// non-finite, or missing emission factor.
	ErrInvalidFactor = constError("invalid emission factor")

	// ErrDuplicateKey indicates two dataset entries share an activity key.
	ErrDuplicateKey = constError("duplicate activity key")

	// ErrEmptyDataset indicates a dataset with no activities.
	ErrEmptyDataset = constError("empty factor dataset")
)
