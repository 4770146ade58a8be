package table

import "errors"

// Sentinel errors shared by the codec and workspace layers. Callers classify
// failures with errors.Is; messages wrap these markers with %w.
var (
	// ErrNotFound tags lookups that resolve to zero candidates. The message
	// always names the originally requested name, never an intermediate
	// fallback guess.
	ErrNotFound = errors.New("not found")
	// ErrAmbiguous tags fuzzy lookups that resolve to more than one
	// candidate; the caller must disambiguate, nothing is picked silently.
	ErrAmbiguous = errors.New("ambiguous")
	// ErrInvalidArgument tags caller mistakes such as mutually exclusive
	// options supplied together.
	ErrInvalidArgument = errors.New("invalid argument")
)
