package hatescan

import "fmt"

// A ValidationError reports rejected caller input. It is always surfaced to
// the caller and never recovered silently; retrying with the same input
// produces the same failure.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("hatescan: invalid %s: %s", e.Field, e.Reason)
}

// A LexiconLoadError reports a malformed or empty lexicon at startup. It is
// fatal: an analyzer is never constructed over a lexicon that failed to load.
type LexiconLoadError struct {
	Reason string
	Err    error
}

func (e *LexiconLoadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("hatescan: lexicon: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("hatescan: lexicon: %s", e.Reason)
}

func (e *LexiconLoadError) Unwrap() error {
	return e.Err
}
