package note

import "errors"

var (
	// ErrUnknownSpelling means a name or letter/accidental pair is not in the catalog.
	ErrUnknownSpelling = errors.New("unknown spelling")

	// ErrDegenerateEnharmonic means an interval step found no destination
	// spelling on the expected letter. The step still returns the
	// destination's canonical spelling.
	ErrDegenerateEnharmonic = errors.New("no enharmonic on the expected letter")
)
