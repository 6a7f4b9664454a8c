package qcompendium

import "errors"

// ErrNotNormalized rejects construction of a vector whose squared amplitude
// magnitudes do not sum to one. The message text is part of the library's
// contract; callers match on it verbatim.
var ErrNotNormalized = errors.New("The quantum vector is not normalized.")
