package plotive

import "github.com/plotive/plotive-go/pkg/plotive/diag"

// TypeError reports a value of the wrong shape or an unknown type tag.
type TypeError = diag.TypeError

// ValueError reports a well-shaped value outside its allowed range or
// vocabulary.
type ValueError = diag.ValueError
