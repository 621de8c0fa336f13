package brindle

import "errors"

// ErrCatchAllNotLast is returned by Register/Resource when a pattern places
// a catch-all token anywhere but at the end of the pattern. The lexer's own
// grammar (pattern.go) makes a catch-all consume to the end of the pattern
// string, so this can only be reached by code that builds token sequences
// directly rather than through the public pattern syntax; it is kept as a
// named error because spec.md §7 documents it as part of the contract.
var ErrCatchAllNotLast = errors.New("brindle: catch-all must be the last token in a pattern")
