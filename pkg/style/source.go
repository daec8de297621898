package style

import _ "embed"

// Source is the source text of the normalizer, shown by the library view.
//
//go:embed style.go
var Source string
