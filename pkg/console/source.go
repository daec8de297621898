package console

import _ "embed"

// Source is the source text of the emitters, shown by the library view.
//
//go:embed emit.go
var Source string
