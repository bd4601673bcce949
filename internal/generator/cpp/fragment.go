// Package cpp generates the C++ glue fragments for bridge declarations.
package cpp

// Fragment represents a piece of generated C++ split across the output files.
// A declaration-only fragment leaves Source empty
type Fragment struct {
	Header string // text destined for the header file
	Source string // text destined for the source file
}

// HeaderFragment creates a fragment that only contributes a declaration
func HeaderFragment(header string) Fragment {
	return Fragment{Header: header}
}

// PairFragment creates a fragment with a declaration and a definition
func PairFragment(header, source string) Fragment {
	return Fragment{Header: header, Source: source}
}

// IsPair reports whether the fragment contributes to both output files
func (f Fragment) IsPair() bool {
	return f.Source != ""
}
