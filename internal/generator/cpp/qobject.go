package cpp

// Blocks accumulates the generated class body fragments for one object type.
// Fragment order follows declaration order and is part of the output contract
type Blocks struct {
	Methods []Fragment
}

// Append adds a fragment to the method blocks
func (b *Blocks) Append(fragment Fragment) {
	b.Methods = append(b.Methods, fragment)
}

// Extend appends all fragments from another block set
func (b *Blocks) Extend(other Blocks) {
	b.Methods = append(b.Methods, other.Methods...)
}
