package cpp

// SelfRef describes how generated code reaches the signal owner. The
// closure always receives the owner as its first argument; the two
// constructors fix where that value comes from
type SelfRef struct {
	Value string // expression yielding the owner when invoking the closure
	Type  string // C++ type of the owner
}

// MemberSelf returns the descriptor for code generated inside the owner
// class, where the owner is *this
func MemberSelf(qobject string) SelfRef {
	return SelfRef{Value: "*this", Type: qobject}
}

// ForeignSelf returns the descriptor for standalone code that receives the
// owner as an explicit self parameter
func ForeignSelf(qualifiedType string) SelfRef {
	return SelfRef{Value: "self", Type: qualifiedType}
}
