package raybend

// Compile time checks to ensure the field and medium interfaces are
// implemented by all required types.
var (
	_ IndexField = Stack{}
	_ Medium     = Slab{}
	_ Medium     = Lens{}
	_ Medium     = Cylinder{}
)
