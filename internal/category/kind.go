package category

//go:generate go tool stringer -type=Kind -linecomment -output=kind_string.go

// Kind distinguishes the two attribute kinds a category declares.
type Kind int

const (
	KindProperty  Kind = iota // property
	KindSubobject             // subobject
)

// Kinds lists every attribute kind in processing order.
var Kinds = []Kind{KindProperty, KindSubobject}

// MarshalText renders the kind by name in JSON and YAML output.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Plural returns the plural noun for the kind.
func (k Kind) Plural() string {
	if k == KindProperty {
		return "properties"
	}

	return k.String() + "s"
}
