package model

// FieldID is an opaque handle identifying a field in the host's tree. The
// core only copies it onto its output; it never interprets it.
type FieldID string

// DocumentHintAttribute is the HTML attribute carrying a document-sourced
// autofill hint.
const DocumentHintAttribute = "ua-autofill-hints"

// FieldNode is the host-neutral view of a node in a field tree. Hosts adapt
// their native view structures to this interface. Trees must be finite and
// acyclic.
type FieldNode interface {
	ID() FieldID
	ChildCount() int
	ChildAt(i int) FieldNode
	// NativeHints returns the platform-declared hints; may be empty.
	NativeHints() []string
	// DocumentHint returns the markup-sourced hint, if any.
	DocumentHint() (string, bool)
}

// HTMLAttribute is a single name/value pair from the markup behind a field.
type HTMLAttribute struct {
	Name  string `json:"name" yaml:"name"`
	Value string `json:"value" yaml:"value"`
}

// Field is a decodable FieldNode used by the HTTP and CLI adapters.
type Field struct {
	FieldID        FieldID         `json:"id" yaml:"id"`
	Hints          []string        `json:"hints,omitempty" yaml:"hints,omitempty"`
	Hint           string          `json:"document_hint,omitempty" yaml:"document_hint,omitempty"`
	HTMLAttributes []HTMLAttribute `json:"html_attributes,omitempty" yaml:"html_attributes,omitempty"`
	Children       []*Field        `json:"children,omitempty" yaml:"children,omitempty"`
}

var _ FieldNode = (*Field)(nil)

// ID returns the field's handle.
func (f *Field) ID() FieldID { return f.FieldID }

// ChildCount returns the number of direct children.
func (f *Field) ChildCount() int { return len(f.Children) }

// ChildAt returns the i-th child. A nil child is returned as a nil interface
// so callers can skip it with a plain nil check.
func (f *Field) ChildAt(i int) FieldNode {
	if c := f.Children[i]; c != nil {
		return c
	}
	return nil
}

// NativeHints returns the platform hints declared on the field.
func (f *Field) NativeHints() []string { return f.Hints }

// DocumentHint returns the explicit document hint when set, otherwise the
// value of the first ua-autofill-hints attribute.
func (f *Field) DocumentHint() (string, bool) {
	if f.Hint != "" {
		return f.Hint, true
	}
	for _, attr := range f.HTMLAttributes {
		if attr.Name == DocumentHintAttribute && attr.Value != "" {
			return attr.Value, true
		}
	}
	return "", false
}

// ClassifiedField pairs a field handle with its resolved kind.
type ClassifiedField struct {
	Field FieldID
	Kind  FieldKind
}
