package model

// SuggestionEntry is one candidate value offered for a classified field.
type SuggestionEntry struct {
	Field FieldID
	Value string
	Label string
}

// SuggestionSet groups suggestion entries by kind. Entry order within a kind
// is significant and preserved through delivery.
type SuggestionSet map[FieldKind][]SuggestionEntry

// IsEmpty returns true when no kind carries any entry.
func (s SuggestionSet) IsEmpty() bool {
	for _, entries := range s {
		if len(entries) > 0 {
			return false
		}
	}
	return true
}

// Add appends entries for kind. Unknown kinds and empty entry lists are ignored.
func (s SuggestionSet) Add(kind FieldKind, entries ...SuggestionEntry) {
	if !kind.Suggestable() || len(entries) == 0 {
		return
	}
	s[kind] = append(s[kind], entries...)
}

// Kinds returns the kinds that carry entries, in platform delivery order:
// email, card number, full name, card expiry, card security code, telephone.
func (s SuggestionSet) Kinds() []FieldKind {
	var kinds []FieldKind
	for _, kind := range deliveryOrder {
		if len(s[kind]) > 0 {
			kinds = append(kinds, kind)
		}
	}
	return kinds
}

// Entries flattens the set in platform delivery order.
func (s SuggestionSet) Entries() []SuggestionEntry {
	var out []SuggestionEntry
	for _, kind := range s.Kinds() {
		out = append(out, s[kind]...)
	}
	return out
}
