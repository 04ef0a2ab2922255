package model

// FieldKind is the semantic category a leaf field was classified into.
type FieldKind string

const (
	FieldKindCreditCardNumber       FieldKind = "credit_card_number"
	FieldKindCreditCardExpiry       FieldKind = "credit_card_expiry"
	FieldKindCreditCardSecurityCode FieldKind = "credit_card_security_code"
	FieldKindFullName               FieldKind = "full_name"
	FieldKindTelephoneNumber        FieldKind = "telephone_number"
	FieldKindEmailAddress           FieldKind = "email_address"
	FieldKindUnknown                FieldKind = "unknown"
)

// FieldKinds lists every suggestable kind in canonical enumeration order.
// When a field's hints match more than one kind, the earliest kind wins.
var FieldKinds = []FieldKind{
	FieldKindCreditCardNumber,
	FieldKindCreditCardExpiry,
	FieldKindCreditCardSecurityCode,
	FieldKindFullName,
	FieldKindTelephoneNumber,
	FieldKindEmailAddress,
}

// deliveryOrder is the order in which kinds are handed to the platform.
var deliveryOrder = []FieldKind{
	FieldKindEmailAddress,
	FieldKindCreditCardNumber,
	FieldKindFullName,
	FieldKindCreditCardExpiry,
	FieldKindCreditCardSecurityCode,
	FieldKindTelephoneNumber,
}

// Suggestable reports whether the kind can carry suggestions.
func (k FieldKind) Suggestable() bool {
	switch k {
	case FieldKindCreditCardNumber,
		FieldKindCreditCardExpiry,
		FieldKindCreditCardSecurityCode,
		FieldKindFullName,
		FieldKindTelephoneNumber,
		FieldKindEmailAddress:
		return true
	}
	return false
}
