package model

// Profile holds the values the vault offers for each identity and payment
// category.
type Profile struct {
	FullName      string      `json:"full_name" yaml:"full_name"`
	WorkPhone     string      `json:"work_phone" yaml:"work_phone"`
	WorkEmail     string      `json:"work_email" yaml:"work_email"`
	PersonalEmail string      `json:"personal_email" yaml:"personal_email"`
	Card          PaymentCard `json:"card" yaml:"card"`
}

// PaymentCard is the card offered for credit card fields. Expiry is MMYY.
type PaymentCard struct {
	Number       string `json:"number" yaml:"number"`
	Expiry       string `json:"expiry" yaml:"expiry"`
	SecurityCode string `json:"security_code" yaml:"security_code"`
}

// DefaultProfile returns the deterministic placeholder profile used when no
// profile has been configured.
func DefaultProfile() Profile {
	return Profile{
		FullName:      "Alex Morgan",
		WorkPhone:     "+447891234567",
		WorkEmail:     "alex@work.example",
		PersonalEmail: "alex@example.com",
		Card: PaymentCard{
			Number:       "4111111111111111",
			Expiry:       "0129",
			SecurityCode: "987",
		},
	}
}
