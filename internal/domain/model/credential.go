package model

// Credential is a login saved for a website origin. An empty Password means
// no password was captured alongside the username.
type Credential struct {
	Username string
	Password string
}

// IsEmpty returns true when neither a username nor a password is present.
// Empty credentials are never stored.
func (c Credential) IsEmpty() bool {
	return c.Username == "" && c.Password == ""
}
