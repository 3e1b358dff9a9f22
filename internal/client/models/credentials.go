package models

// CredentialSeparator joins username and password in the account file.
const CredentialSeparator = ":"

// Credentials is one account record. The username may not contain the
// separator, otherwise the stored line could be split more than one way.
type Credentials struct {
	Username string `validate:"excludes=:"`
	Password string
}

// Line returns the account file representation without the newline.
func (c Credentials) Line() string {
	return c.Username + CredentialSeparator + c.Password
}
