package models

// Credentials holds the account login used to obtain an access token from the
// device cloud. Values come from the merged configuration and are not changed
// after startup.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"-"`
}

// IsEmpty reports whether either part of the credentials is missing.
func (c Credentials) IsEmpty() bool {
	return c.Username == "" || c.Password == ""
}
