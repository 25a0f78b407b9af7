package domain

import "errors"

// User is a stored credential record. The password field holds a bcrypt hash,
// never the plaintext.
type User struct {
	UserName string   `json:"userName"`
	Password string   `json:"password"`
	Roles    []string `json:"roles"`
}

func (u *User) Validate() error {
	if u.UserName == "" {
		return errors.New("user: userName is required")
	}
	if u.Password == "" {
		return errors.New("user: password hash is required")
	}
	return nil
}
