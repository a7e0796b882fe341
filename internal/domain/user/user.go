// Package user holds the registered-user aggregate.
package user

// User is a registered account able to own items and book them.
type User struct {
	id    int64
	name  string
	email string
}

// NewUser creates a user pending persistence.
func NewUser(name, email string) *User {
	return &User{name: name, email: email}
}

// Reconstruct rebuilds a User from persistence data.
func Reconstruct(id int64, name, email string) *User {
	return &User{id: id, name: name, email: email}
}

// ID returns the user's identifier, zero until persisted.
func (u *User) ID() int64 { return u.id }

// SetID assigns the store-generated identifier after the initial save.
func (u *User) SetID(id int64) { u.id = id }

// Name returns the display name.
func (u *User) Name() string { return u.name }

// Email returns the unique email address.
func (u *User) Email() string { return u.email }

// Patch applies a partial update; empty fields are left untouched.
func (u *User) Patch(name, email string) {
	if name != "" {
		u.name = name
	}
	if email != "" {
		u.email = email
	}
}
