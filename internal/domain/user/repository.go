package user

import "context"

// Repository defines the persistence contract for users.
type Repository interface {
	Save(ctx context.Context, u *User) error
	Update(ctx context.Context, u *User) error
	FindByID(ctx context.Context, id int64) (*User, error)
	FindAll(ctx context.Context) ([]*User, error)
	Delete(ctx context.Context, id int64) error

	// Exists is a cheap existence probe that avoids a full row load.
	Exists(ctx context.Context, id int64) (bool, error)

	// EmailTaken reports whether any user already holds the email.
	EmailTaken(ctx context.Context, email string) (bool, error)
}
