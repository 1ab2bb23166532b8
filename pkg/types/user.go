package types

// User is an account in the rental store. Login is the immutable primary
// key. The password is stored and compared in plain text, a known
// weakness documented in DESIGN.md, not a property to build on.
type User struct {
	Login        string
	Password     string
	Role         string // One of the Role constants.
	Favorites    Favorites
	PhoneNumber  string
	OverdueGames int
}

// NewUser returns a user with registration defaults: customer role, no
// favorites, zero overdue games.
func NewUser(login, password, phone string) User {
	return User{
		Login:       login,
		Password:    password,
		Role:        RoleCustomer,
		Favorites:   Favorites{},
		PhoneNumber: phone,
	}
}

// SetRole sets the user role. Returns ErrInvalidRole if the value is
// outside the closed enum.
func (u *User) SetRole(role string) error {
	if !validRoles[role] {
		return ErrInvalidRole
	}
	u.Role = role
	return nil
}
