package menu

import "github.com/dukaforge/gamerental/pkg/types"

// viewProfile prints the authenticated user's own account.
func (c *Controller) viewProfile(sess types.Session) error {
	u, err := c.repos.Users.Get(sess.Login)
	if err != nil {
		c.report(err)
		return nil
	}

	c.printf("Login:         %s\n", u.Login)
	c.printf("Role:          %s\n", u.Role)
	c.printf("Phone Number:  %s\n", u.PhoneNumber)
	c.printf("Overdue Games: %d\n", u.OverdueGames)
	if len(u.Favorites) == 0 {
		c.printf("Favorite Games: (none)\n")
	} else {
		c.printf("Favorite Games:\n")
		for _, title := range u.Favorites {
			c.printf("  - %s\n", title)
		}
	}
	return nil
}

// updateProfile lets the user edit their own password, favorites, and
// phone number through the record editor. Role and overdue count are
// not self-editable. Apply issues one update covering every account
// field; cancel leaves the stored record untouched.
func (c *Controller) updateProfile(sess types.Session) error {
	u, err := c.repos.Users.Get(sess.Login)
	if err != nil {
		c.report(err)
		return nil
	}

	fields := []Field{
		{Label: "Password", Kind: FieldText},
		{Label: "Favorite Games", Kind: FieldText},
		{Label: "Phone Number", Kind: FieldText},
	}
	current := []string{u.Password, u.Favorites.String(), u.PhoneNumber}

	editor := NewEditor("Update Profile: "+u.Login, fields, current)
	applied, values, err := editor.Run(c)
	if err != nil {
		return err
	}
	if !applied {
		return nil
	}

	u.Password = values[0]
	u.Favorites = types.ParseFavorites(values[1])
	u.PhoneNumber = values[2]

	if err := c.repos.Users.Update(u); err != nil {
		c.report(err)
		return nil
	}
	c.printf("Profile updated.\n")
	return nil
}
