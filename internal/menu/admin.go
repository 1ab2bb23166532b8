package menu

import (
	"errors"
	"strconv"

	"github.com/dukaforge/gamerental/pkg/types"
)

// updateCatalog is the manager-only catalog administration flow: find a
// game by exact ID or by a title-contains picker, then edit it through
// the record editor, or add a new entry.
func (c *Controller) updateCatalog(sess types.Session) error {
	if !sess.CanAdminister() {
		c.report(types.ErrNotAuthorized)
		return nil
	}

	for {
		c.printf("\n=======================================\n")
		c.printf("==      Update Game Information      ==\n")
		c.printf("=======================================\n")
		c.printf("How do you want to find the game?\n")
		c.printf("1. Game ID\n")
		c.printf("2. Game Title\n")
		c.printf("3. Add New Game\n")
		c.printf("4. Cancel\n")

		choice, err := c.readChoice()
		if err != nil {
			return err
		}

		switch choice {
		case 1:
			gameID, err := c.readString("Enter exact Game ID: ")
			if err != nil {
				return err
			}
			entry, err := c.repos.Catalog.Get(gameID)
			if err != nil {
				c.report(err)
				continue
			}
			if err := c.editCatalogEntry(entry); err != nil {
				return err
			}
		case 2:
			if err := c.pickAndEditCatalogEntry(); err != nil {
				return err
			}
		case 3:
			if err := c.addCatalogEntry(); err != nil {
				return err
			}
		case 4:
			return nil
		default:
			c.printf("Invalid choice!\n")
		}
	}
}

// pickAndEditCatalogEntry finds a game by title substring and presents a
// numbered picker over the matches.
func (c *Controller) pickAndEditCatalogEntry() error {
	contains, err := c.readString("Enter Game Title (contains): ")
	if err != nil {
		return err
	}
	matches, err := c.repos.Catalog.SearchByName(contains)
	if err != nil {
		c.report(err)
		return nil
	}
	if len(matches) == 0 {
		c.printf("No games matched your query...\n")
		return nil
	}

	for i, e := range matches {
		c.printf("%d. %-40s | %s\n", i+1, e.Name, e.GameID)
	}
	c.printf("%d. Cancel\n", len(matches)+1)

	choice, err := c.readChoice()
	if err != nil {
		return err
	}
	if choice == len(matches)+1 {
		return nil
	}
	if choice < 1 || choice > len(matches) {
		c.printf("Choice is not in accepted range!\n")
		return nil
	}
	return c.editCatalogEntry(matches[choice-1])
}

// editCatalogEntry runs the record editor over one catalog entry. Apply
// issues a single update covering every editable field.
func (c *Controller) editCatalogEntry(entry types.CatalogEntry) error {
	fields := []Field{
		{Label: "Game Name", Kind: FieldText},
		{Label: "Genre", Kind: FieldText},
		{Label: "Price", Kind: FieldNumber},
		{Label: "Description", Kind: FieldText},
		{Label: "Image URL", Kind: FieldText},
	}
	current := []string{
		entry.Name,
		entry.Genre,
		strconv.FormatFloat(entry.Price, 'f', 2, 64),
		entry.Description,
		entry.ImageURL,
	}

	editor := NewEditor("Edit Game: "+entry.GameID, fields, current)
	applied, values, err := editor.Run(c)
	if err != nil {
		return err
	}
	if !applied {
		return nil
	}

	price, convErr := strconv.ParseFloat(values[2], 64)
	if convErr != nil {
		c.report(convErr)
		return nil
	}
	entry.Name = values[0]
	entry.Genre = values[1]
	entry.Price = price
	entry.Description = values[3]
	entry.ImageURL = values[4]

	if err := c.repos.Catalog.Update(entry); err != nil {
		c.report(err)
		return nil
	}
	c.printf("Catalog entry %s updated.\n", entry.GameID)
	return nil
}

// addCatalogEntry prompts for a new game listing and inserts it.
func (c *Controller) addCatalogEntry() error {
	gameID, err := c.readString("Enter new Game ID: ")
	if err != nil {
		return err
	}
	if _, getErr := c.repos.Catalog.Get(gameID); getErr == nil {
		c.printf("A game with ID %s already exists.\n", gameID)
		return nil
	} else if !errors.Is(getErr, types.ErrNotFound) {
		c.report(getErr)
		return nil
	}

	name, err := c.readString("Enter Game Name: ")
	if err != nil {
		return err
	}
	genre, err := c.readString("Enter Genre: ")
	if err != nil {
		return err
	}
	price, err := c.readPrice("Enter Price: ")
	if err != nil {
		return err
	}
	description, err := c.readOptionalString("Enter Description: ")
	if err != nil {
		return err
	}
	imageURL, err := c.readOptionalString("Enter Image URL: ")
	if err != nil {
		return err
	}

	entry := types.CatalogEntry{
		GameID:      gameID,
		Name:        name,
		Genre:       genre,
		Price:       price,
		Description: description,
		ImageURL:    imageURL,
	}
	if err := c.repos.Catalog.Create(entry); err != nil {
		c.report(err)
		return nil
	}
	c.printf("Game %s added to the catalog.\n", gameID)
	return nil
}

// updateUser is the manager-only account administration flow: a
// login-contains picker over matching accounts, then the record editor
// with the role field constrained to the closed enum.
func (c *Controller) updateUser(sess types.Session) error {
	if !sess.CanAdminister() {
		c.report(types.ErrNotAuthorized)
		return nil
	}

	c.printf("\n=================================\n")
	c.printf("==        Update User          ==\n")
	c.printf("=================================\n")

	contains, err := c.readString("Enter user login to edit (contains): ")
	if err != nil {
		return err
	}
	matches, err := c.repos.Users.SearchByLogin(contains)
	if err != nil {
		c.report(err)
		return nil
	}
	if len(matches) == 0 {
		c.printf("No users matched your query...\n")
		return nil
	}

	for i, u := range matches {
		c.printf("%d. %-25s (%s)\n", i+1, u.Login, u.Role)
	}
	c.printf("%d. Cancel\n", len(matches)+1)

	choice, err := c.readChoice()
	if err != nil {
		return err
	}
	if choice == len(matches)+1 {
		return nil
	}
	if choice < 1 || choice > len(matches) {
		c.printf("Choice is invalid!\n")
		return nil
	}

	return c.editUser(matches[choice-1])
}

// editUser runs the record editor over one account. Login is the
// immutable key and is not offered for editing.
func (c *Controller) editUser(u types.User) error {
	fields := []Field{
		{Label: "Password", Kind: FieldText},
		{Label: "Role", Kind: FieldEnum, Options: types.Roles()},
		{Label: "Favorite Games", Kind: FieldText},
		{Label: "Phone Number", Kind: FieldText},
	}
	current := []string{u.Password, u.Role, u.Favorites.String(), u.PhoneNumber}

	editor := NewEditor("Edit User: "+u.Login, fields, current)
	applied, values, err := editor.Run(c)
	if err != nil {
		return err
	}
	if !applied {
		return nil
	}

	if err := u.SetRole(values[1]); err != nil {
		c.report(err)
		return nil
	}
	u.Password = values[0]
	u.Favorites = types.ParseFavorites(values[2])
	u.PhoneNumber = values[3]

	if err := c.repos.Users.Update(u); err != nil {
		c.report(err)
		return nil
	}
	c.printf("User %s updated.\n", u.Login)
	return nil
}
