package menu

import "github.com/dukaforge/gamerental/internal/rental"

// viewCatalog runs the catalog browse flow: a filter menu for name,
// genre, and price sort, then the search itself. Chosen filters survive
// a search with no matches so the user can adjust and retry.
func (c *Controller) viewCatalog() error {
	var filter rental.Filter

	for {
		c.printCatalogMenu(filter)

		choice, err := c.readChoice()
		if err != nil {
			return err
		}

		switch choice {
		case 1:
			name, err := c.readOptionalString("Enter game title (empty clears the filter): ")
			if err != nil {
				return err
			}
			filter.NameContains = name
		case 2:
			if err := c.chooseGenre(&filter); err != nil {
				return err
			}
		case 3:
			if err := c.choosePriceSort(&filter); err != nil {
				return err
			}
		case 4:
			return nil
		case 5:
			if err := c.runCatalogSearch(filter); err != nil {
				return err
			}
		default:
			c.printf("Invalid choice!\n")
		}
	}
}

// printCatalogMenu renders the filter menu with the current settings.
func (c *Controller) printCatalogMenu(f rental.Filter) {
	name := f.NameContains
	if name == "" {
		name = " any "
	}
	genre := f.Genre
	if genre == "" {
		genre = " any "
	}
	c.printf("\n=========================\n")
	c.printf("==    VIEW CATALOG     ==\n")
	c.printf("=========================\n")
	c.printf("1. Game Name  [%s]\n", name)
	c.printf("2. Genre      [%s]\n", genre)
	c.printf("3. Price Sort [%s]\n", f.PriceSort)
	c.printf("4. Cancel\n")
	c.printf("5. Search!\n")
}

// chooseGenre enumerates the genres currently present in the catalog as
// a numbered submenu. A bad index is reported and the filter is left
// unchanged.
func (c *Controller) chooseGenre(f *rental.Filter) error {
	genres, err := c.repos.Catalog.Genres()
	if err != nil {
		c.report(err)
		return nil
	}
	if len(genres) == 0 {
		c.printf("The catalog has no genres yet.\n")
		return nil
	}

	for i, g := range genres {
		c.printf("%d. %s\n", i+1, g)
	}
	c.printf("%d. Any genre\n", len(genres)+1)

	choice, err := c.readChoice()
	if err != nil {
		return err
	}
	switch {
	case choice >= 1 && choice <= len(genres):
		f.Genre = genres[choice-1]
	case choice == len(genres)+1:
		f.Genre = ""
	default:
		c.printf("Genre choice doesn't exist.\n")
	}
	return nil
}

// choosePriceSort presents the sort directive submenu.
func (c *Controller) choosePriceSort(f *rental.Filter) error {
	c.printf("1. No Sorting\n")
	c.printf("2. Ascending\n")
	c.printf("3. Descending\n")

	choice, err := c.readChoice()
	if err != nil {
		return err
	}
	switch choice {
	case 1:
		f.PriceSort = rental.SortNone
	case 2:
		f.PriceSort = rental.SortAscending
	case 3:
		f.PriceSort = rental.SortDescending
	default:
		c.printf("Invalid sort option!\n")
	}
	return nil
}

// runCatalogSearch executes the filtered listing. Zero results is not an
// error; the caller keeps the filter menu loop going.
func (c *Controller) runCatalogSearch(f rental.Filter) error {
	entries, err := c.repos.Catalog.Search(f)
	if err != nil {
		c.report(err)
		return nil
	}
	if len(entries) == 0 {
		c.printf("No entries matched your search...\n")
		c.pressEnter()
		return nil
	}

	for _, e := range entries {
		c.printf("%-40s | %-15s | %8.2f | %s\n", e.Name, e.Genre, e.Price, e.Description)
	}
	c.printf("%d entries.\n", len(entries))
	c.pressEnter()
	return nil
}
