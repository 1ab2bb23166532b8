package rental

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dukaforge/gamerental/pkg/types"
)

func TestFilterBuild(t *testing.T) {
	base := "SELECT gameid, gamename, genre, description, price FROM catalog"

	tests := []struct {
		name      string
		filter    Filter
		wantQuery string
		wantArgs  []any
	}{
		{
			name:      "no filters yields full unordered listing",
			filter:    Filter{},
			wantQuery: base,
			wantArgs:  nil,
		},
		{
			name:      "name only",
			filter:    Filter{NameContains: "Zelda"},
			wantQuery: base + " WHERE gamename LIKE '%' || $1 || '%'",
			wantArgs:  []any{"Zelda"},
		},
		{
			name:      "genre only",
			filter:    Filter{Genre: "RPG"},
			wantQuery: base + " WHERE genre = $1",
			wantArgs:  []any{"RPG"},
		},
		{
			name:      "sort only ascending",
			filter:    Filter{PriceSort: SortAscending},
			wantQuery: base + " ORDER BY price ASC",
			wantArgs:  nil,
		},
		{
			name:      "genre and descending sort",
			filter:    Filter{Genre: "RPG", PriceSort: SortDescending},
			wantQuery: base + " WHERE genre = $1 ORDER BY price DESC",
			wantArgs:  []any{"RPG"},
		},
		{
			name:      "name and genre are ANDed",
			filter:    Filter{NameContains: "Zelda", Genre: "RPG"},
			wantQuery: base + " WHERE gamename LIKE '%' || $1 || '%' AND genre = $2",
			wantArgs:  []any{"Zelda", "RPG"},
		},
		{
			name:      "all three combined",
			filter:    Filter{NameContains: "Zelda", Genre: "RPG", PriceSort: SortAscending},
			wantQuery: base + " WHERE gamename LIKE '%' || $1 || '%' AND genre = $2 ORDER BY price ASC",
			wantArgs:  []any{"Zelda", "RPG"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args := tt.filter.Build()
			assert.Equal(t, tt.wantQuery, query)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestPriceSortString(t *testing.T) {
	assert.Equal(t, "none", SortNone.String())
	assert.Equal(t, "Ascending", SortAscending.String())
	assert.Equal(t, "Descending", SortDescending.String())
}

func TestCatalogSearchAgainstStore(t *testing.T) {
	repos, _ := newTestRepos(t)
	seedCatalog(t, repos,
		types.CatalogEntry{GameID: "G1", Name: "Zelda: Breath of the Wild", Genre: "RPG", Price: 10.00},
		types.CatalogEntry{GameID: "G2", Name: "Mario Kart", Genre: "Racing", Price: 5.50},
		types.CatalogEntry{GameID: "G3", Name: "Zelda: Tears of the Kingdom", Genre: "RPG", Price: 20.00},
		types.CatalogEntry{GameID: "G4", Name: "Doom", Genre: "Shooter", Price: 7.25},
	)

	t.Run("name substring is case-sensitive", func(t *testing.T) {
		entries, err := repos.Catalog.Search(Filter{NameContains: "Zelda"})
		require.NoError(t, err)
		require.Len(t, entries, 2)
		for _, e := range entries {
			assert.Contains(t, e.Name, "Zelda")
		}

		entries, err = repos.Catalog.Search(Filter{NameContains: "zelda"})
		require.NoError(t, err)
		assert.Empty(t, entries, "lowercase substring must not match")
	})

	t.Run("ascending price covers whole catalog", func(t *testing.T) {
		entries, err := repos.Catalog.Search(Filter{PriceSort: SortAscending})
		require.NoError(t, err)
		require.Len(t, entries, 4)
		for i := 1; i < len(entries); i++ {
			assert.LessOrEqual(t, entries[i-1].Price, entries[i].Price)
		}
	})

	t.Run("genre with descending price", func(t *testing.T) {
		entries, err := repos.Catalog.Search(Filter{Genre: "RPG", PriceSort: SortDescending})
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, "G3", entries[0].GameID)
		assert.Equal(t, "G1", entries[1].GameID)
	})

	t.Run("name and genre are ANDed", func(t *testing.T) {
		entries, err := repos.Catalog.Search(Filter{NameContains: "Zelda", Genre: "Racing"})
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("zero matches is not an error", func(t *testing.T) {
		entries, err := repos.Catalog.Search(Filter{NameContains: "Tetris"})
		require.NoError(t, err)
		assert.Empty(t, entries)
	})
}

func TestCatalogGenres(t *testing.T) {
	repos, _ := newTestRepos(t)

	genres, err := repos.Catalog.Genres()
	require.NoError(t, err)
	assert.Empty(t, genres, "empty catalog has no genres")

	seedCatalog(t, repos,
		types.CatalogEntry{GameID: "G1", Name: "A", Genre: "Shooter", Price: 1},
		types.CatalogEntry{GameID: "G2", Name: "B", Genre: "RPG", Price: 1},
		types.CatalogEntry{GameID: "G3", Name: "C", Genre: "RPG", Price: 1},
	)

	genres, err = repos.Catalog.Genres()
	require.NoError(t, err)
	assert.Equal(t, []string{"RPG", "Shooter"}, genres, "distinct and sorted")
}
