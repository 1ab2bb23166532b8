package rental

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/dukaforge/gamerental/internal/store"
	"github.com/dukaforge/gamerental/pkg/types"
)

// newTestRepos opens a repository set over a fresh sqlite store.
func newTestRepos(t *testing.T) (*Repos, store.Store) {
	t.Helper()
	cfg := types.Config{Backend: types.BackendSQLite, DataDir: t.TempDir()}
	st, err := store.Open(cfg, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	return New(st), st
}

// seedCatalog inserts the given entries.
func seedCatalog(t *testing.T, repos *Repos, entries ...types.CatalogEntry) {
	t.Helper()
	for _, e := range entries {
		require.NoError(t, repos.Catalog.Create(e))
	}
}

// seedUser registers an account and optionally promotes it.
func seedUser(t *testing.T, repos *Repos, login, password, role string) {
	t.Helper()
	require.NoError(t, repos.Users.Register(login, password, "555-0100"))
	if role != types.RoleCustomer {
		u, err := repos.Users.Get(login)
		require.NoError(t, err)
		u.Role = role
		require.NoError(t, repos.Users.Update(u))
	}
}
