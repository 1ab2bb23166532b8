package rental

import (
	"fmt"
	"strconv"

	"github.com/dukaforge/gamerental/internal/store"
	"github.com/dukaforge/gamerental/pkg/types"
)

// UserRepository persists and authenticates user accounts.
type UserRepository struct {
	store store.Store
}

// Register creates a new account with customer defaults. Returns
// types.ErrDuplicateLogin, without writing, if the login is taken.
func (r *UserRepository) Register(login, password, phone string) error {
	n, err := r.store.QueryCount("SELECT login FROM users WHERE login = $1", login)
	if err != nil {
		return fmt.Errorf("checking login: %w", err)
	}
	if n > 0 {
		return types.ErrDuplicateLogin
	}

	u := types.NewUser(login, password, phone)
	err = r.store.Execute(
		"INSERT INTO users (login, password, role, favgames, phonenum, numoverduegames) VALUES ($1, $2, $3, $4, $5, $6)",
		u.Login, u.Password, u.Role, u.Favorites.String(), u.PhoneNumber, u.OverdueGames,
	)
	if err != nil {
		return fmt.Errorf("creating user: %w", err)
	}
	return nil
}

// Authenticate checks the login/password pair by exact match. A mismatch
// is an expected outcome, not an error: the session is nil and err is
// nil. The comparison is plain text (see DESIGN.md).
func (r *UserRepository) Authenticate(login, password string) (*types.Session, error) {
	rows, err := r.store.QueryRows(
		"SELECT login, role FROM users WHERE login = $1 AND password = $2",
		login, password,
	)
	if err != nil {
		return nil, fmt.Errorf("checking credentials: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &types.Session{Login: rows[0][0], Role: rows[0][1]}, nil
}

// Get returns the account with the given login, or types.ErrNotFound.
func (r *UserRepository) Get(login string) (types.User, error) {
	rows, err := r.store.QueryRows(
		"SELECT login, password, role, favgames, phonenum, numoverduegames FROM users WHERE login = $1",
		login,
	)
	if err != nil {
		return types.User{}, fmt.Errorf("loading user: %w", err)
	}
	if len(rows) == 0 {
		return types.User{}, types.ErrNotFound
	}
	return hydrateUser(rows[0])
}

// SearchByLogin returns accounts whose login contains the given
// substring, in login order.
func (r *UserRepository) SearchByLogin(contains string) ([]types.User, error) {
	rows, err := r.store.QueryRows(
		"SELECT login, password, role, favgames, phonenum, numoverduegames FROM users WHERE login LIKE '%' || $1 || '%' ORDER BY login",
		contains,
	)
	if err != nil {
		return nil, fmt.Errorf("searching users: %w", err)
	}
	users := make([]types.User, 0, len(rows))
	for _, row := range rows {
		u, err := hydrateUser(row)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, nil
}

// Update writes every editable field of the account in a single
// statement, keyed by login. The role is validated against the closed
// enum before any statement is built.
func (r *UserRepository) Update(u types.User) error {
	if !types.ValidRole(u.Role) {
		return types.ErrInvalidRole
	}
	err := r.store.Execute(
		"UPDATE users SET password = $1, role = $2, favgames = $3, phonenum = $4, numoverduegames = $5 WHERE login = $6",
		u.Password, u.Role, u.Favorites.String(), u.PhoneNumber, u.OverdueGames, u.Login,
	)
	if err != nil {
		return fmt.Errorf("updating user %s: %w", u.Login, err)
	}
	return nil
}

// hydrateUser converts a store row to a User.
func hydrateUser(row []string) (types.User, error) {
	overdue, err := strconv.Atoi(row[5])
	if err != nil {
		return types.User{}, fmt.Errorf("parsing overdue count %q: %w", row[5], err)
	}
	return types.User{
		Login:        row[0],
		Password:     row[1],
		Role:         row[2],
		Favorites:    types.ParseFavorites(row[3]),
		PhoneNumber:  row[4],
		OverdueGames: overdue,
	}, nil
}
