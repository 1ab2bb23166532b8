package menu

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"

	"github.com/dukaforge/gamerental/internal/rental"
	"github.com/dukaforge/gamerental/internal/store"
	"github.com/dukaforge/gamerental/pkg/types"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// newPromptController builds a controller over a scripted input stream,
// with no backing store. Enough for the prompt and editor loops.
func newPromptController(input string) (*Controller, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return NewController(strings.NewReader(input), out, nil, zap.NewNop()), out
}

// newSessionController builds a controller over a scripted input stream
// and a fresh sqlite-backed repository set.
func newSessionController(t *testing.T, input string) (*Controller, *bytes.Buffer, *rental.Repos) {
	t.Helper()
	cfg := types.Config{Backend: types.BackendSQLite, DataDir: t.TempDir()}
	st, err := store.Open(cfg, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	repos := rental.New(st)
	out := &bytes.Buffer{}
	return NewController(strings.NewReader(input), out, repos, zap.NewNop()), out, repos
}
