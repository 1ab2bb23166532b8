package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dukaforge/gamerental/internal/menu"
	"github.com/dukaforge/gamerental/internal/rental"
	"github.com/dukaforge/gamerental/internal/store"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// configFile is set by the --config flag.
var configFile string

var rootCmd = &cobra.Command{
	Use:   "gamerental <dbname> <port> <user>",
	Short: "Interactive terminal client for the game rental store",
	Long: `Gamerental is a menu-driven terminal client for a game rental
database: user accounts, catalog browsing, rental orders, and shipment
tracking. Connection parameters come from the three positional
arguments, a config file, and the GAMERENTAL_* environment (notably
GAMERENTAL_PASSWORD). With the sqlite backend the positional arguments
may be omitted entirely.`,
	Args:         validateStartupArgs,
	SilenceUsage: true,
	RunE:         runInteractive,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default: gamerental.yaml in . or ~/.gamerental)")
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("gamerental v0.1.0")
	},
}

// validateStartupArgs accepts either the classic three positional
// arguments (dbname, port, user) or none, with everything supplied by
// config file and environment.
func validateStartupArgs(cmd *cobra.Command, args []string) error {
	if len(args) != 0 && len(args) != 3 {
		return fmt.Errorf("accepts 0 or 3 args: <dbname> <port> <user>, received %d", len(args))
	}
	return nil
}

// runInteractive wires config, logger, store, repositories, and the menu
// controller, then runs the session. The store is closed exactly once on
// every exit path; a connection failure is fatal before the loop starts.
func runInteractive(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(configFile, args)
	if err != nil {
		fmt.Fprintln(os.Stderr, "startup:", err)
		os.Exit(exitSysError)
	}

	log, err := newLogger(cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, "startup:", err)
		os.Exit(exitSysError)
	}
	defer log.Sync() //nolint:errcheck // stderr sync failure is uninteresting

	fmt.Print("Connecting to database...")
	st, err := store.Open(cfg, log)
	if err != nil {
		fmt.Println()
		fmt.Fprintln(os.Stderr, "startup:", err)
		fmt.Fprintln(os.Stderr, "Make sure the database server is running and reachable.")
		os.Exit(exitSysError)
	}
	fmt.Println("Done")

	defer func() {
		fmt.Print("Disconnecting from database...")
		if cerr := st.Close(); cerr != nil {
			log.Warn("closing store", zap.Error(cerr))
		}
		fmt.Println("Done")
	}()

	controller := menu.NewController(os.Stdin, os.Stdout, rental.New(st), log)
	return controller.Run()
}

// newLogger builds the diagnostic logger. It writes structured output to
// stderr only, so menus and prompts on stdout stay clean.
func newLogger(level string) (*zap.Logger, error) {
	if level == "" {
		level = "warn"
	}
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parsing log level %q: %w", level, err)
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = lvl
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	return cfg.Build()
}
