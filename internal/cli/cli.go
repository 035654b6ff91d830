// Package cli implements the command-line front end of the catalog. It is
// presentation only: every command goes through the catalog manager's public
// API and never touches the store directly.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"movie-catalog/internal/auth"
	"movie-catalog/internal/catalog"
	"movie-catalog/internal/config"
	"movie-catalog/internal/domain"
	"movie-catalog/internal/identifier"
	"movie-catalog/internal/store"
)

type app struct {
	cfgPath  string
	logLevel string
	username string
	password string

	log     zerolog.Logger
	auth    *auth.Authenticator
	manager *catalog.Manager
	closer  io.Closer
}

// NewRootCmd builds the catalog command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "catalog",
		Short: "Manage a persistent movie catalog",
		Long: `catalog maintains a validated movie collection mirrored into a local
key-value store. Records can be added, updated, removed, searched,
filtered by genre, and sorted by rating, year, or recency.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup()
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			a.teardown()
		},
	}

	root.PersistentFlags().StringVar(&a.cfgPath, "config", "~/.movie-catalog/config.yaml", "config file path")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level (overrides config)")
	root.PersistentFlags().StringVar(&a.username, "username", "", "login username")
	root.PersistentFlags().StringVar(&a.password, "password", "", "login password")

	root.AddCommand(
		a.listCmd(),
		a.getCmd(),
		a.addCmd(),
		a.updateCmd(),
		a.deleteCmd(),
		a.searchCmd(),
		a.recentCmd(),
		a.sortCmd(),
		a.genresCmd(),
	)
	return root
}

// Execute runs the CLI and returns the exit code.
func Execute(args []string) int {
	root := NewRootCmd()
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}
	return 0
}

func (a *app) setup() error {
	cfg, err := config.Load(a.cfgPath)
	if err != nil {
		return err
	}

	level := cfg.Log.Level
	if a.logLevel != "" {
		level = a.logLevel
	}
	a.log = newLogger(level)

	users := make(map[string]string, len(cfg.Users))
	for _, u := range cfg.Users {
		users[u.Username] = u.Password
	}
	a.auth = auth.New(users)

	s, closer, err := openStore(cfg.Store)
	if err != nil {
		return err
	}
	a.closer = closer

	var gen identifier.Generator
	if cfg.IDs.Strategy == "uuid" {
		gen = identifier.UUID{}
	}

	a.manager = catalog.New(s, catalog.Options{
		Generator: gen,
		Genres:    cfg.Genres,
		Logger:    a.log,
	})
	return nil
}

func (a *app) teardown() {
	if a.closer != nil {
		if err := a.closer.Close(); err != nil {
			a.log.Warn().Err(err).Msg("closing store")
		}
	}
}

// requireLogin gates mutating commands when credentials are configured.
func (a *app) requireLogin() error {
	return a.auth.Login(a.username, a.password)
}

func openStore(cfg config.StoreConfig) (store.Store, io.Closer, error) {
	switch cfg.Backend {
	case "memory":
		return store.NewMemory(), nil, nil
	case "file":
		s, err := store.NewFile(cfg.Path)
		return s, nil, err
	case "sqlite":
		s, err := store.NewSQLite(cfg.Path)
		if err != nil {
			return nil, nil, err
		}
		return s, s, nil
	default:
		return nil, nil, fmt.Errorf("unknown store backend %q", cfg.Backend)
	}
}

func newLogger(level string) zerolog.Logger {
	parsed, err := zerolog.ParseLevel(level)
	if err != nil || parsed == zerolog.NoLevel {
		parsed = zerolog.InfoLevel
	}
	writer := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
	return zerolog.New(writer).Level(parsed).With().Timestamp().Logger()
}

// reportMutation prints the outcome of a mutating call, turning a
// persistence failure into a warning: the in-memory change took effect but
// may not survive a restart.
func (a *app) reportMutation(err error) error {
	if err == nil {
		return nil
	}
	var perr *domain.PersistenceError
	if errors.As(err, &perr) {
		fmt.Fprintln(os.Stderr, "Warning: change saved in memory only, the store rejected the write:", perr.Err)
		return nil
	}
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		for _, msg := range verr.Errors {
			fmt.Fprintln(os.Stderr, " -", msg)
		}
		return fmt.Errorf("record rejected with %d validation error(s)", len(verr.Errors))
	}
	return err
}
