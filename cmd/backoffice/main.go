// Command backoffice is the operator CLI of the HR back-office: the terminal
// console, session commands, document printing and the register export.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/cmlabs-hris/bank-backoffice-go/internal/client"
	"github.com/cmlabs-hris/bank-backoffice-go/internal/settings"
	"github.com/spf13/cobra"
)

// cli holds the flags and the session shared by every subcommand.
type cli struct {
	settingsPath string
	logPath      string
	verbose      bool
	timeout      time.Duration

	file *settings.File
	api  *client.API
	log  io.Closer
}

func newRootCmd() *cobra.Command {
	c := &cli{}
	root := &cobra.Command{
		Use:   "backoffice",
		Short: "HR back-office for bank staff records",
		Long: `Manage information sheets, bank and non-bank experience,
disciplinary actions and professional training from the terminal.

Run "backoffice login" once, then "backoffice console".`,
		SilenceUsage:      true,
		PersistentPreRunE: c.setup,
		PersistentPostRun: func(*cobra.Command, []string) { c.teardown() },
	}

	root.PersistentFlags().StringVar(&c.settingsPath, "settings", settings.DefaultPath(), "Settings file")
	root.PersistentFlags().StringVar(&c.logPath, "log", "", "Log file (default: next to the settings file)")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "Enable debug logging")
	root.PersistentFlags().DurationVar(&c.timeout, "timeout", 15*time.Second, "Timeout of each API call")

	root.AddCommand(
		c.consoleCmd(),
		c.loginCmd(),
		c.logoutCmd(),
		c.printCmd(),
		c.exportCmd(),
		c.themeCmd(),
	)
	return root
}

// setup loads the settings and builds the API client. Logs go to a file so
// the console keeps the terminal.
func (c *cli) setup(cmd *cobra.Command, _ []string) error {
	file, err := settings.Load(c.settingsPath)
	if err != nil {
		return err
	}
	c.file = file

	logPath := c.logPath
	if logPath == "" {
		logPath = filepath.Join(filepath.Dir(file.Path()), "backoffice.log")
	}
	if err := os.MkdirAll(filepath.Dir(logPath), 0o700); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	c.log = logFile

	level := slog.LevelInfo
	if c.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(logFile, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	logger.Debug("command started", slog.String("command", cmd.CommandPath()), slog.String("api", file.Get().BaseURL))

	c.api = client.NewAPI(client.New(file.Get().BaseURL,
		client.WithTokenStore(file),
		client.WithLogger(logger),
	))
	return nil
}

func (c *cli) teardown() {
	if c.log != nil {
		_ = c.log.Close()
		c.log = nil
	}
}

func (c *cli) requireSession() error {
	if c.file.Token() == "" {
		return errNotLoggedIn
	}
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
