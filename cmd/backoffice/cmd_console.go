package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cmlabs-hris/bank-backoffice-go/internal/store"
	"github.com/cmlabs-hris/bank-backoffice-go/internal/tui"
	"github.com/spf13/cobra"
)

func (c *cli) consoleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "console",
		Short: "Open the terminal back-office",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := c.requireSession(); err != nil {
				return err
			}

			s := c.file.Get()
			ctx := store.WithData(cmd.Context(), store.NewDataStore())
			ctx = store.WithUI(ctx, store.NewUIStore(s.Theme))

			app := tui.New(ctx, tui.FromAPI(c.api, s.Letterhead), tui.Options{
				OnThemeChange: c.file.SetTheme,
				Timeout:       c.timeout,
			})
			defer app.Close()

			if _, err := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(ctx)).Run(); err != nil {
				return fmt.Errorf("console: %w", err)
			}
			return nil
		},
	}
}

func (c *cli) context(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return context.WithTimeout(cmd.Context(), c.timeout)
}
