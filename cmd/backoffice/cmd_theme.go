package main

import (
	"fmt"

	"github.com/cmlabs-hris/bank-backoffice-go/internal/store"
	"github.com/spf13/cobra"
)

func (c *cli) themeCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "theme [dark|light]",
		Short:     "Show or set the colour theme",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{string(store.ThemeDark), string(store.ThemeLight)},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				if err := c.file.SetTheme(store.Theme(args[0])); err != nil {
					return err
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), c.file.Get().Theme)
			return nil
		},
	}
}
