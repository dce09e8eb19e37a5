package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

const passwordEnv = "BACKOFFICE_PASSWORD"

var errNotLoggedIn = errors.New(`no session: run "backoffice login" first`)

func (c *cli) loginCmd() *cobra.Command {
	var username, password string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Open a session on the back-office API",
		Long: `Exchange credentials for an access token and keep it in the settings file.

The password is taken from --password, then $BACKOFFICE_PASSWORD, then read
from standard input.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if password == "" {
				password = os.Getenv(passwordEnv)
			}
			if password == "" {
				fmt.Fprint(cmd.ErrOrStderr(), "Mot de passe : ")
				line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				if err != nil && line == "" {
					return fmt.Errorf("read password: %w", err)
				}
				password = strings.TrimSpace(line)
			}

			ctx, cancel := c.context(cmd)
			defer cancel()
			if err := c.api.Login(ctx, username, password); err != nil {
				return fmt.Errorf("login failed: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Connecté en tant que %s (%s)\n", username, c.file.Get().BaseURL)
			return nil
		},
	}
	cmd.Flags().StringVarP(&username, "username", "u", "admin", "Account name")
	cmd.Flags().StringVarP(&password, "password", "p", "", "Account password")
	return cmd
}

func (c *cli) logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Revoke the session and forget the token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := c.context(cmd)
			defer cancel()
			if err := c.api.Logout(ctx); err != nil {
				return fmt.Errorf("logout: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Session fermée")
			return nil
		},
	}
}
