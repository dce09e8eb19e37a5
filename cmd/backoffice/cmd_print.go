package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/cmlabs-hris/bank-backoffice-go/internal/report"
	"github.com/spf13/cobra"
)

const registerFile = "registre-fiches.xlsx"

type printOptions struct {
	html     string
	markdown bool
	width    int
}

func (c *cli) printCmd() *cobra.Command {
	opts := &printOptions{}
	cmd := &cobra.Command{
		Use:   "print",
		Short: "Print an HR document",
		Long: `Build a document from the API and render it.

By default the document is rendered for the terminal in the configured theme.
--html writes a standalone HTML page, --markdown prints the source.`,
	}
	cmd.PersistentFlags().StringVar(&opts.html, "html", "", "Write the document as HTML to this file")
	cmd.PersistentFlags().BoolVar(&opts.markdown, "markdown", false, "Print the markdown source")
	cmd.PersistentFlags().IntVar(&opts.width, "width", 100, "Wrap width of the terminal rendering")

	cmd.AddCommand(&cobra.Command{
		Use:   "work-certificate <sheet-id>",
		Short: "Work certificate of an employee",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sheetID, err := parseID("sheet id", args[0])
			if err != nil {
				return err
			}
			if err := c.requireSession(); err != nil {
				return err
			}
			ctx, cancel := c.context(cmd)
			defer cancel()
			doc, err := c.builder().WorkCertificate(ctx, sheetID)
			if err != nil {
				return err
			}
			return c.emit(cmd, opts, doc)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "investigation-letter <sheet-id> <disciplinary-action-id>",
		Short: "Administrative investigation letter for a disciplinary action",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			sheetID, err := parseID("sheet id", args[0])
			if err != nil {
				return err
			}
			actionID, err := parseID("disciplinary action id", args[1])
			if err != nil {
				return err
			}
			if err := c.requireSession(); err != nil {
				return err
			}
			ctx, cancel := c.context(cmd)
			defer cancel()
			doc, err := c.builder().InvestigationLetter(ctx, sheetID, actionID)
			if err != nil {
				return err
			}
			return c.emit(cmd, opts, doc)
		},
	})
	return cmd
}

func (c *cli) builder() *report.Builder {
	return report.NewBuilder(c.api, c.file.Get().Letterhead)
}

func (c *cli) emit(cmd *cobra.Command, opts *printOptions, doc report.Document) error {
	out := cmd.OutOrStdout()
	switch {
	case opts.html != "":
		page, err := report.HTML(doc)
		if err != nil {
			return err
		}
		if err := os.WriteFile(opts.html, page, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", opts.html, err)
		}
		fmt.Fprintf(out, "%s écrit dans %s\n", doc.Title, opts.html)
		return nil
	case opts.markdown:
		_, err := fmt.Fprint(out, doc.Markdown)
		return err
	}

	rendered, err := report.Terminal(doc, string(c.file.Get().Theme), opts.width)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(out, rendered)
	return err
}

func (c *cli) exportCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Download the register of information sheets as xlsx",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := c.requireSession(); err != nil {
				return err
			}
			ctx, cancel := c.context(cmd)
			defer cancel()
			body, err := c.api.ExportInformationSheets(ctx)
			if err != nil {
				return err
			}
			if err := os.WriteFile(output, body, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Registre écrit dans %s\n", output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", registerFile, "Destination file")
	return cmd
}

func parseID(what, raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s %q", what, raw)
	}
	return id, nil
}
