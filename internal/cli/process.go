package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"invertdeck/backend/internal/domain"
)

func processCmd(a *app) *cobra.Command {
	var output string

	c := &cobra.Command{
		Use:   "process FILE...",
		Short: "Invert, merge and pack local PDFs into a zip archive",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sources, err := readSources(args)
			if err != nil {
				return err
			}

			res, err := a.process.Execute(cmd.Context(), sources)
			if err != nil {
				return err
			}

			out := output
			if out == "" {
				out = res.ArchiveName
			}
			if err := os.WriteFile(out, res.Archive, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", out, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d pages on %d sheets\n", out, res.SourcePages, res.Sheets)
			return nil
		},
	}

	c.Flags().StringVarP(&output, "output", "o", "", "archive path (default final_<id>.zip)")
	return c
}

func inspectCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect FILE...",
		Short: "Print page count and page sizes of PDFs as JSON",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sources, err := readSources(args)
			if err != nil {
				return err
			}

			infos, err := a.inspect.Execute(cmd.Context(), sources)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(infos)
		},
	}
}

func readSources(paths []string) ([]domain.Source, error) {
	sources := make([]domain.Source, 0, len(paths))
	for _, p := range paths {
		b, err := os.ReadFile(p)
		if err != nil {
			return nil, &domain.OpError{
				Op:   "cli.read_source",
				Kind: domain.KindDocumentOpen,
				Doc:  p,
				Err:  err,
			}
		}
		sources = append(sources, domain.Source{Name: filepath.Base(p), Data: b})
	}
	return sources, nil
}
