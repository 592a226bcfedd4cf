package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/rpgo/peoplefmt/internal/config"
	"github.com/rpgo/peoplefmt/internal/output"
	"github.com/spf13/cobra"
)

func newDisplayCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "display <file>",
		Short: "Print one \"Given Family: Title\" line per person",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			people, err := c.load(args[0])
			if err != nil {
				return err
			}
			lines, err := output.FormatForDisplay(people)
			if err != nil {
				return err
			}
			for _, l := range lines {
				fmt.Fprintln(cmd.OutOrStdout(), l)
			}
			return nil
		},
	}
}

func newCSVCmd(c *cli) *cobra.Command {
	var strict, quoted bool

	cmd := &cobra.Command{
		Use:   "csv <file>",
		Short: "Print people as CSV with a header row",
		Long: "Print people as CSV. The header comes from the first record's keys.\n" +
			"Values are written verbatim unless --quoted is given.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			people, err := c.load(args[0])
			if err != nil {
				return err
			}
			strict = strict || (!cmd.Flags().Changed("strict") && c.settings.Strict)

			if quoted {
				return output.Render(cmd.OutOrStdout(), people, "csv-quoted", output.Options{Strict: strict})
			}
			if strict {
				if err := output.ValidateSchema(people); err != nil {
					return err
				}
			}
			text, err := output.FormatForCSV(people)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "fail when records disagree on keys or key order")
	cmd.Flags().BoolVar(&quoted, "quoted", false, "quote values per RFC 4180")
	return cmd
}

func newExportCmd(c *cli) *cobra.Command {
	var format, outDir string
	var strict bool

	cmd := &cobra.Command{
		Use:   "export <file>",
		Short: "Write people to a timestamped file in the chosen format",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("format") {
				format = c.settings.Format
			}
			if !cmd.Flags().Changed("out-dir") {
				outDir = c.settings.OutputDir
			}
			if !cmd.Flags().Changed("strict") {
				strict = c.settings.Strict
			}

			people, err := c.load(args[0])
			if err != nil {
				return err
			}
			path, err := output.GenerateReport(people, format, outDir, output.Options{Strict: strict})
			if err != nil {
				return err
			}
			c.logger.Info("wrote report",
				slog.String("format", output.NormalizeFormatName(format)),
				slog.String("path", path),
				slog.Int("records", len(people)))
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "console", "output format ("+strings.Join(output.AvailableFormatterNames(), ", ")+")")
	cmd.Flags().StringVarP(&outDir, "out-dir", "o", ".", "directory for the output file")
	cmd.Flags().BoolVar(&strict, "strict", false, "fail when records disagree on keys or key order (csv formats)")
	return cmd
}

func newFormatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List output formats and aliases",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			fmt.Fprintln(w, "Formats:")
			for _, n := range output.AvailableFormatterNames() {
				fmt.Fprintf(w, "  %s\n", n)
			}
			fmt.Fprintln(w, "Aliases:")
			for _, a := range output.AvailableFormatAliases() {
				fmt.Fprintf(w, "  %s -> %s\n", a, output.NormalizeFormatName(a))
			}
			return nil
		},
	}
}

func newInitCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "init <file>",
		Short: "Write an example people file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.SavePeople(config.CreateExamplePeople(), args[0]); err != nil {
				return fmt.Errorf("write %s: %w", args[0], err)
			}
			c.logger.Info("wrote example people", slog.String("file", args[0]))
			return nil
		},
	}
}
