package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/rpgo/peoplefmt/internal/config"
	"github.com/rpgo/peoplefmt/internal/domain"
	"github.com/rpgo/peoplefmt/internal/logging"
	"github.com/spf13/cobra"
)

// cli carries state shared by all subcommands once PersistentPreRunE has run.
type cli struct {
	settings *config.Settings
	logger   *slog.Logger

	logLevel  string
	logFormat string
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:           "peoplefmt",
		Short:         "Format person records for display, CSV and spreadsheets",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return c.setup(cmd)
		},
	}
	root.PersistentFlags().StringVar(&c.logLevel, "log-level", "", "log level: debug, info, warn, error (env PEOPLEFMT_LOG_LEVEL)")
	root.PersistentFlags().StringVar(&c.logFormat, "log-format", "", "log format: text or json (env PEOPLEFMT_LOG_FORMAT)")

	root.AddCommand(
		newDisplayCmd(c),
		newCSVCmd(c),
		newExportCmd(c),
		newFormatsCmd(),
		newInitCmd(c),
	)
	return root
}

func (c *cli) setup(cmd *cobra.Command) error {
	s, err := config.LoadSettings()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("log-level") {
		s.Logging.Level = strings.ToLower(c.logLevel)
	}
	if cmd.Flags().Changed("log-format") {
		s.Logging.Format = strings.ToLower(c.logFormat)
	}
	if err := s.Validate(); err != nil {
		return err
	}
	c.settings = s
	c.logger = logging.New(s.Logging, cmd.ErrOrStderr())
	return nil
}

func (c *cli) load(path string) ([]domain.Record, error) {
	people, err := config.NewInputParser().WithLogger(c.logger).LoadFromFile(path)
	if err != nil {
		c.logger.Error("failed to load people", slog.String("file", path), slog.Any("error", err))
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return people, nil
}
