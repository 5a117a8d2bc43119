package app

import (
	"encoding/json"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"modscan/internal/config"
	"modscan/internal/domain"
	"modscan/internal/issue"
	"modscan/internal/render"
	"modscan/internal/state"
	"modscan/internal/ui"
)

const markdownWrapWidth = 100

func NewRootCommand(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "modscan",
		Short: "Inventory a game mods folder against its mod list",
		Long: `modscan reads a mods folder, matches every package archive against
mod-list.json and reports which packages are enabled, disabled or missing
from the list, with every version present on disk.

Examples:
  modscan                        Report on the default mods folder
  modscan -f ./mods --format json
  modscan export > my-mod-list.json
  modscan tui                    Browse the inventory interactively`,
		Args:              cobra.NoArgs,
		PersistentPreRunE: app.setup,
		RunE:              app.runReport,
	}

	flags := root.PersistentFlags()
	config.RegisterFlags(flags, config.DefaultConfig())
	flags.StringVar(&app.configFile, "config", "", "config file (default is <user config dir>/modscan/config.json)")
	root.Flags().BoolVar(&app.raw, "raw", false, "print markdown without terminal styling")

	report := &cobra.Command{
		Use:   "report",
		Short: "Print the inventory report",
		Args:  cobra.NoArgs,
		RunE:  app.runReport,
	}
	report.Flags().BoolVar(&app.raw, "raw", false, "print markdown without terminal styling")

	export := &cobra.Command{
		Use:   "export",
		Short: "Print the inventory as a mod list document",
		Args:  cobra.NoArgs,
		RunE:  app.runExport,
	}

	browse := &cobra.Command{
		Use:   "tui",
		Short: "Browse the inventory interactively",
		Args:  cobra.NoArgs,
		RunE:  app.runTUI,
	}

	root.AddCommand(report, export, browse, newConfigCommand(app))
	return root
}

func newConfigCommand(app *App) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or save the effective configuration",
	}
	configCmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Print the effective configuration",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				data, err := json.MarshalIndent(app.config, "", "  ")
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return err
			},
		},
		&cobra.Command{
			Use:   "path",
			Short: "Print where the configuration is read from",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				path, err := app.settingsPath()
				if err != nil {
					return app.fail(cmd, err)
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), path)
				return err
			},
		},
		&cobra.Command{
			Use:   "save",
			Short: "Write the effective configuration to the config file",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				path, err := app.settingsPath()
				if err != nil {
					return app.fail(cmd, err)
				}
				if err := config.SaveConfig(app.config, path); err != nil {
					return app.fail(cmd, issue.NewErrorContext().
						WithOperation("save config").
						WithResource(path).
						Wrap(err).
						Build())
				}
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "Saved %s\n", path)
				return err
			},
		},
	)
	return configCmd
}

func (app *App) setup(cmd *cobra.Command, _ []string) error {
	cfg, path, err := config.LoadConfig(config.LoadOptions{
		ConfigFile: app.configFile,
		Flags:      cmd.Flags(),
	})
	app.config = cfg
	app.configPath = path
	app.logger = newLogger(cmd.ErrOrStderr(), cfg.Verbose)
	if err != nil {
		return app.fail(cmd, issue.NewErrorContext().
			WithOperation("load config").
			WithResource(path).
			WithSuggestion("Run 'modscan config show' with --config pointing at a valid file").
			Wrap(err).
			Build())
	}
	if path != "" {
		app.logger.Debug("config loaded", "path", path)
	}
	return nil
}

func (app *App) settingsPath() (string, error) {
	if app.configPath != "" {
		return app.configPath, nil
	}
	return config.ConfigPath()
}

func (app *App) runReport(cmd *cobra.Command, _ []string) error {
	collection, _, err := app.collect(cmd.Context())
	if err != nil {
		return app.fail(cmd, err)
	}
	out := cmd.OutOrStdout()
	switch app.config.Format {
	case domain.FormatJSON:
		err = render.JSON(out, collection)
	case domain.FormatMarkdown:
		err = render.RenderMarkdown(out, collection, app.config.Theme, markdownWrapWidth, app.raw)
	default:
		err = render.Text(out, collection, app.config.Theme)
	}
	if err != nil {
		return app.fail(cmd, err)
	}
	return nil
}

func (app *App) runExport(cmd *cobra.Command, _ []string) error {
	collection, _, err := app.collect(cmd.Context())
	if err != nil {
		return app.fail(cmd, err)
	}
	if err := render.Export(cmd.OutOrStdout(), collection.Report); err != nil {
		return app.fail(cmd, err)
	}
	return nil
}

func (app *App) runTUI(cmd *cobra.Command, _ []string) error {
	collection, request, err := app.collect(cmd.Context())
	if err != nil {
		return app.fail(cmd, err)
	}
	appState := state.NewState(app.config, request.RootPath)
	appState.SetCollection(collection)

	model := ui.NewModel(appState, app.collector(), request).
		WithStatus(fmt.Sprintf("Scanned %d files in %s", collection.Inventory.PackageFiles(), collection.Duration))
	program := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithContext(cmd.Context()),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	)
	if _, err := program.Run(); err != nil {
		return app.fail(cmd, err)
	}
	return nil
}

// fail prints err once, styled, and hands cobra an exit code instead.
func (app *App) fail(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), issue.FormatForDisplay(err, app.config.Verbose))
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	return &ExitError{Code: exitCodeFor(err), Err: err}
}
