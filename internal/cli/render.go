package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/pont-us/sedlog-ffq/pkg/config"
	"github.com/pont-us/sedlog-ffq/pkg/observability"
	"github.com/pont-us/sedlog-ffq/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	outputDir string   // overrides [output] dir
	formats   string   // comma-separated formats; empty uses the project's
	sheets    []string // sheet filter
	booklet   bool     // collect PDF pages into one file
	name      string   // booklet base name
	noCache   bool     // disable the page cache
	refresh   bool     // redraw cached pages
	pick      bool     // choose sheets interactively
	watch     bool     // re-render when inputs change
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [project]",
		Short: "Render the log sheets of a project",
		Long: `Render every sheet of a project (or those chosen with --sheet) to
PDF, SVG or PNG files. Without a project argument sedlog.toml in the
working directory is used, falling back to the built-in Fairfield Quarry
project.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd.Context(), projectArg(args), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.outputDir, "output-dir", "o", "", "output directory (default from project)")
	cmd.Flags().StringVarP(&opts.formats, "format", "f", "", "output format(s): pdf, svg, png (comma-separated)")
	cmd.Flags().StringSliceVarP(&opts.sheets, "sheet", "s", nil, "render only the named sheet(s)")
	cmd.Flags().BoolVar(&opts.booklet, "booklet", false, "collect all PDF pages into a single booklet")
	cmd.Flags().StringVar(&opts.name, "booklet-name", pipeline.DefaultBookletName, "booklet file name without extension")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the page cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "redraw pages even when cached")
	cmd.Flags().BoolVarP(&opts.pick, "interactive", "i", false, "choose sheets interactively")
	cmd.Flags().BoolVarP(&opts.watch, "watch", "w", false, "re-render whenever the project or its input tables change")

	_ = cmd.RegisterFlagCompletionFunc("sheet", completeSheets)
	_ = cmd.RegisterFlagCompletionFunc("format", completeFormats)

	return cmd
}

func (c *CLI) runRender(ctx context.Context, path string, opts renderOpts) error {
	if !opts.watch {
		_, err := c.renderOnce(ctx, path, opts)
		return err
	}

	w := &watcher{
		logger:   loggerFromContext(ctx),
		debounce: defaultDebounce,
		build: func() ([]string, error) {
			cfg, err := c.renderOnce(ctx, path, opts)
			if cfg == nil {
				// Keep watching the project file so a fix is picked up.
				return []string{path, projectFile}, err
			}
			return []string{path, projectFile, cfg.Inputs.Beds, cfg.Inputs.MagSus, cfg.Inputs.Sites}, err
		},
	}
	opts.pick = false
	return w.run(ctx)
}

// renderOnce loads the project and renders it. The loaded configuration is
// returned even when rendering fails.
func (c *CLI) renderOnce(ctx context.Context, path string, opts renderOpts) (*config.Config, error) {
	logger := loggerFromContext(ctx)

	cfg, err := loadProject(path)
	if err != nil {
		return nil, err
	}

	sheets := opts.sheets
	if opts.pick {
		sheets, err = pickSheets(cfg)
		if err != nil {
			return cfg, err
		}
		if len(sheets) == 0 {
			printInfo("No sheets selected")
			return cfg, nil
		}
	}

	runner, err := c.newRunner(ctx, path, opts.noCache)
	if err != nil {
		return cfg, fmt.Errorf("open cache: %w", err)
	}
	defer runner.Close()

	popts := pipeline.Options{
		Config:      cfg,
		Formats:     parseFormats(opts.formats),
		Sheets:      sheets,
		Booklet:     opts.booklet,
		BookletName: opts.name,
		OutputDir:   opts.outputDir,
		Refresh:     opts.refresh,
		Logger:      logger,
	}
	if err := popts.ValidateAndSetDefaults(); err != nil {
		return cfg, err
	}
	if opts.booklet && !popts.WantsBooklet() {
		printWarning("--booklet has no effect without the pdf format")
	}

	prog := newProgress(logger)
	var spinner *Spinner
	if logger.GetLevel() > log.DebugLevel {
		spinner = newSpinnerWithContext(ctx, "Rendering sheets...")
		observability.SetPipelineHooks(&logHooks{logger: logger, status: spinner.SetMessage})
		spinner.Start()
	}
	result, err := runner.Execute(ctx, popts)
	if spinner != nil {
		spinner.Stop()
	}
	if err != nil {
		return cfg, err
	}

	paths, err := pipeline.WriteArtifacts(popts.OutputDir, result.Artifacts)
	if err != nil {
		return cfg, err
	}

	printSuccess("Rendered %d pages", result.Stats.Pages)
	printStats(result.Stats.Pages, result.CacheInfo.Hits)
	for _, p := range paths {
		printFile(p)
	}
	prog.done(fmt.Sprintf("Wrote %d files", len(paths)))
	return cfg, nil
}
