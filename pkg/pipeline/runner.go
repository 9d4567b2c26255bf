package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/tdewolff/canvas"

	"github.com/pont-us/sedlog-ffq/pkg/cache"
	"github.com/pont-us/sedlog-ffq/pkg/config"
	"github.com/pont-us/sedlog-ffq/pkg/errors"
	"github.com/pont-us/sedlog-ffq/pkg/logdata"
	"github.com/pont-us/sedlog-ffq/pkg/observability"
	"github.com/pont-us/sedlog-ffq/pkg/render/column"
	"github.com/pont-us/sedlog-ffq/pkg/render/sink"
)

// Runner executes runs with caching.
//
// The Runner is stateless except for the cache and logger; it does not
// keep results between calls.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger

	renderOpts []column.Option
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger, opts ...column.Option) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:      c,
		Keyer:      keyer,
		Logger:     logger,
		renderOpts: opts,
	}
}

// Input is the loaded data of a project together with a key identifying
// its content.
type Input struct {
	Data column.Data
	Hash string
}

// Load reads the project's input tables. The bed table is required; the
// magnetic susceptibility and site tables are read when configured.
func (r *Runner) Load(ctx context.Context, cfg *config.Config) (*Input, error) {
	start := time.Now()
	observability.Pipeline().OnLoadStart(ctx, cfg.Inputs.Beds)

	in, err := r.load(cfg)
	records := 0
	if in != nil {
		records = len(in.Data.Beds)
	}
	observability.Pipeline().OnLoadComplete(ctx, cfg.Inputs.Beds, records, time.Since(start), err)
	return in, err
}

func (r *Runner) load(cfg *config.Config) (*Input, error) {
	var (
		in  Input
		err error
	)
	if in.Data.Beds, err = logdata.ReadBeds(cfg.Inputs.Beds); err != nil {
		return nil, err
	}
	if cfg.Inputs.MagSus != "" {
		if in.Data.MagSus, err = logdata.ReadMagSus(cfg.Inputs.MagSus); err != nil {
			return nil, err
		}
	}
	if cfg.Inputs.Sites != "" {
		if in.Data.Sites, err = logdata.ReadSites(cfg.Inputs.Sites); err != nil {
			return nil, err
		}
	} else if cfg.NeedsSites() {
		r.Logger.Warn("no site table configured; declination and inclination will be empty")
	}

	keyOpts, err := inputKeyOpts(cfg)
	if err != nil {
		return nil, err
	}
	in.Hash = r.Keyer.InputKey(keyOpts)

	r.Logger.Debug("loaded inputs",
		"beds", len(in.Data.Beds),
		"samples", len(in.Data.MagSus),
		"sites", len(in.Data.Sites))
	return &in, nil
}

func inputKeyOpts(cfg *config.Config) (cache.InputKeyOpts, error) {
	var opts cache.InputKeyOpts
	var err error
	if opts.Beds, err = cache.HashFile(cfg.Inputs.Beds); err != nil {
		return opts, errors.Wrap(errors.ErrCodeInvalidInput, err, "hash inputs")
	}
	if opts.MagSus, err = cache.HashFile(cfg.Inputs.MagSus); err != nil {
		return opts, errors.Wrap(errors.ErrCodeInvalidInput, err, "hash inputs")
	}
	if opts.Sites, err = cache.HashFile(cfg.Inputs.Sites); err != nil {
		return opts, errors.Wrap(errors.ErrCodeInvalidInput, err, "hash inputs")
	}

	var buf bytes.Buffer
	if err := cfg.Encode(&buf); err != nil {
		return opts, errors.Wrap(errors.ErrCodeInternal, err, "encode config")
	}
	opts.Config = cache.Hash(buf.Bytes())
	return opts, nil
}

// PageOutput is one drawn (or cached) page.
type PageOutput struct {
	Info PageInfo

	// Artifacts maps format to encoded bytes.
	Artifacts map[string][]byte

	// Canvas is nil when every format came from the cache.
	Canvas *canvas.Canvas

	Stats column.Stats
}

// RenderSheet draws every page of sh in the page formats of opts. When a
// booklet is wanted each page is drawn even if it is cached, so that its
// canvas can be collected.
func (r *Runner) RenderSheet(ctx context.Context, in *Input, sh *config.Sheet, opts Options) ([]PageOutput, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	return r.renderSheet(ctx, in, sh, opts, opts.WantsBooklet())
}

func (r *Runner) renderSheet(ctx context.Context, in *Input, sh *config.Sheet, opts Options, draw bool) ([]PageOutput, error) {
	formats := opts.PageFormats()
	renderer := column.New(opts.Config, sh, append([]column.Option{column.WithLogger(r.Logger)}, r.renderOpts...)...)

	var pages []PageOutput
	for _, pr := range sh.Pages() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		start := time.Now()
		observability.Pipeline().OnPageStart(ctx, sh.Name, pr.Bottom, pr.Top)

		out, err := r.renderPage(ctx, renderer, in, sh, pr, formats, opts.Refresh, draw)
		observability.Pipeline().OnPageComplete(ctx, sh.Name, pr.Bottom, out.Info.Cached, time.Since(start), err)
		if err != nil {
			return nil, fmt.Errorf("sheet %s page %g-%g: %w", sh.Name, pr.Bottom, pr.Top, err)
		}
		pages = append(pages, out)
	}
	return pages, nil
}

func (r *Runner) renderPage(ctx context.Context, renderer *column.Renderer, in *Input, sh *config.Sheet,
	pr config.PageRange, formats []string, refresh, draw bool) (PageOutput, error) {
	out := PageOutput{
		Info: PageInfo{
			Sheet:  sh.Name,
			Name:   sh.OutputName(pr.Bottom),
			Bottom: pr.Bottom,
			Top:    pr.Top,
		},
		Artifacts: make(map[string][]byte, len(formats)),
	}

	keys := make(map[string]string, len(formats))
	var missing []string
	for _, f := range formats {
		keys[f] = r.Keyer.PageKey(in.Hash, cache.PageKeyOpts{Sheet: sh.Name, Bottom: pr.Bottom, Top: pr.Top, Format: f})
		if !refresh {
			if data, hit, err := r.Cache.Get(ctx, keys[f]); err == nil && hit {
				out.Artifacts[f] = data
				continue
			}
		}
		missing = append(missing, f)
	}
	out.Info.Cached = len(missing) == 0

	if len(missing) == 0 && !draw {
		r.Logger.Debug("page from cache", "sheet", sh.Name, "page", out.Info.Name)
		return out, nil
	}

	page, err := renderer.Render(&in.Data, pr)
	if err != nil {
		return out, err
	}
	out.Canvas = page.Sheet.Canvas()
	out.Stats = page.Stats

	for _, f := range missing {
		data, err := sink.Encode(out.Canvas, f)
		if err != nil {
			return out, err
		}
		out.Artifacts[f] = data
		_ = r.Cache.Set(ctx, keys[f], data, cache.TTLPage)
	}
	return out, nil
}

// Execute loads the inputs and renders every selected sheet.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	r.applyLogger(&opts)

	result := &Result{RunID: uuid.NewString(), Artifacts: make(map[string][]byte)}

	loadStart := time.Now()
	in, err := r.Load(ctx, opts.Config)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	result.Stats.LoadTime = time.Since(loadStart)
	result.Stats.Beds = len(in.Data.Beds)
	result.Stats.Samples = len(in.Data.MagSus)
	result.Stats.Sites = len(in.Data.Sites)

	r.Logger.Info("loaded inputs",
		"run", result.RunID,
		"beds", result.Stats.Beds,
		"duration", result.Stats.LoadTime)

	sheets := opts.SelectedSheets()
	names := make([]string, len(sheets))
	for i, sh := range sheets {
		names[i] = sh.Name
	}

	var booklet []byte
	bookletKey := r.Keyer.PageKey(in.Hash, cache.PageKeyOpts{
		Sheet:  "booklet:" + strings.Join(names, ","),
		Format: config.FormatPDF,
	})
	if opts.WantsBooklet() && !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, bookletKey); err == nil && hit {
			booklet = data
		}
	}
	collect := opts.WantsBooklet() && booklet == nil

	renderStart := time.Now()
	var canvases []*canvas.Canvas
	for _, sh := range sheets {
		pages, err := r.renderSheet(ctx, in, sh, opts, collect)
		if err != nil {
			return nil, fmt.Errorf("render: %w", err)
		}
		for _, p := range pages {
			result.Pages = append(result.Pages, p.Info)
			if p.Info.Cached {
				result.CacheInfo.Hits++
			} else {
				result.CacheInfo.Misses++
			}
			for f, data := range p.Artifacts {
				name := p.Info.Name + sink.Extension(f)
				if _, dup := result.Artifacts[name]; dup {
					r.Logger.Warn("output name used twice; keeping the later page", "file", name, "sheet", sh.Name)
				}
				result.Artifacts[name] = data
			}
			if collect {
				canvases = append(canvases, p.Canvas)
			}
		}
	}

	if opts.WantsBooklet() {
		if booklet == nil {
			booklet, err = sink.RenderBooklet(canvases, sink.WithTitle(opts.BookletName))
			if err != nil {
				return nil, fmt.Errorf("render: %w", err)
			}
			_ = r.Cache.Set(ctx, bookletKey, booklet, cache.TTLPage)
		}
		result.Artifacts[opts.BookletName+sink.Extension(config.FormatPDF)] = booklet
	}

	result.Stats.Pages = len(result.Pages)
	result.Stats.RenderTime = time.Since(renderStart)

	r.Logger.Info("rendered pages",
		"run", result.RunID,
		"pages", result.Stats.Pages,
		"cached", result.CacheInfo.Hits,
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
