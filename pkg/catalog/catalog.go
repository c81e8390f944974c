package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/dmitrymomot/formrules/pkg/config"
	"github.com/dmitrymomot/formrules/pkg/logger"
	"github.com/dmitrymomot/formrules/pkg/regex"
	"github.com/dmitrymomot/formrules/pkg/validator"
)

// Config is the environment-driven catalog configuration.
type Config struct {
	Path          string        `env:"FORMRULES_CATALOG_PATH" envDefault:"patterns.yaml"`
	DefaultEngine string        `env:"FORMRULES_DEFAULT_ENGINE" envDefault:"ecmascript"`
	MatchTimeout  time.Duration `env:"FORMRULES_MATCH_TIMEOUT" envDefault:"100ms"`
}

// Catalog is an immutable table of named pattern validators.
// It is safe for concurrent use.
type Catalog struct {
	validators map[string]*validator.PatternValidator
	entries    map[string]Entry
}

// Option configures catalog construction.
type Option func(*options)

type options struct {
	logger        *slog.Logger
	parsers       []Parser
	defaultEngine regex.Engine
	ruleOptions   []regex.Option
}

func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithParser registers an additional parser. It takes precedence over the
// built-in YAML and JSON parsers.
func WithParser(p Parser) Option {
	return func(o *options) {
		if p != nil {
			o.parsers = append([]Parser{p}, o.parsers...)
		}
	}
}

// WithDefaultEngine sets the engine for entries that do not name one.
func WithDefaultEngine(e regex.Engine) Option {
	return func(o *options) {
		if e != "" {
			o.defaultEngine = e
		}
	}
}

// WithMatchTimeout bounds ECMAScript matches of every compiled entry.
func WithMatchTimeout(d time.Duration) Option {
	return func(o *options) {
		o.ruleOptions = append(o.ruleOptions, regex.WithMatchTimeout(d))
	}
}

func newOptions(opts []Option) *options {
	o := &options{
		logger:        logger.Discard(),
		parsers:       []Parser{NewYAMLParser(), NewJSONParser()},
		defaultEngine: regex.EngineECMAScript,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// New compiles entries into a catalog. Every problem is collected and
// returned together; no partial catalog is returned.
func New(entries []Entry, opts ...Option) (*Catalog, error) {
	o := newOptions(opts)
	return build(entries, o)
}

func build(entries []Entry, o *options) (*Catalog, error) {
	c := &Catalog{
		validators: make(map[string]*validator.PatternValidator, len(entries)),
		entries:    make(map[string]Entry, len(entries)),
	}

	var errs []error
	seen := make(map[string]struct{}, len(entries))
	for i, e := range entries {
		if e.Name == "" {
			errs = append(errs, fmt.Errorf("%w: entry #%d", ErrEmptyName, i))
			continue
		}
		if _, ok := seen[e.Name]; ok {
			errs = append(errs, fmt.Errorf("%w: %q", ErrDuplicateName, e.Name))
			continue
		}
		seen[e.Name] = struct{}{}

		v, engine, err := compileEntry(e, o)
		if err != nil {
			errs = append(errs, fmt.Errorf("%w %q: %w", ErrInvalidEntry, e.Name, err))
			continue
		}

		c.validators[e.Name] = v
		c.entries[e.Name] = e
		o.logger.Debug("pattern compiled",
			logger.PatternName(e.Name),
			logger.Pattern(v.Pattern()),
			logger.Engine(engine.String()),
		)
	}

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return c, nil
}

func compileEntry(e Entry, o *options) (*validator.PatternValidator, regex.Engine, error) {
	engine := o.defaultEngine
	if e.Engine != "" {
		parsed, err := regex.ParseEngine(e.Engine)
		if err != nil {
			return nil, "", err
		}
		engine = parsed
	}

	rule, err := regex.Parse(e.Pattern, engine, o.ruleOptions...)
	if err != nil {
		return nil, "", err
	}
	v, err := validator.NewPattern(rule)
	return v, engine, err
}

// Load reads the catalog document at path. The parser is chosen by file
// extension.
func Load(ctx context.Context, path string, opts ...Option) (*Catalog, error) {
	o := newOptions(opts)
	start := time.Now()

	ext := filepath.Ext(path)
	var parser Parser
	for _, p := range o.parsers {
		if p.SupportsFileExtension(ext) {
			parser = p
			break
		}
	}
	if parser == nil {
		return nil, fmt.Errorf("%w: %q", ErrNoParser, path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(ErrReadingFile, err)
	}

	entries, err := parser.Parse(ctx, content)
	if err != nil {
		return nil, err
	}

	c, err := build(entries, o)
	if err != nil {
		o.logger.ErrorContext(ctx, "catalog rejected", logger.Source(path), logger.Error(err))
		return nil, err
	}

	o.logger.InfoContext(ctx, "catalog loaded",
		logger.Source(path),
		logger.Count(c.Len()),
		logger.Duration(time.Since(start)),
	)
	return c, nil
}

// LoadFromConfig loads the catalog described by cfg. Options given here are
// applied after the ones derived from cfg.
func LoadFromConfig(ctx context.Context, cfg Config, opts ...Option) (*Catalog, error) {
	engine, err := regex.ParseEngine(cfg.DefaultEngine)
	if err != nil {
		return nil, err
	}

	base := []Option{WithDefaultEngine(engine), WithMatchTimeout(cfg.MatchTimeout)}
	return Load(ctx, cfg.Path, append(base, opts...)...)
}

// LoadFromEnv reads Config from the environment (and .env) and loads the
// catalog it points to.
func LoadFromEnv(ctx context.Context, opts ...Option) (*Catalog, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return nil, err
	}
	return LoadFromConfig(ctx, cfg, opts...)
}

// Get returns the validator registered under name.
func (c *Catalog) Get(name string) (*validator.PatternValidator, bool) {
	v, ok := c.validators[name]
	return v, ok
}

// Validator returns the validation function registered under name.
func (c *Catalog) Validator(name string) (validator.Func, error) {
	v, ok := c.validators[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPattern, name)
	}
	return v.Validate, nil
}

// Validate runs the named validator against value.
func (c *Catalog) Validate(name string, value *string) (validator.ValidationErrors, error) {
	v, ok := c.validators[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPattern, name)
	}
	return v.Validate(value), nil
}

// Entry returns the declaration the named validator was built from.
func (c *Catalog) Entry(name string) (Entry, bool) {
	e, ok := c.entries[name]
	return e, ok
}

// Names returns the registered names in sorted order.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.validators))
	for name := range c.validators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (c *Catalog) Len() int {
	return len(c.validators)
}
