// Package app implements the cookbook application service used by every transport.
package app

import (
	"context"
	"errors"
	"fmt"

	"go.trai.ch/cookbook/internal/core/domain"
	"go.trai.ch/cookbook/internal/core/ports"
	"go.trai.ch/cookbook/internal/engine/resolver"
	"go.trai.ch/zerr"
)

// App combines the entry store, the resolver and configuration loading.
type App struct {
	store        ports.EntryStore
	resolver     *resolver.Resolver
	configLoader ports.ConfigLoader
	logger       ports.Logger
}

// New creates a new App instance.
func New(store ports.EntryStore, res *resolver.Resolver, loader ports.ConfigLoader, logger ports.Logger) *App {
	return &App{
		store:        store,
		resolver:     res,
		configLoader: loader,
		logger:       logger,
	}
}

// Options are the settings shared by every command.
type Options struct {
	// ConfigPath is the configuration file to read.
	ConfigPath string
	// ConfigRequired makes a missing configuration file an error instead of
	// falling back to defaults.
	ConfigRequired bool
	// LogFormat overrides the configured log format when set.
	LogFormat string
	// Seeds are loaded after the seeds listed in the configuration.
	Seeds []string
}

// CreateEntry validates in and stores it. The duplicate-name check runs before
// the type discriminator is inspected.
func (a *App) CreateEntry(in domain.EntryInput) error {
	if _, exists := a.store.Get(in.Name); exists {
		return zerr.With(zerr.Wrap(domain.ErrDuplicateName, "failed to create entry"), "name", in.Name)
	}

	entry, err := in.Entry()
	if err != nil {
		return err
	}

	return a.store.Put(entry)
}

// Entry returns the stored entry named name.
func (a *App) Entry(name string) (domain.Entry, bool) {
	return a.store.Get(name)
}

// Entries returns all stored entries in insertion order.
func (a *App) Entries() []domain.Entry {
	return a.store.List()
}

// EntryCount returns the number of stored entries.
func (a *App) EntryCount() int {
	return a.store.Len()
}

// Summarize resolves the recipe named name.
func (a *App) Summarize(ctx context.Context, name string) (*domain.Summary, error) {
	return a.resolver.Resolve(ctx, name)
}

// ParseName normalises a handwritten recipe name.
func (a *App) ParseName(input string) (string, error) {
	return domain.ParseHandwriting(input)
}

// Seed replays the entries of each seed file through CreateEntry and returns
// the number of entries created. It stops at the first failure.
func (a *App) Seed(paths ...string) (int, error) {
	total := 0
	for _, path := range paths {
		inputs, err := a.configLoader.LoadSeed(path)
		if err != nil {
			return total, err
		}

		for _, in := range inputs {
			if err := a.CreateEntry(in); err != nil {
				return total, zerr.With(zerr.With(zerr.Wrap(err, "failed to seed entry"), "path", path), "name", in.Name)
			}
			total++
		}
		a.logger.Info(fmt.Sprintf("seeded %d entries from %s", len(inputs), path))
	}
	return total, nil
}

// Prepare loads the configuration, applies the log format and loads every seed file.
func (a *App) Prepare(opts Options) (*domain.Config, error) {
	path := opts.ConfigPath
	if path == "" {
		path = domain.DefaultConfigFile
	}

	cfg, err := a.configLoader.Load(path)
	if err != nil {
		if opts.ConfigRequired || !errors.Is(err, domain.ErrConfigNotFound) {
			return nil, zerr.Wrap(err, "failed to load configuration")
		}
		cfg = domain.DefaultConfig()
	}

	if opts.LogFormat != "" {
		cfg.Log.Format = opts.LogFormat
	}
	switch cfg.Log.Format {
	case domain.LogFormatJSON:
		a.logger.SetJSON(true)
	case domain.LogFormatPretty:
		a.logger.SetJSON(false)
	default:
		return nil, zerr.With(zerr.Wrap(domain.ErrInvalidLogFormat, "failed to configure logger"), "format", cfg.Log.Format)
	}

	seeds := append(append([]string{}, cfg.Seeds...), opts.Seeds...)
	if _, err := a.Seed(seeds...); err != nil {
		return nil, zerr.Wrap(err, "failed to load seeds")
	}
	return cfg, nil
}

// CheckResult is the outcome of resolving one stored recipe.
type CheckResult struct {
	Name    string
	Summary *domain.Summary
	Err     error
}

// Check resolves every stored recipe in insertion order. The returned error is
// domain.ErrInvalidRecipes when at least one recipe failed.
func (a *App) Check(ctx context.Context) ([]CheckResult, error) {
	var (
		results []CheckResult
		failed  int
	)
	for _, entry := range a.store.List() {
		if entry.Kind() != domain.KindRecipe {
			continue
		}
		summary, err := a.resolver.Resolve(ctx, entry.EntryName())
		if err != nil {
			failed++
		}
		results = append(results, CheckResult{Name: entry.EntryName(), Summary: summary, Err: err})
	}

	if failed > 0 {
		return results, zerr.With(zerr.Wrap(domain.ErrInvalidRecipes, "check failed"), "failed", failed)
	}
	return results, nil
}
