// Package taxconfig loads the versioned per-fiscal-year tax tables the
// calculation engine runs against. A default table ships embedded in the
// binary; additional or replacement years are read from a directory of YAML
// files so year-over-year updates need no code change.
package taxconfig

import (
	"embed"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/MrSir504/Navigate-Tools-2.1/internal/engine"
)

//go:embed tables/*.yaml
var embeddedTables embed.FS

var store struct {
	mu      sync.RWMutex
	tables  map[string]*engine.TaxTable
	current string
	dir     string
}

// Load parses the embedded tables and, if dir is not empty, every *.yaml
// file in it. Files in dir override embedded years of the same label. The
// most recent year becomes the current table. Loading replaces the whole
// store atomically; individual tables are immutable afterwards.
func Load(dir string) error {
	tables := map[string]*engine.TaxTable{}

	entries, err := embeddedTables.ReadDir("tables")
	if err != nil {
		return &engine.ConfigError{Reason: "embedded tables unreadable: " + err.Error()}
	}
	for _, e := range entries {
		data, err := embeddedTables.ReadFile("tables/" + e.Name())
		if err != nil {
			return &engine.ConfigError{Reason: "embedded table " + e.Name() + ": " + err.Error()}
		}
		table, err := parse(data, e.Name())
		if err != nil {
			return err
		}
		tables[table.Year] = table
	}

	if dir != "" {
		files, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
		if err != nil {
			return &engine.ConfigError{Reason: "tax table directory: " + err.Error()}
		}
		for _, f := range files {
			data, err := os.ReadFile(f)
			if err != nil {
				return &engine.ConfigError{Reason: f + ": " + err.Error()}
			}
			table, err := parse(data, filepath.Base(f))
			if err != nil {
				return err
			}
			if _, exists := tables[table.Year]; exists {
				slog.Info("Tax table overridden from directory", "year", table.Year, "file", f)
			}
			tables[table.Year] = table
		}
	}

	if len(tables) == 0 {
		return &engine.ConfigError{Reason: "no tax tables available"}
	}

	years := make([]string, 0, len(tables))
	for y := range tables {
		years = append(years, y)
	}
	sort.Strings(years)
	current := years[len(years)-1]

	store.mu.Lock()
	store.tables = tables
	store.current = current
	store.dir = dir
	store.mu.Unlock()

	slog.Info("Tax tables loaded", "years", strings.Join(years, ","), "current", current)
	return nil
}

// Reload re-reads the directory Load was last called with.
func Reload() error {
	store.mu.RLock()
	dir := store.dir
	store.mu.RUnlock()
	return Load(dir)
}

func parse(data []byte, name string) (*engine.TaxTable, error) {
	var table engine.TaxTable
	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, &engine.ConfigError{Reason: name + ": " + err.Error()}
	}
	if err := table.Validate(); err != nil {
		return nil, err
	}
	return &table, nil
}

// Table returns the table for the given fiscal year, or the current one when
// year is empty.
func Table(year string) (*engine.TaxTable, error) {
	store.mu.RLock()
	defer store.mu.RUnlock()
	if len(store.tables) == 0 {
		return nil, &engine.ConfigError{Reason: "tax tables not loaded"}
	}
	if year == "" {
		year = store.current
	}
	table, ok := store.tables[year]
	if !ok {
		return nil, &engine.ConfigError{Reason: "no table for year " + year}
	}
	return table, nil
}

// CurrentYear returns the label of the most recent loaded fiscal year.
func CurrentYear() string {
	store.mu.RLock()
	defer store.mu.RUnlock()
	return store.current
}

// Years lists the loaded fiscal years in ascending order.
func Years() []string {
	store.mu.RLock()
	defer store.mu.RUnlock()
	years := make([]string, 0, len(store.tables))
	for y := range store.tables {
		years = append(years, y)
	}
	sort.Strings(years)
	return years
}
