package cliconfig

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/bft-labs/solid/internal/domain"
)

// KnownDemos lists the demo names the CLI accepts, in display order.
var KnownDemos = []string{"srp", "ocp", "lsp", "isp", "dip"}

// Config holds CLI configuration for solid.
type Config struct {
	Demos   []string
	All     bool
	Variant string

	LogLevel string

	Watch         bool
	WatchDebounce time.Duration
}

// DefaultConfig returns a Config with default values. No demos are selected,
// so running with defaults prints nothing.
func DefaultConfig() Config {
	return Config{
		Variant:       string(domain.VariantAfter),
		LogLevel:      "info",
		WatchDebounce: 100 * time.Millisecond,
	}
}

// Validate checks the configuration for errors and sets derived defaults.
func (c *Config) Validate() error {
	if c.All {
		c.Demos = append([]string(nil), KnownDemos...)
	}

	seen := make(map[string]bool, len(c.Demos))
	demos := c.Demos[:0]
	for _, d := range c.Demos {
		d = strings.ToLower(strings.TrimSpace(d))
		if d == "" || seen[d] {
			continue
		}
		if !isKnownDemo(d) {
			return fmt.Errorf("%w: unknown demo %q (known: %s)", domain.ErrInvalidConfig, d, strings.Join(KnownDemos, ", "))
		}
		seen[d] = true
		demos = append(demos, d)
	}
	c.Demos = demos

	if _, err := domain.ParseVariant(c.Variant); err != nil {
		return err
	}

	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log level %q", domain.ErrInvalidConfig, c.LogLevel)
	}

	if c.Watch && c.WatchDebounce <= 0 {
		return fmt.Errorf("%w: watch debounce must be positive", domain.ErrInvalidConfig)
	}

	return nil
}

func isKnownDemo(name string) bool {
	for _, k := range KnownDemos {
		if k == name {
			return true
		}
	}
	return false
}

// configSetter helps apply configuration values while respecting flag precedence.
// It only applies values if the corresponding flag hasn't been explicitly set.
type configSetter struct {
	changed map[string]bool
}

func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setSelection applies a demo selection. --demo and --all share one
// precedence key: an explicit flag for either blocks both, and a layer that
// names demos clears an "all" inherited from a lower layer.
func (s *configSetter) setSelection(demos []string, all *bool, cfg *Config) {
	if s.changed["demo"] || s.changed["all"] {
		return
	}
	if len(demos) > 0 {
		cfg.Demos = append([]string(nil), demos...)
		cfg.All = false
	}
	if all != nil {
		cfg.All = *all
	}
}

// setDuration parses and sets a duration from string if valid and flag not changed.
func (s *configSetter) setDuration(flag, value string, dst *time.Duration) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = d
	return nil
}

// setBool sets a bool value from a pointer if not nil and flag not changed.
func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setBoolFromString accepts "true" and "1" as true, anything else as false.
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = parseBool(value)
}

// optionalBool converts an env value to a *bool, nil when unset.
func optionalBool(value string) *bool {
	if value == "" {
		return nil
	}
	b := parseBool(value)
	return &b
}

func parseBool(value string) bool {
	return value == "true" || value == "1"
}

// splitList splits a comma separated list, dropping empty items.
func splitList(value string) []string {
	var out []string
	for _, p := range strings.Split(value, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
