package cliconfig

import "os"

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "SOLID_"

// ApplyEnvConfig applies SOLID_* environment variables to cfg.
// Env overrides the file but never a flag that was explicitly set.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setSelection(splitList(os.Getenv(EnvPrefix+"DEMOS")), optionalBool(os.Getenv(EnvPrefix+"ALL")), cfg)
	s.setString("variant", os.Getenv(EnvPrefix+"VARIANT"), &cfg.Variant)
	s.setString("log-level", os.Getenv(EnvPrefix+"LOG_LEVEL"), &cfg.LogLevel)
	s.setBoolFromString("watch", os.Getenv(EnvPrefix+"WATCH"), &cfg.Watch)

	if err := s.setDuration("watch-debounce", os.Getenv(EnvPrefix+"WATCH_DEBOUNCE"), &cfg.WatchDebounce); err != nil {
		return err
	}
	return nil
}
