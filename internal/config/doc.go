// Package config loads artisan's settings.
//
// # Configuration Precedence
//
// Values are resolved in the following order (highest to lowest priority):
//
//  1. CLI flags (--theme, --format, --no-color, --expand, --store, ...)
//  2. Environment variables (ARTISAN_THEME, ARTISAN_STORE_DRIVER, NO_COLOR, ...)
//  3. YAML config file (.artisan.yaml in the working directory, then
//     $XDG_CONFIG_HOME/artisan/.artisan.yaml)
//  4. Hardcoded defaults
//
// # Environment Variables
//
// Every key maps to ARTISAN_ followed by the upper-cased key with dots
// replaced by underscores (store.path -> ARTISAN_STORE_PATH). NO_COLOR set
// to any non-empty value disables colour unless --no-color was given
// explicitly. ARTISAN_CONFIG_DIR overrides the config directory.
package config
