// Package config loads modconflict's configuration.
//
// Sources are layered with koanf, later ones overriding earlier ones:
//
//  1. embedded defaults (embedded/defaults.toml)
//  2. the user config file: --config, or config.toml in the config directory
//  3. environment variables: MODCONFLICT_ prefix, "__" between section and key
//  4. command-line flags that were explicitly set
package config
