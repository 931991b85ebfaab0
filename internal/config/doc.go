// Package config loads and validates the watchnext TOML configuration.
//
// Configuration resolves from an explicit --config path, then
// ~/.config/watchnext/config.toml, then ./watchnext.toml. Missing files are
// not an error; defaults apply. All path fields are expanded and absolute
// after Load returns.
package config
