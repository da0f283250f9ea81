// Package config loads the clinic configuration from
// ~/.config/vetpulz/config.toml.
//
// A missing file is not an error: every field has a default, so a fresh
// install starts with a usable configuration. Only a file that exists
// but cannot be read or parsed fails the load.
package config
