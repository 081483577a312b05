// Package config loads cellgrid settings.
//
// Settings come from three places, later ones winning:
//
//  1. Built-in defaults (Default)
//  2. A TOML or YAML file, chosen by extension (Load)
//  3. CELLGRID_* environment variables (ApplyEnv)
//
// A Watcher reloads the file when it changes on disk.
package config
