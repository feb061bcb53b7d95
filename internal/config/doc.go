// Package config binds spec.md §6's parameter table to cobra flags, an
// optional viper-loaded YAML config file, and environment variables, with
// precedence flags > config file > built-in defaults (the cobra+viper
// layering pattern used throughout the example pack).
package config
