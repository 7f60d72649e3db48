// Package config manages user-level settings stored at
// ~/.actionsmith/config.yaml. It provides functions to load, read, and
// write configuration keys such as the default author and branding values
// used when scaffolding new actions.
package config
