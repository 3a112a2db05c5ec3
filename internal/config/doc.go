// Package config defines the format-agnostic settings model for jspcompile
// and the Loader interface implemented by each settings file format.
//
// A settings file is optional. Values are layered: Default() first, then
// whatever a settings file sets, then command-line flags the user set
// explicitly. Loaders therefore return Settings, where a nil field means
// "not set in this file", and Model.Apply does the layering.
//
// The TOML loader lives here; the HCL loader lives in the hcl package.
package config
