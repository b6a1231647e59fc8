// Package confloader loads encodebench configuration with koanf.
//
// Priority (highest to lowest):
//
//  1. Command-line flags (passed as a map of dotted keys)
//  2. Environment variables (ENCODEBENCH_SECTION_KEY, see EnvPrefix)
//  3. YAML configuration file
//  4. Values already present in the target struct (defaults)
package confloader
