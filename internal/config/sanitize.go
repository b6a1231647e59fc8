package config

import "strings"

// Normalize returns a copy of the config with enum-like fields trimmed and
// lower-cased. Input is left untouched; its bytes are the benchmark payload.
func Normalize(cfg *Config) *Config {
	n := *cfg

	n.Bench.Mode = normalize(n.Bench.Mode)
	n.Bench.Clock = normalize(n.Bench.Clock)
	n.Output.Format = normalize(n.Output.Format)
	n.Log.Level = normalize(n.Log.Level)
	n.Log.Format = normalize(n.Log.Format)

	return &n
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
