// Package config defines the encodebench configuration: the loop
// parameters, the report format, the metrics textfile and logging.
//
// Default reproduces the reference benchmark. Normalize folds case and
// whitespace in enum-like fields, and Verify reports every invalid field in
// one error wrapping ErrInvalidConfig. Loading from files, the environment
// and flags lives in internal/infra/confloader.
package config
