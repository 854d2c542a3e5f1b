package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validation errors for configuration fields.
var (
	// ErrVersionTooLow indicates the version field is below the minimum.
	ErrVersionTooLow = errors.New("version must be >= 1")

	// ErrInvalidMode indicates an unrecognized stringify mode.
	ErrInvalidMode = errors.New("mode must be \"yaml\" or \"json\"")

	// ErrInvalidSeparator indicates a separator that is not a valid fence.
	ErrInvalidSeparator = errors.New("separator must be 3 or more repeated '-' or ';'")

	// ErrInvalidIndent indicates a non-positive indentation width.
	ErrInvalidIndent = errors.New("indent must be positive")
)

// Validate checks a Config for validity.
// Returns nil if valid, or the list of validation errors.
func Validate(cfg *Config) []error {
	if cfg == nil {
		return []error{errors.New("config is nil")}
	}

	var errs []error

	if cfg.Version < 1 {
		errs = append(errs, ErrVersionTooLow)
	}

	switch cfg.Mode {
	case "", "yaml", "json":
	default:
		errs = append(errs, fmt.Errorf("%w: %q", ErrInvalidMode, cfg.Mode))
	}

	if cfg.Separator != "" && !validSeparator(cfg.Separator) {
		errs = append(errs, fmt.Errorf("%w: %q", ErrInvalidSeparator, cfg.Separator))
	}

	if cfg.Indent < 0 {
		errs = append(errs, ErrInvalidIndent)
	}

	return errs
}

// validSeparator reports whether s is a fence line the splitter would
// recognize on re-parse.
func validSeparator(s string) bool {
	if len(s) < 3 {
		return false
	}
	return s == strings.Repeat("-", len(s)) || s == strings.Repeat(";", len(s))
}
