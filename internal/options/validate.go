// Package options provides shared utilities for option validation across packages.
package options

import (
	"fmt"
	"slices"
	"strings"

	"github.com/erraggy/oasexplorer/oaserrors"
)

// ValidateSingleInputSource ensures exactly one input source is specified.
// sources is a variadic list of booleans indicating whether each source is set.
// noSourceMsg is the error message when no source is specified.
// multiSourceMsg is the error message when multiple sources are specified.
func ValidateSingleInputSource(noSourceMsg, multiSourceMsg string, sources ...bool) error {
	sourceCount := 0
	for _, hasSource := range sources {
		if hasSource {
			sourceCount++
		}
	}

	if sourceCount == 0 {
		return &oaserrors.ConfigError{Option: "input", Message: noSourceMsg}
	}
	if sourceCount > 1 {
		return &oaserrors.ConfigError{Option: "input", Message: multiSourceMsg}
	}

	return nil
}

// ValidatePositive ensures an integer option is greater than zero.
func ValidatePositive(option string, value int) error {
	if value <= 0 {
		return &oaserrors.ConfigError{Option: option, Value: value, Message: "must be greater than zero"}
	}
	return nil
}

// ValidateOneOf ensures a string option is one of the allowed values.
func ValidateOneOf(option, value string, allowed ...string) error {
	if slices.Contains(allowed, value) {
		return nil
	}
	return &oaserrors.ConfigError{
		Option:  option,
		Value:   value,
		Message: fmt.Sprintf("must be one of: %s", strings.Join(allowed, ", ")),
	}
}
