package check

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/surround-go/surround"
)

type (
	// Checker validates the configuration of one chain entry.
	Checker interface {
		Check(entry surround.Entry) error
	}
	CheckerFunc func(surround.Entry) error
)

func (f CheckerFunc) Check(entry surround.Entry) error {
	return f(entry)
}

// MissingConfigError reports a required configuration field that was
// not supplied to a wrapper.
type MissingConfigError struct {
	Component string
	Field     string
}

func (e *MissingConfigError) Error() string {
	return fmt.Sprintf("missing required config %q for %s", e.Field, e.Component)
}

// Chain validates the configuration of every entry in the chain
// before it renders: required fields declared through
// surround.RequiresConfig must be present, and every supplied
// Checker must pass.  All violations are aggregated.
func Chain(providers *surround.Providers, checkers ...Checker) error {
	if providers == nil {
		panic("providers cannot be nil")
	}
	var errs error
	for _, entry := range providers.Entries() {
		if required, ok := entry.Component.(surround.RequiresConfig); ok {
			for _, field := range required.RequiredConfig() {
				if _, present := entry.Config[field]; !present {
					errs = multierror.Append(errs, &MissingConfigError{
						Component: surround.ComponentName(entry.Component),
						Field:     field,
					})
				}
			}
		}
		for _, checker := range checkers {
			if checker == nil {
				continue
			}
			if err := checker.Check(entry); err != nil {
				errs = multierror.Append(errs, err)
			}
		}
	}
	return errs
}
