package goval

import (
	"github.com/asaskevich/govalidator"
	"github.com/surround-go/surround"
	"github.com/surround-go/surround/check"
)

type (
	// Rules is implemented by Components that declare govalidator
	// constraints for their configuration fields.  The template must
	// cover every field the configuration may carry.
	Rules interface {
		ConfigRules() map[string]any
	}

	validator struct{}
)

// New returns a check.Checker backed by govalidator map validation.
func New() check.Checker {
	return validator{}
}

func (validator) Check(entry surround.Entry) error {
	rules, ok := entry.Component.(Rules)
	if !ok {
		return nil
	}
	template := rules.ConfigRules()
	if len(template) == 0 {
		return nil
	}
	if _, err := govalidator.ValidateMap(map[string]any(entry.Config), template); err != nil {
		return err
	}
	return nil
}
