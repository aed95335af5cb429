package play

import (
	"errors"

	ut "github.com/go-playground/universal-translator"
	play "github.com/go-playground/validator/v10"
	"github.com/hashicorp/go-multierror"
	"github.com/mitchellh/mapstructure"
	"github.com/surround-go/surround"
	"github.com/surround-go/surround/internal"
)

type (
	// Prototype is implemented by Components that declare a typed
	// configuration shape carrying validation tags.  ConfigPrototype
	// must return a fresh pointer to a struct on each call.
	Prototype interface {
		ConfigPrototype() any
	}

	// Validator checks entry configurations against their declared
	// prototypes using the go-playground validator.
	Validator struct {
		validate   *play.Validate
		translator ut.Translator
	}
)

// Translator sets the translator used to render violation messages.
func Translator(translator ut.Translator) func(*Validator) {
	return func(v *Validator) {
		v.translator = translator
	}
}

// New returns a Validator backed by the go-playground validator.
func New(config ...func(*Validator)) *Validator {
	v := &Validator{validate: play.New()}
	for _, configure := range config {
		if configure != nil {
			configure(v)
		}
	}
	return v
}

// Validate exposes the underlying validator for rule registration.
func (v *Validator) Validate() *play.Validate {
	return v.validate
}

// Check decodes the entry config into the component's prototype and
// validates it.  Components without a Prototype pass unchecked.
func (v *Validator) Check(entry surround.Entry) error {
	prototype, ok := entry.Component.(Prototype)
	if !ok {
		return nil
	}
	target := prototype.ConfigPrototype()
	if internal.IsNil(target) {
		return nil
	}
	if err := mapstructure.Decode(entry.Config, target); err != nil {
		return err
	}
	err := v.validate.Struct(target)
	if err == nil {
		return nil
	}
	if translator := v.translator; translator != nil {
		var violations play.ValidationErrors
		if errors.As(err, &violations) {
			var errs error
			for _, violation := range violations {
				errs = multierror.Append(errs,
					errors.New(violation.Translate(translator)))
			}
			return errs
		}
	}
	return err
}
