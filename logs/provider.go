package logs

import (
	"context"

	"github.com/go-logr/logr"
	"github.com/google/uuid"
	"github.com/surround-go/surround"
)

type (
	// Installer configures the ambient logging wrapper.
	Installer struct {
		name      string
		verbosity int
		trace     bool
	}

	provider struct {
		logger logr.Logger
		trace  bool
	}
)

// Named qualifies the ambient logger with a name.
func Named(name string) func(*Installer) {
	return func(installer *Installer) {
		installer.name = name
	}
}

// Verbosity sets the default verbosity of the ambient logger.
func Verbosity(verbosity int) func(*Installer) {
	return func(installer *Installer) {
		installer.verbosity = verbosity
	}
}

// Trace logs every render pass through the wrapper, correlating
// begin and end with a render id.
func Trace() func(*Installer) {
	return func(installer *Installer) {
		installer.trace = true
	}
}

// Provider returns a wrapper establishing root as the ambient logger
// for everything inside it.
func Provider(
	root   logr.Logger,
	config ...func(*Installer),
) surround.Component {
	installer := &Installer{}
	for _, configure := range config {
		if configure != nil {
			configure(installer)
		}
	}
	logger := root
	if name := installer.name; name != "" {
		logger = logger.WithName(name)
	}
	if verbosity := installer.verbosity; verbosity > 0 {
		logger = logger.V(verbosity)
	}
	return &provider{logger, installer.trace}
}

// From returns the ambient logger established by an enclosing
// Provider, or a discard logger when none is present.
func From(ctx context.Context) logr.Logger {
	return logr.FromContextOrDiscard(ctx)
}

func (p *provider) ComponentName() string {
	return "logs.Provider"
}

func (p *provider) Render(
	ctx   context.Context,
	props surround.Props,
) (result any, err error) {
	if props.Children == nil {
		return nil, nil
	}
	logger := p.logger
	if p.trace {
		logger = logger.WithValues("render", uuid.NewString())
		logger.V(1).Info("render begin")
		defer func() {
			if err != nil {
				logger.Error(err, "render failed")
			} else {
				logger.V(1).Info("render end")
			}
		}()
	}
	return props.Children(logr.NewContext(ctx, logger))
}
