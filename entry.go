package surround

import (
	"context"
	"fmt"

	"github.com/imdario/mergo"
	"github.com/surround-go/surround/internal"
)

// Entry pairs a wrapper Component with the configuration it renders
// with.  Entries are never mutated once appended to a chain.
type Entry struct {
	Component Component
	Config    Config
}

// None marks a position in a chain with no entry.  Adding it is a
// no-op, so conditional wrappers can be spliced in without reshaping
// the call site.
var None = Entry{}

// Absent reports whether the entry is the absence marker.
func (e Entry) Absent() bool {
	return internal.IsNil(e.Component)
}

// NewEntry normalizes a component and its configuration into an
// Entry.  Configs merge with earlier arguments taking precedence per
// key; defaults declared by the component fill in last.  A nil
// component yields None.
func NewEntry(component Component, config ...Config) Entry {
	if internal.IsNil(component) {
		return None
	}
	return Entry{component, mergeConfig(component, config)}
}

// When gates the inclusion of a wrapper in a chain.  A true condition
// yields the normalized Entry; a false condition yields None.  Config
// arguments are evaluated by the caller either way.
func When(condition bool, component Component, config ...Config) Entry {
	if !condition {
		return None
	}
	return NewEntry(component, config...)
}

func mergeConfig(component Component, config []Config) Config {
	merged := Config{}
	for _, c := range config {
		if len(c) == 0 {
			continue
		}
		if err := mergo.Merge(&merged, c); err != nil {
			panic(err)
		}
	}
	if defaults, ok := component.(ConfigDefaults); ok {
		if d := defaults.DefaultConfig(); len(d) > 0 {
			if err := mergo.Merge(&merged, d); err != nil {
				panic(err)
			}
		}
	}
	return merged
}

func normalize(entry any, config []Config) Entry {
	switch e := entry.(type) {
	case nil:
		return None
	case Entry:
		if len(config) > 0 {
			panic("config cannot be combined with an Entry")
		}
		if e.Absent() {
			return None
		}
		return NewEntry(e.Component, e.Config)
	case *Entry:
		if e == nil {
			return None
		}
		return normalize(*e, config)
	case Component:
		return NewEntry(e, config...)
	case func(context.Context, Props) (any, error):
		return NewEntry(ComponentFunc(e), config...)
	default:
		panic(fmt.Errorf("surround: %T is not a component, entry or None", entry))
	}
}
