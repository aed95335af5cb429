package surround

import (
	"encoding/json"
	"reflect"

	"github.com/Rican7/conjson"
	"github.com/Rican7/conjson/transform"
	"github.com/surround-go/surround/internal/slices"
)

type (
	// EntryInfo describes one wrapper in a chain.
	EntryInfo struct {
		Component string
		Config    Config
	}

	// ChainInfo describes a Providers chain for diagnostics.
	ChainInfo struct {
		ID      string
		Entries []EntryInfo
	}
)

// Describe reports the chain in nesting order, outermost first.
func (p *Providers) Describe() ChainInfo {
	return ChainInfo{
		ID: p.id,
		Entries: slices.Map(p.entries, func(entry Entry) EntryInfo {
			return EntryInfo{
				Component: ComponentName(entry.Component),
				Config:    entry.Config,
			}
		}),
	}
}

// ComponentName derives a diagnostic name for a component, preferring
// a ComponentName method when the component supplies one.
func ComponentName(component Component) string {
	if named, ok := component.(interface{ ComponentName() string }); ok {
		return named.ComponentName()
	}
	typ := reflect.TypeOf(component)
	for typ.Kind() == reflect.Ptr {
		typ = typ.Elem()
	}
	return typ.String()
}

// MarshalDescription encodes a chain description as conventional
// camelCase json.
func MarshalDescription(info ChainInfo) ([]byte, error) {
	return json.Marshal(conjson.NewMarshaler(info, transform.ConventionalKeys()))
}
