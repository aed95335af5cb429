package config

import (
	"context"
	"errors"

	"github.com/surround-go/surround"
	"github.com/surround-go/surround/internal"
)

// ErrNoProvider is returned by Load when no enclosing wrapper
// established a configuration Provider.
var ErrNoProvider = errors.New("config: no ambient provider")

type ambient struct {
	provider Provider
}

type ctxKey struct{}

// Ambient returns a wrapper establishing provider as the ambient
// configuration source for everything inside it.
func Ambient(provider Provider) surround.Component {
	if internal.IsNil(provider) {
		panic("provider cannot be nil")
	}
	return &ambient{provider}
}

// From returns the ambient configuration Provider, if any.
func From(ctx context.Context) (Provider, bool) {
	provider, ok := ctx.Value(ctxKey{}).(Provider)
	return provider, ok
}

// Load resolves the configuration section at path into a T using the
// ambient Provider.
func Load[T any](ctx context.Context, path string) (T, error) {
	var value T
	provider, ok := From(ctx)
	if !ok {
		return value, ErrNoProvider
	}
	if err := provider.Unmarshal(path, &value); err != nil {
		return value, err
	}
	return value, nil
}

func (a *ambient) ComponentName() string {
	return "config.Ambient"
}

func (a *ambient) Render(
	ctx   context.Context,
	props surround.Props,
) (any, error) {
	if props.Children == nil {
		return nil, nil
	}
	return props.Children(context.WithValue(ctx, ctxKey{}, a.provider))
}
