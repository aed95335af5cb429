package surround

import "context"

// Value returns a wrapper establishing an ambient value for
// everything inside it.
func Value(key, val any) Component {
	if key == nil {
		panic("key cannot be nil")
	}
	return ComponentFunc(func(ctx context.Context, props Props) (any, error) {
		if props.Children == nil {
			return nil, nil
		}
		return props.Children(context.WithValue(ctx, key, val))
	})
}

// ValueOf retrieves an ambient value of type T established by an
// enclosing wrapper.
func ValueOf[T any](ctx context.Context, key any) (T, bool) {
	if v, ok := ctx.Value(key).(T); ok {
		return v, true
	}
	var zero T
	return zero, false
}
