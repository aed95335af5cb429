package surround

import "context"

type (
	// Config is the set of named values a Component needs to render,
	// distinct from the children it wraps.
	Config map[string]any

	// Renderer is the children slot: a thunk producing a subtree
	// from the ambient context.
	Renderer func(ctx context.Context) (any, error)

	// Props carry the configuration and children slot a Component
	// receives when it renders.
	Props struct {
		Config   Config
		Children Renderer
	}

	// Component is the uniform metaphor for wrapping.  A Component
	// establishes ambient state around its children slot, typically
	// by deriving the context it renders the children under, and
	// produces the surrounding subtree.
	Component interface {
		Render(ctx context.Context, props Props) (any, error)
	}

	// ComponentFunc adapts an ordinary function to a Component.
	ComponentFunc func(ctx context.Context, props Props) (any, error)

	// ConfigDefaults is implemented by Components providing default
	// configuration values, merged under any supplied Config.
	ConfigDefaults interface {
		DefaultConfig() Config
	}

	// RequiresConfig is implemented by Components declaring the
	// configuration fields they cannot render without.
	// Enforcement is opt-in through the check package.
	RequiresConfig interface {
		RequiredConfig() []string
	}
)

func (f ComponentFunc) Render(
	ctx   context.Context,
	props Props,
) (any, error) { return f(ctx, props) }
