package surround

import (
	"context"

	"github.com/google/uuid"
	"github.com/surround-go/surround/internal"
)

// Providers accumulates an ordered chain of wrapper entries and is
// itself a Component that renders them nested around its children
// slot.  The first entry added becomes the outermost wrapper.
type Providers struct {
	id      string
	entries []Entry
}

// New returns a fresh chain seeded with the supplied entries, which
// may be Components, Entry pairs, or None/nil in any mixture.
func New(entries ...any) *Providers {
	p := &Providers{id: uuid.NewString()}
	for _, entry := range entries {
		p.Add(entry)
	}
	return p
}

// ID identifies this chain instance for diagnostics.
func (p *Providers) ID() string {
	return p.id
}

// Add appends a wrapper to the chain.  entry may be a Component with
// optional config arguments, an Entry pair, or None/nil which is
// skipped.  The chain is mutated in place and returned for chaining.
func (p *Providers) Add(entry any, config ...Config) *Providers {
	if e := normalize(entry, config); !e.Absent() {
		p.entries = append(p.entries, e)
	}
	return p
}

// Clone returns an independent chain with the same entries.
// Subsequent Add calls on either chain leave the other untouched.
func (p *Providers) Clone() *Providers {
	entries := make([]Entry, len(p.entries))
	copy(entries, p.entries)
	return &Providers{uuid.NewString(), entries}
}

// Entries returns a snapshot of the chain in nesting order.
func (p *Providers) Entries() []Entry {
	entries := make([]Entry, len(p.entries))
	copy(entries, p.entries)
	return entries
}

// Render implements Component by folding the chain around the
// children slot: entry 0 outermost, the last entry innermost.  An
// empty chain renders the children unchanged.  A failure raised by
// any wrapper propagates verbatim; wrappers inside it never render.
func (p *Providers) Render(
	ctx   context.Context,
	props Props,
) (any, error) {
	children := props.Children
	if children == nil {
		children = emptyChildren
	}
	for i := len(p.entries) - 1; i >= 0; i-- {
		entry := p.entries[i]
		inner := children
		children = func(ctx context.Context) (any, error) {
			return entry.Component.Render(ctx, Props{
				Config:   entry.Config,
				Children: inner,
			})
		}
	}
	return children(ctx)
}

// Wrap returns a higher-order component that renders target, with
// the exact props it receives, as the innermost child of the chain.
// The chain is not copied: the wrapped component follows the live
// chain definition.  Use Clone().Wrap(target) for a frozen snapshot.
func (p *Providers) Wrap(target Component) Component {
	if internal.IsNil(target) {
		panic("target cannot be nil")
	}
	return ComponentFunc(func(ctx context.Context, props Props) (any, error) {
		return p.Render(ctx, Props{
			Children: func(ctx context.Context) (any, error) {
				return target.Render(ctx, props)
			},
		})
	})
}

func emptyChildren(context.Context) (any, error) {
	return nil, nil
}
