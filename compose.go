package surround

// Compose nests the supplied entries left to right, the first being
// the outermost wrapper.  Entries may be Components, Entry pairs, or
// None/nil in any mixture; absent entries are elided.  Called with no
// entries it renders its children unchanged.
func Compose(entries ...any) *Providers {
	return New(entries...)
}
