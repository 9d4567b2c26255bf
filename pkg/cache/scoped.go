package cache

// ScopedKeyer wraps a Keyer with a prefix so that several projects can
// share one cache directory without their keys colliding.
//
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "ffq:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// InputKey generates a prefixed input key.
func (k *ScopedKeyer) InputKey(opts InputKeyOpts) string {
	return k.prefix + k.inner.InputKey(opts)
}

// PageKey generates a prefixed page key.
func (k *ScopedKeyer) PageKey(inputHash string, opts PageKeyOpts) string {
	return k.prefix + k.inner.PageKey(inputHash, opts)
}
