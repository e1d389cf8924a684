package cache

// ScopedKeyer wraps a Keyer with a prefix so that several tools or tenants
// can share one backend without colliding.
//
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "mleader:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix. A nil inner keyer means the
// default keyer.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// DocumentKey returns the prefixed document key.
func (k *ScopedKeyer) DocumentKey(sourceHash string, opts DocumentKeyOpts) string {
	return k.prefix + k.inner.DocumentKey(sourceHash, opts)
}

// ConversionKey returns the prefixed conversion key.
func (k *ScopedKeyer) ConversionKey(sourceHash string, opts ConversionKeyOpts) string {
	return k.prefix + k.inner.ConversionKey(sourceHash, opts)
}
