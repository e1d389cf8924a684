package cache

// DocumentKeyOpts are the inputs besides the source bytes that change how a
// source decodes.
type DocumentKeyOpts struct {
	Format      string `json:"format"`
	CatalogHash string `json:"catalog,omitempty"`
}

// ConversionKeyOpts are the inputs besides the source bytes that change the
// output of a conversion.
type ConversionKeyOpts struct {
	From        string `json:"from"`
	To          string `json:"to"`
	CatalogHash string `json:"catalog,omitempty"`
}

// Keyer builds cache keys.
type Keyer interface {
	// DocumentKey identifies a decoded document.
	DocumentKey(sourceHash string, opts DocumentKeyOpts) string
	// ConversionKey identifies the encoded output of a conversion.
	ConversionKey(sourceHash string, opts ConversionKeyOpts) string
}

// DefaultKeyer hashes all key inputs into fixed-length keys.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

func (DefaultKeyer) DocumentKey(sourceHash string, opts DocumentKeyOpts) string {
	return hashKey("document", sourceHash, opts)
}

func (DefaultKeyer) ConversionKey(sourceHash string, opts ConversionKeyOpts) string {
	return hashKey("conversion", sourceHash, opts)
}

var _ Keyer = DefaultKeyer{}
