package cache

// Keyer derives cache keys.
type Keyer interface {
	// InputKey identifies a set of input tables and a configuration.
	InputKey(opts InputKeyOpts) string

	// PageKey identifies one encoded page.
	PageKey(inputHash string, opts PageKeyOpts) string
}

// InputKeyOpts lists the content hashes that a page depends on.
type InputKeyOpts struct {
	Beds   string `json:"beds"`
	MagSus string `json:"magsus,omitempty"`
	Sites  string `json:"sites,omitempty"`
	Config string `json:"config"`
}

// PageKeyOpts identifies a page within a run.
type PageKeyOpts struct {
	Sheet  string  `json:"sheet"`
	Bottom float64 `json:"bottom"`
	Top    float64 `json:"top"`
	Format string  `json:"format"`
}

// DefaultKeyer hashes key components with SHA-256.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the standard keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

func (DefaultKeyer) InputKey(opts InputKeyOpts) string {
	return hashKey("input", opts)
}

func (DefaultKeyer) PageKey(inputHash string, opts PageKeyOpts) string {
	return hashKey("page", inputHash, opts)
}

var _ Keyer = DefaultKeyer{}
