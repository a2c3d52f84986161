package memoize

// CacheConfig is the structured option set for one memoized function. The
// zero value means: unbounded map, no expiry, storage isolated per execution
// context, every parameter part of the key.
type CacheConfig struct {
	// Capacity bounds the cache to this many entries with least-recently-used
	// eviction. Requires extended backends. Mutually exclusive with
	// CustomHasher.
	Capacity int

	// TimeToLive is a Go expression producing a time.Duration. When set,
	// cached values are stored with their creation time and an entry at
	// least this old reads as a miss. Requires extended backends.
	TimeToLive string

	// SharedCache switches from per-context storage to a single
	// process-wide store guarded by a mutex, lazily created on first access.
	SharedCache bool

	// CustomHasher is a type reference implementing memostore.Hasher for
	// the function's key type. The storage becomes a hasher-bucketed map.
	CustomHasher string

	// HasherInit is the constructor expression for CustomHasher. Defaults
	// to the composite literal CustomHasher{}.
	HasherInit string

	// Ignore names parameters to exclude from the cache key. Each name must
	// match a declared parameter.
	Ignore []string
}

// DefaultStoreImport is the import path of the runtime storage package the
// generated code links against.
const DefaultStoreImport = "github.com/agentuity/go-memoize/memostore"

// config holds the resolved generator configuration.
type config struct {
	pkg         string
	extended    bool
	storeImport string
}

// Option configures a Generator.
type Option func(*config)

func defaultConfig() config {
	return config{
		pkg:         "main",
		storeImport: DefaultStoreImport,
	}
}

func applyOptions(opts []Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithPackage sets the package clause of the generated file. Defaults to
// "main".
func WithPackage(name string) Option {
	return func(c *config) { c.pkg = name }
}

// WithExtendedBackends enables the advanced options Capacity and TimeToLive.
// Without it, configurations using them are rejected at resolution time.
func WithExtendedBackends() Option {
	return func(c *config) { c.extended = true }
}

// WithStoreImport overrides the import path of the runtime storage package.
// Useful when the module is vendored under a different path.
func WithStoreImport(path string) Option {
	return func(c *config) { c.storeImport = path }
}
