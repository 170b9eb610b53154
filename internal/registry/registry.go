// Package registry holds the in-memory table of library name to
// documentation base URL mappings used by the rewrite pass.
package registry

// Kind distinguishes the two open mapping families.
//
// External entries point at API docs of precompiled third-party libraries;
// Source entries point at API docs of libraries built from source within the
// same toolchain. The two sets are independent: the same name may map to
// different URLs in each.
type Kind int

const (
	External Kind = iota
	Source
)

// Registry maps short library identifiers to documentation base URLs.
//
// A Registry additionally carries one fixed runtime-platform base URL (the
// standard-library documentation of the target platform), which is always
// present and independent of the open sets.
type Registry struct {
	platformURL string
	external    map[string]string
	source      map[string]string
}

// New creates a Registry with the given runtime-platform documentation URL.
func New(platformURL string) *Registry {
	return &Registry{
		platformURL: platformURL,
		external:    make(map[string]string),
		source:      make(map[string]string),
	}
}

// PlatformURL returns the fixed runtime-platform documentation base URL.
func (r *Registry) PlatformURL() string {
	return r.platformURL
}

// Register adds or overwrites an entry in the given set. Last write wins on
// duplicate names.
func (r *Registry) Register(kind Kind, libraryName, docBaseURL string) {
	r.set(kind)[libraryName] = docBaseURL
}

// RegisterAll registers every entry of the given map. Order between the map's
// own keys is irrelevant since names are unique within a set.
func (r *Registry) RegisterAll(kind Kind, mappings map[string]string) {
	for name, url := range mappings {
		r.Register(kind, name, url)
	}
}

// Resolve returns the mapped URL for a library name, if present. Unknown
// names are not an error.
func (r *Registry) Resolve(kind Kind, libraryName string) (string, bool) {
	url, ok := r.set(kind)[libraryName]
	return url, ok
}

// Entries returns a copy of the requested mapping set.
func (r *Registry) Entries(kind Kind) map[string]string {
	src := r.set(kind)
	out := make(map[string]string, len(src))
	for name, url := range src {
		out[name] = url
	}
	return out
}

// BaseURLs returns every base URL the registry knows about: the platform URL
// plus all external and source entries. Duplicates are collapsed.
func (r *Registry) BaseURLs() []string {
	seen := make(map[string]struct{})
	urls := make([]string, 0, 1+len(r.external)+len(r.source))
	add := func(u string) {
		if u == "" {
			return
		}
		if _, dup := seen[u]; dup {
			return
		}
		seen[u] = struct{}{}
		urls = append(urls, u)
	}
	add(r.platformURL)
	for _, u := range r.external {
		add(u)
	}
	for _, u := range r.source {
		add(u)
	}
	return urls
}

func (r *Registry) set(kind Kind) map[string]string {
	if kind == Source {
		return r.source
	}
	return r.external
}
