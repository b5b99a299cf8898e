package gmocoin

import (
	"strings"

	"github.com/daaquan/gmocoin-connector/pkg/schema"
)

// CatalogResolver routes logical paths through the endpoint catalog.
// Paths missing from the catalog are treated as public.
type CatalogResolver struct{}

func (CatalogResolver) Resolve(path string) schema.Endpoint {
	vis, ok := Lookup(path)
	if !ok {
		vis = schema.PUBLIC
	}
	return schema.Endpoint{
		Path:        vis.Prefix() + path,
		LogicalPath: path,
		Visibility:  vis,
	}
}

// PrefixResolver accepts paths that already carry a /public or /private
// prefix, taking visibility from the prefix. Unprefixed paths fall back to
// CatalogResolver.
type PrefixResolver struct{}

func (PrefixResolver) Resolve(path string) schema.Endpoint {
	for _, vis := range []schema.Visibility{schema.PRIVATE, schema.PUBLIC} {
		prefix := vis.Prefix()
		if rest, ok := strings.CutPrefix(path, prefix); ok && strings.HasPrefix(rest, "/") {
			return schema.Endpoint{Path: path, LogicalPath: rest, Visibility: vis}
		}
	}
	return CatalogResolver{}.Resolve(path)
}
