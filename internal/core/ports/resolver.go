package ports

// Resolver maps a module name to a loadable location.
//
//go:generate go run go.uber.org/mock/mockgen -source=resolver.go -destination=mocks/mock_resolver.go -package=mocks
type Resolver interface {
	// ToURL returns the path or URL the module name resolves to.
	ToURL(name string) string
}

// ResolverFactory builds a Resolver rooted at the given directory.
type ResolverFactory func(root string) Resolver
