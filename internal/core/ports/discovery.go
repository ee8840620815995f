package ports

// ModuleDiscoverer lists the modules found below a directory.
//
//go:generate go run go.uber.org/mock/mockgen -source=discovery.go -destination=mocks/mock_discovery.go -package=mocks
type ModuleDiscoverer interface {
	// Discover returns the module names of every file under root ending in ext,
	// relative to root, slash separated and without ext.
	Discover(root, ext string) ([]string, error)
}
