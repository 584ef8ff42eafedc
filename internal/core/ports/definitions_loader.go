package ports

import "github.com/contribulate/dagster/internal/core/domain"

// DefinitionsLoader loads the declared asset graph from configuration.
//
//go:generate mockgen -source=definitions_loader.go -destination=mocks/mock_definitions_loader.go -package=mocks
type DefinitionsLoader interface {
	// Load reads the definitions file at path (or discovers one from the
	// working directory when path is empty) and returns a validated graph.
	Load(path string) (*domain.AssetGraph, error)

	// Discover walks up from cwd to find the definitions file.
	Discover(cwd string) (string, error)
}
