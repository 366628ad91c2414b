package app

import (
	"time"

	"curated-packages/internal/adapters"
	"curated-packages/internal/ports"
)

// Service wires the engine to its data-supply collaborators. The
// engine logic itself is pure; the service owns only the fetch step
// and the translation between request structs and engine parameters.
type Service struct {
	Store     ports.PackageStorePort
	Curations ports.CurationSourcePort
	Clock     func() time.Time
}

func NewService(store ports.PackageStorePort) Service {
	return Service{
		Store:     store,
		Curations: adapters.NewCurationFileAdapter(),
		Clock:     time.Now,
	}
}
