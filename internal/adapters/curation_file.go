package adapters

import (
	"os"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"curated-packages/internal/types"
)

// CurationFileAdapter loads an ordered curation layer from a YAML file.
// The file holds a plain list of package curations; list order is the
// application order.
type CurationFileAdapter struct{}

func NewCurationFileAdapter() CurationFileAdapter {
	return CurationFileAdapter{}
}

func (a CurationFileAdapter) LoadCurations(path string) ([]types.PackageCuration, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("curation file not found").
			WithCause(err)
	}
	var curations []types.PackageCuration
	if err := yaml.Unmarshal(data, &curations); err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse curation yaml").
			WithCause(err)
	}
	return curations, nil
}
