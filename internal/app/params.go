package app

import (
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"curated-packages/internal/shared"
	"curated-packages/internal/types"
)

// ParseSortSpecs converts "field" / "field:direction" strings into
// typed sort criteria. Field and direction names are validated again by
// the planner; parsing only rejects structurally broken specs.
func ParseSortSpecs(specs []string) ([]types.SortCriterion, error) {
	var out []types.SortCriterion
	for _, spec := range specs {
		spec = strings.TrimSpace(spec)
		if spec == "" {
			continue
		}
		parts := strings.SplitN(spec, ":", 2)
		criterion := types.SortCriterion{
			Field:     types.QueryField(strings.TrimSpace(parts[0])),
			Direction: types.SortAscending,
		}
		if len(parts) == 2 {
			criterion.Direction = types.SortDirection(strings.ToLower(strings.TrimSpace(parts[1])))
		}
		out = append(out, criterion)
	}
	return out, nil
}

// ParseFilterSpecs converts "field:operator:value" strings into typed
// filter criteria. The value of an "in" filter is split on commas into
// the membership set.
func ParseFilterSpecs(specs []string) ([]types.FilterCriterion, error) {
	var out []types.FilterCriterion
	for _, spec := range specs {
		spec = strings.TrimSpace(spec)
		if spec == "" {
			continue
		}
		parts := strings.SplitN(spec, ":", 3)
		if len(parts) != 3 {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("invalid query: filter spec %q must be field:operator:value", spec))
		}
		criterion := types.FilterCriterion{
			Field:    types.QueryField(strings.TrimSpace(parts[0])),
			Operator: types.FilterOperator(strings.ToLower(strings.TrimSpace(parts[1]))),
		}
		value := strings.TrimSpace(parts[2])
		if criterion.Operator == types.FilterOpIn {
			criterion.Values = shared.SplitSet(value)
		} else {
			criterion.Value = value
		}
		out = append(out, criterion)
	}
	return out, nil
}
