package core

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"curated-packages/internal/types"
)

// fieldComparator orders two merged package views by one query field.
type fieldComparator func(a, b types.PackageRunData) int

// fieldMatcher evaluates one filter criterion against a merged package
// view.
type fieldMatcher func(data types.PackageRunData, filter types.FilterCriterion) bool

// comparators and matchers enumerate the sortable/filterable fields.
// Dispatch through these tables means an unknown field fails query
// validation upfront instead of surfacing during execution.
var comparators = map[types.QueryField]fieldComparator{
	types.QueryFieldIdentifier: func(a, b types.PackageRunData) int {
		return a.Pkg.ID.Compare(b.Pkg.ID)
	},
	types.QueryFieldPurl: func(a, b types.PackageRunData) int {
		return strings.Compare(a.Pkg.ID.Purl(), b.Pkg.ID.Purl())
	},
	types.QueryFieldProcessedLicense: func(a, b types.PackageRunData) int {
		return strings.Compare(a.Pkg.DeclaredProcessed.SPDXExpression, b.Pkg.DeclaredProcessed.SPDXExpression)
	},
}

var matchers = map[types.QueryField]fieldMatcher{
	types.QueryFieldIdentifier:       matchIdentifier,
	types.QueryFieldPurl:             matchPurl,
	types.QueryFieldProcessedLicense: matchProcessedLicense,
}

// AssembleRunData builds the merged, path-annotated collection the
// planner and aggregators operate on. Each run's curation layer is
// folded into that run's packages and each run's shortest paths attach
// to that run's occurrences. When the same identifier was analyzed in
// several of the requested runs, the occurrence from the lowest run id
// becomes the single representative entry; the result is sorted by
// identifier.
func AssembleRunData(packages []types.RunPackage, paths []types.RunDependencyPath, curations map[int64][]types.PackageCuration) []types.PackageRunData {
	pathsByRun := map[int64][]types.ShortestDependencyPath{}
	for _, path := range paths {
		pathsByRun[path.RunID] = append(pathsByRun[path.RunID], path.Path)
	}
	indexByRun := make(map[int64]map[types.Identifier][]types.ShortestDependencyPath, len(pathsByRun))
	for runID, runPaths := range pathsByRun {
		indexByRun[runID] = IndexShortestPaths(runPaths)
	}

	representatives := map[types.Identifier]types.PackageRunData{}
	for _, runPkg := range packages {
		existing, seen := representatives[runPkg.Pkg.ID]
		if seen && existing.RunID <= runPkg.RunID {
			continue
		}
		curated := ApplyCurations(runPkg.Pkg, curations[runPkg.RunID])
		merged := types.PackageRunData{
			RunID:            runPkg.RunID,
			PackageKey:       runPkg.Key,
			Pkg:              curated.Pkg,
			ConcludedLicense: curated.ConcludedLicense,
			AppliedCurations: curated.AppliedCurations,
		}
		if index, ok := indexByRun[runPkg.RunID]; ok {
			merged.ShortestPaths = index[runPkg.Pkg.ID]
		}
		representatives[runPkg.Pkg.ID] = merged
	}

	out := make([]types.PackageRunData, 0, len(representatives))
	for _, merged := range representatives {
		out = append(out, merged)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Pkg.ID.Compare(out[j].Pkg.ID) < 0
	})
	return out
}

// ListPackages filters, sorts and paginates the assembled collection.
// TotalCount reflects the filtered set before limit/offset; a nil
// limit returns everything from the offset onward.
func ListPackages(ctx context.Context, data []types.PackageRunData, params types.ListParameters) (types.ListResult, error) {
	if err := validateParameters(params); err != nil {
		return types.ListResult{}, err
	}

	filtered := make([]types.PackageRunData, 0, len(data))
	for _, entry := range data {
		if matchesAll(entry, params.Filters) {
			filtered = append(filtered, entry)
		}
	}

	sortRunData(filtered, params.Sort)

	total := len(filtered)
	page := paginate(filtered, params.Limit, params.Offset)
	log.Ctx(ctx).Debug().
		Int("total", total).
		Int("page", len(page)).
		Msg("package listing evaluated")
	return types.ListResult{Items: page, TotalCount: total}, nil
}

func validateParameters(params types.ListParameters) error {
	for _, criterion := range params.Sort {
		if _, ok := comparators[criterion.Field]; !ok {
			return invalidQuery(fmt.Sprintf("unsupported sort field %q", string(criterion.Field)))
		}
		switch criterion.Direction {
		case types.SortAscending, types.SortDescending:
		default:
			return invalidQuery(fmt.Sprintf("unsupported sort direction %q", string(criterion.Direction)))
		}
	}
	for _, filter := range params.Filters {
		if _, ok := matchers[filter.Field]; !ok {
			return invalidQuery(fmt.Sprintf("unsupported filter field %q", string(filter.Field)))
		}
		switch filter.Operator {
		case types.FilterOpILike, types.FilterOpIn:
		default:
			return invalidQuery(fmt.Sprintf("unsupported filter operator %q", string(filter.Operator)))
		}
	}
	if params.Offset < 0 {
		return invalidQuery("offset must not be negative")
	}
	return nil
}

func invalidQuery(detail string) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg("invalid query: " + detail)
}

func matchesAll(data types.PackageRunData, filters []types.FilterCriterion) bool {
	for _, filter := range filters {
		if !matchers[filter.Field](data, filter) {
			return false
		}
	}
	return true
}

// sortRunData applies the sort keys in order, falling back to the
// identifier so that ties keep a stable, deterministic order.
func sortRunData(data []types.PackageRunData, criteria []types.SortCriterion) {
	sort.SliceStable(data, func(i, j int) bool {
		for _, criterion := range criteria {
			result := comparators[criterion.Field](data[i], data[j])
			if criterion.Direction == types.SortDescending {
				result = -result
			}
			if result != 0 {
				return result < 0
			}
		}
		return data[i].Pkg.ID.Compare(data[j].Pkg.ID) < 0
	})
}

func paginate(data []types.PackageRunData, limit *int, offset int) []types.PackageRunData {
	if offset >= len(data) {
		return nil
	}
	page := data[offset:]
	if limit != nil && *limit >= 0 && *limit < len(page) {
		page = page[:*limit]
	}
	return page
}

// identifierForms returns the identifier string plus, for namespaced
// identifiers, the form with the namespace segment removed. Filter
// matching tolerates an absent namespace on either side by comparing
// against both forms.
func identifierForms(id types.Identifier) []string {
	full := id.String()
	if id.Namespace == "" {
		return []string{full}
	}
	stripped := types.Identifier{Type: id.Type, Name: id.Name, Version: id.Version}
	return []string{full, stripped.String()}
}

// normalizeIdentifierValue collapses an explicitly empty namespace
// segment ("type::name@version") so it compares equal to the omitted
// form.
func normalizeIdentifierValue(value string) string {
	return strings.ReplaceAll(value, "::", ":")
}

func matchIdentifier(data types.PackageRunData, filter types.FilterCriterion) bool {
	forms := identifierForms(data.Pkg.ID)
	switch filter.Operator {
	case types.FilterOpIn:
		for _, value := range filter.Values {
			value = normalizeIdentifierValue(value)
			for _, form := range forms {
				if form == value {
					return true
				}
			}
		}
		return false
	default:
		value := strings.ToLower(normalizeIdentifierValue(filter.Value))
		for _, form := range forms {
			if strings.Contains(strings.ToLower(form), value) {
				return true
			}
		}
		return false
	}
}

func matchPurl(data types.PackageRunData, filter types.FilterCriterion) bool {
	purl := data.Pkg.ID.Purl()
	switch filter.Operator {
	case types.FilterOpIn:
		for _, value := range filter.Values {
			if strings.EqualFold(purl, value) {
				return true
			}
		}
		return false
	default:
		return strings.Contains(strings.ToLower(purl), strings.ToLower(filter.Value))
	}
}

func matchProcessedLicense(data types.PackageRunData, filter types.FilterCriterion) bool {
	expression := data.Pkg.DeclaredProcessed.SPDXExpression
	switch filter.Operator {
	case types.FilterOpIn:
		for _, value := range filter.Values {
			if expression == value {
				return true
			}
		}
		return false
	default:
		return strings.Contains(strings.ToLower(expression), strings.ToLower(filter.Value))
	}
}
