package filter

import (
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

// numbers are kept as written so that "1.50" is not turned into 1.5
var jsoniterForFilter = jsoniter.Config{
	EscapeHTML:             true,
	SortMapKeys:            true,
	ValidateJsonRawMessage: true,
	UseNumber:              true,
}.Froze()

// ToMap decodes a JSON filter document into a pruned map.
func ToMap(data []byte) (map[string]any, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var filterMap map[string]any
	if err := jsoniterForFilter.Unmarshal(data, &filterMap); err != nil {
		return nil, errors.Wrap(err, "unmarshal filter to map")
	}
	PruneMap(filterMap)
	return filterMap, nil
}

// PruneMap recursively removes nil values, empty slices, and empty nested maps.
func PruneMap(m map[string]any) {
	for k, v := range m {
		if v == nil {
			delete(m, k)
			continue
		}

		if nestedMap, ok := v.(map[string]any); ok {
			PruneMap(nestedMap)
			if len(nestedMap) == 0 {
				delete(m, k)
			}
			continue
		}

		if slice, ok := v.([]any); ok {
			if len(slice) == 0 {
				delete(m, k)
				continue
			}
			for _, item := range slice {
				if nestedMap, ok := item.(map[string]any); ok {
					PruneMap(nestedMap)
				}
			}
		}
	}
}
