package result

import (
	"sort"

	"github.com/gridops/recovery-optimizer/model"
)

func sortedKeys(m map[string]model.Transformer) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func sortedKeysOperatingUnits(in model.Input) []string {
	out := make([]string, 0, len(in.OperatingUnits))
	for k := range in.OperatingUnits {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
