package preview

import (
	"math/rand"
	"sort"
	"strconv"
)

// sortRecords orders a collection's records per the sort spec and
// returns a new slice; the input is never mutated. Random order draws
// from rng and is intentionally unstable across renders.
func sortRecords(records []Record, spec SortSpec, rng *rand.Rand) []Record {
	out := make([]Record, len(records))
	copy(out, records)

	switch spec.Mode {
	case SortManual:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].ManualOrder < out[j].ManualOrder
		})
	case SortRandom:
		if rng != nil {
			rng.Shuffle(len(out), func(i, j int) {
				out[i], out[j] = out[j], out[i]
			})
		}
	case SortField:
		sort.SliceStable(out, func(i, j int) bool {
			return fieldLess(out[i].Values[spec.FieldID], out[j].Values[spec.FieldID])
		})
		if spec.Direction == "desc" {
			reverseRecords(out)
		}
	}
	return out
}

// fieldLess compares two field values numerically when both parse as
// numbers, lexicographically otherwise.
func fieldLess(a, b string) bool {
	fa, errA := strconv.ParseFloat(a, 64)
	fb, errB := strconv.ParseFloat(b, 64)
	if errA == nil && errB == nil {
		return fa < fb
	}
	return a < b
}

func reverseRecords(records []Record) {
	for i, j := 0, len(records)-1; i < j; i, j = i+1, j-1 {
		records[i], records[j] = records[j], records[i]
	}
}
