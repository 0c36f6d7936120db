package calculator

import (
	"networth/internal/domain"
)

type AllocationDataKey string

const (
	// capital-weighted view
	AllocationDataKey_Equity AllocationDataKey = "equity"
	// exposure-weighted view
	AllocationDataKey_NotionalValue AllocationDataKey = "notional_value"
)

func (k AllocationDataKey) IsValid() bool {
	return k == AllocationDataKey_Equity || k == AllocationDataKey_NotionalValue
}

type AllocationGroupingMode string

const (
	AllocationGroupingMode_Type  AllocationGroupingMode = "type"
	AllocationGroupingMode_Asset AllocationGroupingMode = "asset"
)

func (g AllocationGroupingMode) IsValid() bool {
	return g == AllocationGroupingMode_Type || g == AllocationGroupingMode_Asset
}

type AllocationSlice struct {
	Name       string  `json:"name"`
	Value      float64 `json:"value"`
	Percentage float64 `json:"percentage"`
}

// GroupAllocation buckets valued positions by type or by asset label
// and sums the selected value per bucket. Buckets whose sum is <= 0
// are dropped - a negative or zero exposure is not chartable as an
// allocation slice. Percentages are shares of the caller-supplied
// total; a zero total yields 0, not an error.
func GroupAllocation(details []domain.ValuedPosition, dataKey AllocationDataKey, groupingMode AllocationGroupingMode, total float64) []AllocationSlice {
	sums := map[string]float64{}
	order := []string{}

	for _, detail := range details {
		key := string(detail.Type)
		if groupingMode == AllocationGroupingMode_Asset {
			key = detail.DisplayLabel()
		}
		if _, ok := sums[key]; !ok {
			order = append(order, key)
		}
		sums[key] += allocationValue(detail, dataKey)
	}

	out := []AllocationSlice{}
	for _, key := range order {
		value := sums[key]
		if value <= 0 {
			continue
		}
		percentage := 0.0
		if total != 0 {
			percentage = value / total * 100
		}
		out = append(out, AllocationSlice{
			Name:       key,
			Value:      value,
			Percentage: percentage,
		})
	}

	return out
}

func allocationValue(detail domain.ValuedPosition, dataKey AllocationDataKey) float64 {
	var v *float64
	switch dataKey {
	case AllocationDataKey_NotionalValue:
		v = detail.NotionalValue
	default:
		v = detail.Equity
	}
	if v == nil {
		return 0
	}
	return *v
}
