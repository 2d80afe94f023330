// Package reward implements the gamification calculations for disposal
// events. Everything here is pure and deterministic: no I/O, no clock.
package reward

// Calculator maps a detection count to points and a carbon-saved estimate.
// The per-item constants are configurable; zero values fall back to the
// defaults used by the original deployment.
type Calculator struct {
	pointsPerItem      int
	carbonPerItemGrams int
}

const (
	defaultPointsPerItem      = 10
	defaultCarbonPerItemGrams = 50
)

// NewCalculator builds a Calculator with the given per-item constants.
func NewCalculator(pointsPerItem, carbonPerItemGrams int) *Calculator {
	if pointsPerItem <= 0 {
		pointsPerItem = defaultPointsPerItem
	}
	if carbonPerItemGrams <= 0 {
		carbonPerItemGrams = defaultCarbonPerItemGrams
	}

	return &Calculator{
		pointsPerItem:      pointsPerItem,
		carbonPerItemGrams: carbonPerItemGrams,
	}
}

// Points returns the points awarded for itemCount detected items.
func (c *Calculator) Points(itemCount int) int {
	return itemCount * c.pointsPerItem
}

// CarbonSaved returns the estimated carbon savings in grams for itemCount items.
func (c *Calculator) CarbonSaved(itemCount int) int {
	return itemCount * c.carbonPerItemGrams
}

// DominantType returns the most frequent label in detection order. Ties are
// broken deterministically: the label that appears first among those sharing
// the maximum frequency wins. This affects which label is logged, so the
// tie-break must not change.
func DominantType(labels []string) string {
	if len(labels) == 0 {
		return ""
	}

	counts := make(map[string]int, len(labels))
	for _, label := range labels {
		counts[label]++
	}

	best := labels[0]
	for _, label := range labels {
		if counts[label] > counts[best] {
			best = label
		}
	}

	return best
}
