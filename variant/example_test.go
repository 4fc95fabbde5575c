// SPDX-License-Identifier: MIT

package variant_test

import (
	"fmt"

	"github.com/katalvlaran/mes/boolean"
	"github.com/katalvlaran/mes/unit"
	"github.com/katalvlaran/mes/variant"
)

// ExampleMeasure_Normalize weighs an optional coin flip: either nothing
// happened (weight 1) or a biased coin was flipped (weight 3).
func ExampleMeasure_Normalize() {
	m := variant.Of(
		variant.Lift[unit.Measure[float64], unit.Subset, float64, unit.Prob[float64]](
			unit.Measure[float64]{Weight: 1}, unit.Subset{Full: true}),
		variant.Lift[boolean.Measure[float64], boolean.Subset, float64, boolean.Prob[float64]](
			boolean.Measure[float64]{True: 2, False: 1}, boolean.Both),
	)
	p, _ := m.Normalize()
	flip, _ := variant.ProbBase[boolean.Prob[float64]](p.Sub[1])

	fmt.Println(p.Top, p.At(1))
	fmt.Printf("%.3f\n", flip.True)
	// Output:
	// [0.25] 0.75
	// 0.667
}
