// SPDX-License-Identifier: MIT

package product_test

import (
	"fmt"

	"github.com/katalvlaran/mes/boolean"
	"github.com/katalvlaran/mes/product"
)

// ExampleMeasure weighs the event "first coin is heads" under two
// independent coins.
func ExampleMeasure() {
	sp := product.NewPoint[bool, bool, boolean.Subset, boolean.Subset](boolean.Space{}, boolean.Space{})
	m := product.Measure[boolean.Subset, boolean.Subset, float64,
		boolean.Prob[float64], boolean.Prob[float64],
		boolean.Measure[float64], boolean.Measure[float64]]{
		Left:  boolean.Measure[float64]{True: 3, False: 1},
		Right: boolean.Measure[float64]{True: 1, False: 1},
	}
	heads := product.Left[boolean.Subset, boolean.Subset]{Right: boolean.Space{}}.Preimage(boolean.OnlyTrue)

	p, _ := m.Normalize()
	fmt.Println(m.Measure(heads), m.Measure(sp.Full()), p.AsMeasure().Measure(heads))
	// Output: 6 8 0.75
}
