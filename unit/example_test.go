// SPDX-License-Identifier: MIT

package unit_test

import (
	"fmt"

	"github.com/katalvlaran/mes/boolean"
	"github.com/katalvlaran/mes/mapping"
	"github.com/katalvlaran/mes/unit"
)

// ExampleTerminal pushes a coin onto the unit space: only the total survives.
func ExampleTerminal() {
	coin := boolean.Measure[float64]{True: 3, False: 1}
	term := unit.Terminal[boolean.Subset]{Domain: boolean.Space{}}
	pushed := mapping.Push[boolean.Subset, unit.Subset, float64, boolean.Prob[float64]](term, coin)

	fmt.Println(pushed.Measure(unit.Space{}.Full()))
	fmt.Println(pushed.Measure(unit.Space{}.Empty()))
	// Output:
	// 4
	// 0
}
