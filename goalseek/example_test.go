package goalseek_test

import (
	"fmt"

	"github.com/katalvlaran/whatif/goalseek"
	"github.com/katalvlaran/whatif/model"
)

// Volume economics: Profit = (Price-Cost)*Units - Fixed.
type volumeModel struct {
	Price float64
	Cost  float64
	Units float64
	Fixed float64
}

func (v *volumeModel) Profit() float64 { return (v.Price-v.Cost)*v.Units - v.Fixed }

// ExampleSolve finds the break-even volume of a simple profit model.
func ExampleSolve() {
	m, err := model.FromStruct(&volumeModel{Price: 10, Cost: 6, Units: 100, Fixed: 300})
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	// Profit crosses zero at Units = Fixed/(Price-Cost) = 75;
	// the bisection lands on it exactly from the [50, 100] bracket.
	units, err := goalseek.Solve(m, "Profit", 0, "Units", 50, 100, nil)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("break-even units: %.0f\n", units)
	// Output:
	// break-even units: 75
}
