package montecarlo_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/whatif/dist"
	"github.com/katalvlaran/whatif/model"
	"github.com/katalvlaran/whatif/montecarlo"
	"github.com/katalvlaran/whatif/stats"
)

// Order margin: Profit = (Price-Cost)*Demand.
type orderMargin struct {
	Price  float64
	Cost   float64
	Demand float64
}

func (o *orderMargin) Profit() float64 { return (o.Price - o.Cost) * o.Demand }

// ExampleSimulate runs a seeded simulation over uncertain demand and
// summarizes profit. The seed pins the draws, so the structural facts
// below are stable; exact quantiles depend on the stream and are printed
// only as a bounds check.
func ExampleSimulate() {
	m, err := model.FromStruct(&orderMargin{Price: 10, Cost: 6, Demand: 100})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	demand, err := dist.NewTriangular(50, 100, 150)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	results, err := montecarlo.Simulate(context.Background(), m,
		map[string]dist.Dist{"Demand": demand},
		[]string{"Profit"},
		&montecarlo.Options{Replications: 2000, Seed: 42, Workers: 4})
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	profit := results[0].Outputs["Profit"]
	s, err := stats.Describe(profit)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	fmt.Printf("replications=%d\n", s.N)
	fmt.Printf("profit within [200,600]: %t\n", s.Min >= 200 && s.Max <= 600)
	fmt.Printf("mean near 400: %t\n", s.Mean > 380 && s.Mean < 420)
	// Output:
	// replications=2000
	// profit within [200,600]: true
	// mean near 400: true
}
