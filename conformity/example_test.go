package conformity_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/conformity/builder"
	"github.com/katalvlaran/conformity/conformity"
	"github.com/katalvlaran/conformity/view"
)

// ExampleCompute scores a five-node path whose ends agree with each other
// but not with the middle.
func ExampleCompute() {
	g, err := builder.BuildGraph(nil, nil,
		builder.Path(5),
		builder.AssignCycle("side", "left", "left", "right", "left", "left"),
		builder.AssignConst("team", "blue"),
	)
	if err != nil {
		fmt.Println(err)
		return
	}

	res, err := conformity.Compute(context.Background(), view.NewCore(g), conformity.Config{
		Alphas:      []float64{1},
		Labels:      []string{"side", "team"},
		ProfileSize: 1,
	})
	if err != nil {
		fmt.Println(err)
		return
	}

	for _, pk := range res.ProfileKeys() {
		for _, n := range res.Nodes() {
			v, _ := res.Score("1.0", pk, n)
			fmt.Printf("%s %s %.3f\n", pk, n, v)
		}
	}
	// Output:
	// side 0 0.520
	// side 1 0.455
	// side 2 -1.000
	// side 3 0.455
	// side 4 0.520
	// team 0 1.000
	// team 1 1.000
	// team 2 1.000
	// team 3 1.000
	// team 4 1.000
}

// ExampleValueFrequencies reports how balanced the karate club split is.
func ExampleValueFrequencies() {
	g, err := builder.BuildGraph(nil, nil, builder.KarateClub())
	if err != nil {
		fmt.Println(err)
		return
	}
	freq, err := conformity.ValueFrequencies(view.NewCore(g), []string{builder.ClubLabel})
	if err != nil {
		fmt.Println(err)
		return
	}
	club := freq[builder.ClubLabel]
	fmt.Printf("%s=%.2f %s=%.2f\n", builder.ClubMrHi, club[builder.ClubMrHi], builder.ClubOfficer, club[builder.ClubOfficer])
	// Output:
	// Mr. Hi=0.50 Officer=0.50
}
