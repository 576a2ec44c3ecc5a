package conformity_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/conformity/builder"
	"github.com/katalvlaran/conformity/conformity"
	"github.com/katalvlaran/conformity/view"
)

// BenchmarkCompute_Karate scores the karate club over 15 alphas and all
// seven profiles of three labels.
func BenchmarkCompute_Karate(b *testing.B) {
	g := view.NewCore(karate(b))
	cfg := conformity.Config{
		Alphas:      arange(1, 4, 0.2),
		Labels:      []string{builder.ClubLabel, "pippo", "topolino"},
		ProfileSize: 3,
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := conformity.Compute(context.Background(), g, cfg); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkCompute_Grid runs one alpha over a 30x30 grid with random labels.
func BenchmarkCompute_Grid(b *testing.B) {
	kg, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(7)},
		builder.Grid(30, 30),
		builder.AssignRandom("a", "x", "y"),
		builder.AssignRandom("b", "p", "q", "r"),
	)
	if err != nil {
		b.Fatal(err)
	}
	g := view.NewCore(kg)
	cfg := conformity.Config{Alphas: []float64{2}, Labels: []string{"a", "b"}, ProfileSize: 2}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := conformity.Compute(context.Background(), g, cfg); err != nil {
			b.Fatal(err)
		}
	}
}
