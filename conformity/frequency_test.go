package conformity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/conformity/builder"
	"github.com/katalvlaran/conformity/conformity"
	"github.com/katalvlaran/conformity/core"
	"github.com/katalvlaran/conformity/view"
)

func TestValueFrequencies(t *testing.T) {
	freq, err := conformity.ValueFrequencies(view.NewCore(karate(t)), []string{builder.ClubLabel, "pippo"})
	require.NoError(t, err)

	assert.Equal(t, map[string]float64{builder.ClubMrHi: 0.5, builder.ClubOfficer: 0.5}, freq[builder.ClubLabel])
	assert.Equal(t, map[string]float64{"si": 1}, freq["pippo"])
}

func TestValueFrequencies_Errors(t *testing.T) {
	_, err := conformity.ValueFrequencies(nil, []string{"x"})
	assert.ErrorIs(t, err, conformity.ErrNilGraph)

	_, err = conformity.ValueFrequencies(view.NewCore(core.NewGraph()), []string{"x"})
	assert.ErrorIs(t, err, conformity.ErrEmptyGraph)

	g := graphOf(t, [][2]string{{"a", "b"}}, map[string]core.Attributes{"a": {"x": "1"}, "b": {}})
	_, err = conformity.ValueFrequencies(g, []string{"x"})
	assert.ErrorIs(t, err, conformity.ErrMissingAttribute)
	var mae *conformity.MissingAttributeError
	require.ErrorAs(t, err, &mae)
	assert.Equal(t, "b", mae.Vertex)
}
