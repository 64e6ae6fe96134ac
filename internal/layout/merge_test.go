package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/hypergraph/internal/gojs"
	"github.com/vk/hypergraph/internal/nodeid"
)

func freshModel() *gojs.Model {
	m := gojs.New()
	m.Filename = "out.json"
	m.Nodes = []gojs.Node{
		{Key: 5, Text: "X", Figure: "RoundedRectangle"},
		{Key: 6, Text: "Y renamed", Figure: "RoundedRectangle"},
		{Key: 10001, Text: "Z", Figure: "Rectangle"},
	}
	m.Links = []gojs.Link{
		{From: 5, To: 6},
		{From: 6, To: 10001, Color: gojs.ColorGreen},
	}
	return m
}

func TestMerge_NoSavedModel(t *testing.T) {
	fresh := freshModel()

	merged, rep := Merge(fresh, nil)

	assert.Equal(t, fresh, merged)
	assert.NotSame(t, fresh, merged)
	assert.Equal(t, Report{NewNodes: 3}, rep)
}

func TestMerge_CopiesLayoutOnly(t *testing.T) {
	saved := gojs.New()
	saved.Nodes = []gojs.Node{
		{Key: 6, Text: "Y", Figure: "Ellipse", Loc: "100 200", Size: "80 40"},
		{Key: 5, Text: "X", Loc: "0 0"},
		{Key: 77, Text: "gone", Loc: "5 5"},
	}
	saved.Links = []gojs.Link{
		{From: 6, To: 10001, Color: gojs.ColorRed, Points: []float64{1, 2, 3, 4}},
		{From: 5, To: 6},
	}

	merged, rep := Merge(freshModel(), saved)

	assert.Equal(t, []gojs.Node{
		{Key: 5, Text: "X", Figure: "RoundedRectangle", Loc: "0 0"},
		{Key: 6, Text: "Y renamed", Figure: "RoundedRectangle", Loc: "100 200", Size: "80 40"},
		{Key: 10001, Text: "Z", Figure: "Rectangle"},
	}, merged.Nodes)
	assert.Equal(t, []gojs.Link{
		{From: 5, To: 6},
		{From: 6, To: 10001, Color: gojs.ColorGreen, Points: []float64{1, 2, 3, 4}},
	}, merged.Links)
	assert.Equal(t, Report{NodesPlaced: 2, LinksRouted: 1, NewNodes: 1, DroppedKeys: []nodeid.Key{77}}, rep)
}

func TestMerge_NeverInventsLayout(t *testing.T) {
	saved := gojs.New()
	saved.Nodes = []gojs.Node{{Key: 999, Loc: "1 1", Size: "2 2"}}
	saved.Links = []gojs.Link{{From: 1, To: 2, Points: []float64{0, 0}}}

	merged, _ := Merge(freshModel(), saved)

	for _, n := range merged.Nodes {
		assert.False(t, n.HasLayout(), "node %d gained layout", n.Key)
	}
	for _, l := range merged.Links {
		assert.Nil(t, l.Points)
	}
}

func TestMerge_DoesNotMutateInputs(t *testing.T) {
	fresh := freshModel()
	saved := gojs.New()
	saved.Nodes = []gojs.Node{{Key: 5, Loc: "3 4"}}
	saved.Links = []gojs.Link{{From: 5, To: 6, Points: []float64{7, 8}}}

	merged, _ := Merge(fresh, saved)
	merged.Links[0].Points[0] = 100

	assert.Equal(t, freshModel(), fresh)
	assert.Equal(t, []float64{7, 8}, saved.Links[0].Points)
}

func TestMerge_FirstDuplicateWins(t *testing.T) {
	saved := gojs.New()
	saved.Nodes = []gojs.Node{{Key: 5, Loc: "first"}, {Key: 5, Loc: "second"}}
	saved.Links = []gojs.Link{
		{From: 5, To: 6, Points: []float64{1, 1}},
		{From: 5, To: 6, Points: []float64{2, 2}},
		{From: 5, To: 6, Points: []float64{3, 3}},
	}

	merged, rep := Merge(freshModel(), saved)

	assert.Equal(t, "first", merged.Nodes[0].Loc)
	assert.Equal(t, []float64{1, 1}, merged.Links[0].Points)
	assert.Equal(t, []gojs.Pair{{From: 5, To: 6}}, rep.AmbiguousPairs)
}

func TestMerge_Idempotent(t *testing.T) {
	saved := gojs.New()
	saved.Nodes = []gojs.Node{{Key: 5, Loc: "10 10"}, {Key: 10001, Size: "30 30"}}
	saved.Links = []gojs.Link{{From: 5, To: 6, Points: []float64{0, 1, 2, 3}}}

	once, _ := Merge(freshModel(), saved)
	onceBytes, err := gojs.Marshal(once)
	require.NoError(t, err)

	// Second run: same records, the previous output is now the saved model.
	reloaded, err := gojs.Unmarshal(onceBytes)
	require.NoError(t, err)
	twice, _ := Merge(freshModel(), reloaded)
	twiceBytes, err := gojs.Marshal(twice)
	require.NoError(t, err)

	assert.Equal(t, string(onceBytes), string(twiceBytes))
}
