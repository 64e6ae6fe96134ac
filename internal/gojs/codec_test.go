package gojs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshal_Shape(t *testing.T) {
	m := New()
	m.Filename = "hyper2gojs.json"
	m.Nodes = append(m.Nodes, Node{Key: 5, Text: "X & <Y>", Figure: "RoundedRectangle"})
	m.Links = append(m.Links, Link{From: 5, To: 10001, Color: ColorGreen})

	data, err := Marshal(m)
	require.NoError(t, err)

	want := `{
    "class": "GraphLinksModel",
    "nodeDataArray": [
        {
            "key": 5,
            "text": "X & <Y>",
            "figure": "RoundedRectangle"
        }
    ],
    "linkDataArray": [
        {
            "from": 5,
            "to": 10001,
            "color": "green"
        }
    ],
    "filename": "hyper2gojs.json"
}
`
	assert.Equal(t, want, string(data))
}

func TestMarshal_EmptyArraysStayArrays(t *testing.T) {
	data, err := Marshal(New())
	require.NoError(t, err)
	assert.Contains(t, string(data), `"nodeDataArray": []`)
	assert.Contains(t, string(data), `"linkDataArray": []`)
}

func TestUnmarshal_EditorOutput(t *testing.T) {
	saved := `{ "class": "GraphLinksModel",
  "nodeDataArray": [
    {"key":5, "text":"X", "loc":"-120 40", "size":"80 30", "category":"extra"},
    {"key":10001, "text":"Z"}
  ],
  "linkDataArray": [
    {"from":5, "to":10001, "points":[0,0,10.5,20,30,40]}
  ]}`

	m, err := Unmarshal([]byte(saved))
	require.NoError(t, err)

	require.Len(t, m.Nodes, 2)
	assert.Equal(t, "-120 40", m.Nodes[0].Loc)
	assert.Equal(t, "80 30", m.Nodes[0].Size)
	assert.True(t, m.Nodes[0].HasLayout())
	assert.False(t, m.Nodes[1].HasLayout())
	require.Len(t, m.Links, 1)
	assert.Equal(t, []float64{0, 0, 10.5, 20, 30, 40}, m.Links[0].Points)
	assert.Equal(t, Pair{From: 5, To: 10001}, m.Links[0].Pair())
}

func TestUnmarshal_Rejects(t *testing.T) {
	for name, data := range map[string]string{
		"not json":        `<html>`,
		"truncated":       `{"class":"GraphLinksModel","nodeDataArray":[`,
		"wrong types":     `{"nodeDataArray":[{"key":"five"}]}`,
		"other model":     `{"class":"TreeModel","nodeDataArray":[]}`,
		"array top level": `[]`,
		"null":            `null`,
		"empty object":    `{}`,
		"missing links":   `{"class":"GraphLinksModel","nodeDataArray":[]}`,
		"null nodes":      `{"class":"GraphLinksModel","nodeDataArray":null,"linkDataArray":[]}`,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Unmarshal([]byte(data))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "malformed graph model")
		})
	}
}

func TestUnmarshal_EmptyArraysAreValid(t *testing.T) {
	m, err := Unmarshal([]byte(`{"class":"GraphLinksModel","nodeDataArray":[],"linkDataArray":[]}`))
	require.NoError(t, err)
	assert.Empty(t, m.Nodes)
	assert.Empty(t, m.Links)
}

func TestMarshal_NilArraysRoundTrip(t *testing.T) {
	data, err := Marshal(&Model{Class: GraphLinksModel})
	require.NoError(t, err)
	_, err = Unmarshal(data)
	require.NoError(t, err)
}

func TestClone_IsDeep(t *testing.T) {
	m := New()
	m.Nodes = append(m.Nodes, Node{Key: 1, Loc: "0 0"})
	m.Links = append(m.Links, Link{From: 1, To: 2, Points: []float64{1, 2}})

	c := m.Clone()
	c.Nodes[0].Loc = "9 9"
	c.Links[0].Points[0] = 99

	assert.Equal(t, "0 0", m.Nodes[0].Loc)
	assert.Equal(t, float64(1), m.Links[0].Points[0])
}
