package gojs

import "github.com/vk/hypergraph/internal/nodeid"

// GraphLinksModel is the model class written into every description.
const GraphLinksModel = "GraphLinksModel"

// Link colours.
const (
	ColorGreen = "green"
	ColorRed   = "red"
)

// Model is a GoJS graph description.
type Model struct {
	Class    string `json:"class"`
	Nodes    []Node `json:"nodeDataArray"`
	Links    []Link `json:"linkDataArray"`
	Filename string `json:"filename,omitempty"`
}

// Node is one entry of nodeDataArray. Loc and Size are owned by the editor
// and are only ever copied from a previously saved model.
type Node struct {
	Key    nodeid.Key `json:"key"`
	Text   string     `json:"text"`
	Figure string     `json:"figure,omitempty"`
	Loc    string     `json:"loc,omitempty"`
	Size   string     `json:"size,omitempty"`
}

// Link is one entry of linkDataArray. Points holds the editor's routing as
// the flat x0 y0 x1 y1 ... list GoJS saves.
type Link struct {
	From   nodeid.Key `json:"from"`
	To     nodeid.Key `json:"to"`
	Color  string     `json:"color,omitempty"`
	Points []float64  `json:"points,omitempty"`
}

// Pair identifies a link by its endpoints.
type Pair struct {
	From, To nodeid.Key
}

// Pair returns the endpoints of l.
func (l Link) Pair() Pair {
	return Pair{From: l.From, To: l.To}
}

// HasLayout reports whether the node carries editor placement.
func (n Node) HasLayout() bool {
	return n.Loc != "" || n.Size != ""
}

// New returns an empty model of class GraphLinksModel.
func New() *Model {
	return &Model{Class: GraphLinksModel, Nodes: []Node{}, Links: []Link{}}
}

// Clone returns a deep copy of m.
func (m *Model) Clone() *Model {
	if m == nil {
		return nil
	}
	out := *m
	out.Nodes = append([]Node(nil), m.Nodes...)
	out.Links = make([]Link, len(m.Links))
	for i, l := range m.Links {
		if l.Points != nil {
			l.Points = append([]float64(nil), l.Points...)
		}
		out.Links[i] = l
	}
	if out.Nodes == nil {
		out.Nodes = []Node{}
	}
	return &out
}
