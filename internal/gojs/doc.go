// Package gojs defines the graph description exchanged with the GoJS diagram
// editor: a GraphLinksModel with a node array and a link array. The same JSON
// document is both the extractor's output and, on the next run, the source of
// the layout that the user arranged by hand.
package gojs
