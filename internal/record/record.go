package record

import "fmt"

// ID is the integer identifier of a record inside its collection.
type ID int

// Kind names one of the three record collections.
type Kind int

const (
	KindDebate Kind = iota
	KindPosition
	KindArgument
)

// String implements fmt.Stringer. The values match the "type" attribute used
// by Hypernomicon's XML files.
func (k Kind) String() string {
	switch k {
	case KindDebate:
		return "debate"
	case KindPosition:
		return "position"
	case KindArgument:
		return "argument"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// ParseKind maps a Hypernomicon record type onto a Kind. The second return
// value is false for record types the extractor does not use.
func ParseKind(s string) (Kind, bool) {
	switch s {
	case "debate":
		return KindDebate, true
	case "position":
		return KindPosition, true
	case "argument":
		return KindArgument, true
	}
	return 0, false
}

// Text is an optional sub-element value. Valid is false when the element was
// absent from the record, which is different from an empty element.
type Text struct {
	Value string
	Valid bool
}

// NewText returns a present Text holding s.
func NewText(s string) Text {
	return Text{Value: s, Valid: true}
}

// Debate is a record of the debate collection.
type Debate struct {
	ID            ID
	Name          Text
	LargerDebates []ID
}

// Position is a record of the position collection.
type Position struct {
	ID              ID
	Name            Text
	Debates         []ID
	LargerPositions []ID
}

// PositionRef is an argument's reference to the position it argues about,
// together with the verdict the argument reaches on it.
type PositionRef struct {
	Position ID
	// Verdict is the raw verdict_id attribute. Zero when HasVerdict is false.
	Verdict    int
	HasVerdict bool
}

// Argument is a record of the argument collection.
type Argument struct {
	ID               ID
	Name             Text
	Positions        []PositionRef
	Counterarguments []ID
}
