package record

// Store is the read-only view of a record database the core consumes. The
// slices are returned in the order the records were read and must not be
// modified by callers.
type Store interface {
	Debates() []Debate
	Positions() []Position
	Arguments() []Argument
}

// Snapshot is an in-memory Store. The zero value is an empty store.
type Snapshot struct {
	debates   []Debate
	positions []Position
	arguments []Argument
}

// NewSnapshot returns an empty Snapshot.
func NewSnapshot() *Snapshot {
	return &Snapshot{}
}

// AddDebate appends a debate record.
func (s *Snapshot) AddDebate(d Debate) *Snapshot {
	s.debates = append(s.debates, d)
	return s
}

// AddPosition appends a position record.
func (s *Snapshot) AddPosition(p Position) *Snapshot {
	s.positions = append(s.positions, p)
	return s
}

// AddArgument appends an argument record.
func (s *Snapshot) AddArgument(a Argument) *Snapshot {
	s.arguments = append(s.arguments, a)
	return s
}

func (s *Snapshot) Debates() []Debate     { return s.debates }
func (s *Snapshot) Positions() []Position { return s.positions }
func (s *Snapshot) Arguments() []Argument { return s.arguments }

// Len returns the number of records in each collection.
func (s *Snapshot) Len() (debates, positions, arguments int) {
	return len(s.debates), len(s.positions), len(s.arguments)
}

// HasDebate reports whether a debate with the given id exists in st.
func HasDebate(st Store, id ID) bool {
	for _, d := range st.Debates() {
		if d.ID == id {
			return true
		}
	}
	return false
}
