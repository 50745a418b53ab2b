package game

// OutcomeMatrix holds the outcome of every ordered pair of moves.
// Cells[i][j] is the outcome of Moves[i] played against Moves[j].
type OutcomeMatrix struct {
	Moves []string    `json:"moves"`
	Cells [][]Outcome `json:"cells"`

	set *MoveSet
}

// BuildTable resolves every ordered pair of moves, diagonal included.
func BuildTable(moves *MoveSet) *OutcomeMatrix {
	n := moves.Len()
	cells := make([][]Outcome, n)
	for i := 0; i < n; i++ {
		row := make([]Outcome, n)
		for j := 0; j < n; j++ {
			row[j] = ResolvePositions(n, i, j)
		}
		cells[i] = row
	}

	return &OutcomeMatrix{
		Moves: moves.Names(),
		Cells: cells,
		set:   moves,
	}
}

// At returns the outcome of the move at row i against the move at column j.
func (t *OutcomeMatrix) At(i, j int) Outcome {
	return t.Cells[i][j]
}

// Get returns the outcome of a played against b.
func (t *OutcomeMatrix) Get(a, b string) (Outcome, error) {
	i, err := t.set.Position(a)
	if err != nil {
		return "", err
	}
	j, err := t.set.Position(b)
	if err != nil {
		return "", err
	}
	return t.Cells[i][j], nil
}

// Size returns N.
func (t *OutcomeMatrix) Size() int {
	return len(t.Moves)
}
