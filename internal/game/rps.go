package game

// Resolve decides move a against move b. Each move beats the N/2 moves that
// precede it around the circle and loses to the N/2 moves that follow it.
func Resolve(moves *MoveSet, a, b string) (Outcome, error) {
	posA, err := moves.Position(a)
	if err != nil {
		return "", err
	}
	posB, err := moves.Position(b)
	if err != nil {
		return "", err
	}
	return ResolvePositions(moves.Len(), posA, posB), nil
}

// ResolvePositions is Resolve over raw positions in a circle of n moves.
// n must be odd and both positions must lie in [0, n).
func ResolvePositions(n, posA, posB int) Outcome {
	if posA == posB {
		return OutcomeDraw
	}

	// backward distance from a to b
	delta := ((posA-posB)%n + n) % n
	if delta <= n/2 {
		return OutcomeWin
	}
	return OutcomeLose
}
