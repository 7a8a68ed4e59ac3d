package model

// Perft counts the leaf nodes of the legal move tree depth plies deep.
func (g *Game) Perft(depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := g.ListValidMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		child := g.Clone()
		child.DoMove(m)
		child.NextTurn()
		nodes += child.Perft(depth - 1)
	}
	return nodes
}

// Divide is Perft split by root move, keyed by long notation.
func (g *Game) Divide(depth int) map[string]uint64 {
	out := make(map[string]uint64)
	if depth <= 0 {
		return out
	}
	for _, m := range g.ListValidMoves() {
		child := g.Clone()
		child.DoMove(m)
		child.NextTurn()
		out[m.Notation()] = child.Perft(depth - 1)
	}
	return out
}
