package searcher

import "golang.org/x/exp/rand"

// node is owned by its parent's children slice. The parent pointer is only
// followed during backup.
type node[M any, P comparable] struct {
	state    State[M, P]
	parent   *node[M, P]
	move     M
	wins     map[P]int
	rollouts int
	children []*node[M, P]
	untried  []M
}

func newNode[M any, P comparable](state State[M, P], parent *node[M, P], move M) *node[M, P] {
	var untried []M
	// A finished game is never expanded.
	if !state.IsOver() {
		untried = state.LegalMoves()
	}
	return &node[M, P]{
		state:   state,
		parent:  parent,
		move:    move,
		wins:    make(map[P]int),
		untried: untried,
	}
}

func (n *node[M, P]) canAddChild() bool {
	return len(n.untried) > 0
}

func (n *node[M, P]) isTerminal() bool {
	return n.state.IsOver()
}

// addRandomChild expands one untried move picked uniformly at random.
func (n *node[M, P]) addRandomChild(r *rand.Rand) *node[M, P] {
	i := r.Intn(len(n.untried))
	move := n.untried[i]
	last := len(n.untried) - 1
	n.untried[i] = n.untried[last]
	n.untried = n.untried[:last]

	child := newNode(n.state.Play(move), n, move)
	n.children = append(n.children, child)
	return child
}

// recordOutcome counts a rollout, crediting winner unless there was none.
func (n *node[M, P]) recordOutcome(winner P, hasWinner bool) {
	if hasWinner {
		n.wins[winner]++
	}
	n.rollouts++
}

func (n *node[M, P]) winningFrac(player P) float64 {
	if n.rollouts == 0 {
		panic("cannot compute win fraction: 0 rollouts")
	}
	return float64(n.wins[player]) / float64(n.rollouts)
}

// selectChild returns the child with the highest UCT score from the point of
// view of the player to move at n. Ties go to the earliest child.
func (n *node[M, P]) selectChild(temperature float64) *node[M, P] {
	if len(n.children) == 0 {
		panic("node has no children")
	}
	policy := newUCT(temperature, n.rollouts)
	player := n.state.Player()

	var best *node[M, P]
	bestScore := 0.0
	for _, child := range n.children {
		score := policy.evaluate(child.winningFrac(player), child.rollouts)
		if best == nil || score > bestScore {
			best = child
			bestScore = score
		}
	}
	return best
}

// bestChild returns the child with the highest win fraction for the player to
// move at n. Ties go to the earliest child.
func (n *node[M, P]) bestChild() *node[M, P] {
	if len(n.children) == 0 {
		panic("node has no children")
	}
	player := n.state.Player()

	var best *node[M, P]
	bestFrac := 0.0
	for _, child := range n.children {
		if child.rollouts == 0 {
			continue
		}
		frac := child.winningFrac(player)
		if best == nil || frac > bestFrac {
			best = child
			bestFrac = frac
		}
	}
	if best == nil {
		return n.children[0]
	}
	return best
}
