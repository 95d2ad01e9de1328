package searcher

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

// mockState is a tiny game tree keyed by the moves played so far.
type mockState struct {
	played  string
	moves   map[string][]string // legal moves by history
	winners map[string]string   // winner by finished history, "" for a draw
}

func (m mockState) Player() string {
	if len(m.played)%2 == 0 {
		return "player1"
	}
	return "player2"
}

func (m mockState) LegalMoves() []string {
	return append([]string(nil), m.moves[m.played]...)
}

func (m mockState) Play(move string) State[string, string] {
	return mockState{played: m.played + move, moves: m.moves, winners: m.winners}
}

func (m mockState) IsOver() bool {
	_, ok := m.winners[m.played]
	return ok
}

func (m mockState) Winner() (string, bool) {
	winner := m.winners[m.played]
	return winner, winner != ""
}

// twoPlyGame: after L player1 always wins, after R player2 can win.
func twoPlyGame() mockState {
	return mockState{
		moves: map[string][]string{
			"":  {"L", "R"},
			"L": {"l", "r"},
			"R": {"l", "r"},
		},
		winners: map[string]string{
			"Ll": "player1",
			"Lr": "player1",
			"Rl": "player2",
			"Rr": "player1",
		},
	}
}

func TestNewNode(t *testing.T) {
	t.Run("collecting untried moves of an unfinished game", func(t *testing.T) {
		node := newNode[string, string](twoPlyGame(), nil, "")

		require.ElementsMatch(t, []string{"L", "R"}, node.untried, "Node should start with all legal moves untried")
		require.True(t, node.canAddChild(), "Node should be expandable")
		require.False(t, node.isTerminal(), "Node should not be terminal")
	})

	t.Run("never expanding a finished game", func(t *testing.T) {
		state := twoPlyGame().Play("L").Play("l")
		node := newNode[string, string](state, nil, "l")

		require.Empty(t, node.untried, "Terminal node should have no untried moves")
		require.False(t, node.canAddChild(), "Terminal node should not be expandable")
		require.True(t, node.isTerminal(), "Node should be terminal")
	})
}

func TestNodeAddRandomChild(t *testing.T) {
	t.Run("expanding every untried move exactly once", func(t *testing.T) {
		root := newNode[string, string](twoPlyGame(), nil, "")
		r := rand.New(rand.NewSource(1))

		first := root.addRandomChild(r)
		second := root.addRandomChild(r)

		require.ElementsMatch(t, []string{"L", "R"}, []string{first.move, second.move}, "Children should cover all moves")
		require.Equal(t, []*node[string, string]{first, second}, root.children, "Children should keep creation order")
		require.False(t, root.canAddChild(), "Node should be fully expanded")
		require.Same(t, root, first.parent, "Child should point back to its parent")
		require.Equal(t, "player2", first.state.Player(), "Child state should have the move applied")
	})
}

func TestNodeSelectChild(t *testing.T) {
	t.Run("selecting child with max UCT score for the player to move", func(t *testing.T) {
		root := newNode[string, string](twoPlyGame(), nil, "")
		weak := &node[string, string]{wins: map[string]int{"player1": 1}, rollouts: 10}
		strong := &node[string, string]{wins: map[string]int{"player1": 9}, rollouts: 10}
		root.children = []*node[string, string]{weak, strong}
		root.rollouts = 20

		require.Same(t, strong, root.selectChild(DefaultTemperature), "Node should select the child with max UCT score")
	})

	t.Run("exploring an undersampled child", func(t *testing.T) {
		root := newNode[string, string](twoPlyGame(), nil, "")
		sampled := &node[string, string]{wins: map[string]int{"player1": 60}, rollouts: 100}
		rare := &node[string, string]{wins: map[string]int{"player1": 0}, rollouts: 1}
		root.children = []*node[string, string]{sampled, rare}
		root.rollouts = 101

		require.Same(t, rare, root.selectChild(DefaultTemperature), "Exploration should favor the rarely visited child")
	})

	t.Run("breaking ties with the first child", func(t *testing.T) {
		root := newNode[string, string](twoPlyGame(), nil, "")
		first := &node[string, string]{wins: map[string]int{"player1": 1}, rollouts: 2}
		second := &node[string, string]{wins: map[string]int{"player1": 1}, rollouts: 2}
		root.children = []*node[string, string]{first, second}
		root.rollouts = 4

		require.Same(t, first, root.selectChild(DefaultTemperature), "Ties should resolve to the first child")
	})

	t.Run("panicking without children", func(t *testing.T) {
		root := newNode[string, string](twoPlyGame(), nil, "")

		require.Panics(t, func() { root.selectChild(DefaultTemperature) }, "Should panic when there is nothing to select")
	})
}

func TestNodeBestChild(t *testing.T) {
	t.Run("preferring win fraction over visit count", func(t *testing.T) {
		root := newNode[string, string](twoPlyGame(), nil, "")
		visited := &node[string, string]{move: "L", wins: map[string]int{"player1": 50}, rollouts: 100}
		accurate := &node[string, string]{move: "R", wins: map[string]int{"player1": 3}, rollouts: 4}
		root.children = []*node[string, string]{visited, accurate}

		require.Same(t, accurate, root.bestChild(), "Best child should have the highest win fraction")
	})

	t.Run("breaking ties with the first child", func(t *testing.T) {
		root := newNode[string, string](twoPlyGame(), nil, "")
		first := &node[string, string]{move: "L", wins: map[string]int{"player1": 1}, rollouts: 2}
		second := &node[string, string]{move: "R", wins: map[string]int{"player1": 2}, rollouts: 4}
		root.children = []*node[string, string]{first, second}

		require.Same(t, first, root.bestChild(), "Ties should resolve to the first child")
	})
}

func TestBackup(t *testing.T) {
	t.Run("crediting the winner along the path to the root", func(t *testing.T) {
		root := newNode[string, string](twoPlyGame(), nil, "")
		child := &node[string, string]{parent: root, wins: map[string]int{}}
		grandChild := &node[string, string]{parent: child, wins: map[string]int{}}

		backup(grandChild, "player2", true)

		for _, n := range []*node[string, string]{root, child, grandChild} {
			require.Equal(t, 1, n.rollouts, "Every node on the path should count the rollout")
			require.Equal(t, 1, n.wins["player2"], "Every node on the path should credit the winner")
			require.Equal(t, 0, n.wins["player1"], "The loser should not be credited")
		}
	})

	t.Run("counting a rollout without a winner", func(t *testing.T) {
		root := newNode[string, string](twoPlyGame(), nil, "")
		child := &node[string, string]{parent: root, wins: map[string]int{}}

		backup(child, "", false)

		require.Equal(t, 1, root.rollouts, "Rollout should be counted")
		require.Empty(t, root.wins, "No player should be credited")
		require.Equal(t, 0.0, child.winningFrac("player1"), "Draws should lower the win fraction")
	})
}
