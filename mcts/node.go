package mcts

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/gorgonia/arena/game"
)

type Node struct {
	move     game.Single // the move that leads to this node
	visits   uint32      // N(s, a) in the literature
	valueSum float32     // W(s, a). From the point of view of the player who made move
	prior    float32     // P(s, a) from the oracle
	value    float32     // value of the position from the oracle (or the rules when terminal), for the side to move

	expanded bool
	terminal bool

	id naughty
}

func (n *Node) Format(s fmt.State, c rune) {
	fmt.Fprintf(s, "{NodeID: %v Move: %v, Prior: %v, Value %v Visits %v Q %v}", n.id, n.move, n.prior, n.value, n.visits, n.Q())
}

// Move gets the move associated with the node
func (n *Node) Move() game.Single { return n.move }

func (n *Node) Visits() uint32 { return n.visits }

// Prior returns the oracle's estimate of the probability of the move.
func (n *Node) Prior() float32 { return n.prior }

// Value returns the evaluation of the position from the point of view of the side to move.
func (n *Node) Value() float32 { return n.value }

// Q returns the mean value of the move for the player who made it. Unvisited nodes have a Q of 0.
func (n *Node) Q() float32 {
	if n.visits == 0 {
		return 0
	}
	return n.valueSum / float32(n.visits)
}

func (n *Node) ID() int { return int(n.id) }

// IsExpanded returns true if the position of the node has been evaluated.
func (n *Node) IsExpanded() bool { return n.expanded }

// IsTerminal returns true if the game is over at this node.
func (n *Node) IsTerminal() bool { return n.terminal }

func (n *Node) update(v float32) {
	n.visits++
	n.valueSum += v
}

// selectChild picks the child with the highest upper confidence bound.
func (t *MCTS) selectChild(of naughty) naughty {
	parent := &t.nodes[of]

	// the upper bound formula is as such
	// U(s, a) = Q(s, a) + tree.PUCT * P(s, a) * ((sqrt(parent visits))/ (1+visits to this node))
	//
	// Unvisited children take the parent's evaluation as their Q (first play urgency).
	fpu := parent.value
	numerator := math32.Sqrt(float32(parent.visits))

	best := nilNode
	bestValue := math32.Inf(-1)
	for _, kid := range t.children[of] {
		child := &t.nodes[kid]
		qsa := fpu
		if child.visits > 0 {
			qsa = child.Q()
		}
		usa := qsa + t.PUCT*child.prior*numerator/(1+float32(child.visits))
		if usa > bestValue {
			bestValue = usa
			best = kid
		}
	}
	return best
}
