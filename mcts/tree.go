package mcts

import (
	"sync"

	"github.com/gorgonia/arena/game"
)

// Config is the structure to configure the MCTS tree.
type Config struct {
	// PUCT is the exploration constant of the polynomial upper confidence trees.
	PUCT float32 `yaml:"puct"`

	// MaxNodes caps the size of the tree. Leaves are still evaluated once the cap is hit but no
	// longer grow children. 0 means no cap.
	MaxNodes int `yaml:"max_nodes"`
}

// naughty indexes into the arena of nodes of a tree. Indices are only meaningful until Reset.
type naughty int

const nilNode naughty = -1

func (n naughty) isValid() bool { return n >= 0 }

func DefaultConfig() Config {
	return Config{
		PUCT:     1.0,
		MaxNodes: 1 << 20,
	}
}

func (c Config) IsValid() bool {
	return c.PUCT > 0 && c.MaxNodes >= 0
}

// MCTS is essentially a "global" manager of sorts for the memories. The goal is to build MCTS without much pointer chasing.
//
// Positions are remembered by their hash until Reset is called, so that a later search from a
// position reached earlier picks up where the earlier one left off.
type MCTS struct {
	sync.Mutex
	Config
	oracle Oracle

	// memory related fields
	nodes    []Node
	children [][]naughty
	table    map[game.Zobrist]naughty

	playouts int
}

func New(conf Config, oracle Oracle) *MCTS {
	return &MCTS{
		Config: conf,
		oracle: oracle,

		nodes:    make([]Node, 0, 1024),
		children: make([][]naughty, 0, 1024),
		table:    make(map[game.Zobrist]naughty),
	}
}

// Nodes returns the number of nodes in the tree.
func (t *MCTS) Nodes() int {
	t.Lock()
	defer t.Unlock()
	return len(t.nodes)
}

// Playouts returns the number of simulations run since the last Reset.
func (t *MCTS) Playouts() int {
	t.Lock()
	defer t.Unlock()
	return t.playouts
}

// alloc allocates a new node into the master arena
func (t *MCTS) alloc(move game.Single, prior float32) naughty {
	n := naughty(len(t.nodes))
	t.nodes = append(t.nodes, Node{
		move:  move,
		prior: prior,
		id:    n,
	})
	t.children = append(t.children, nil)
	return n
}

func (t *MCTS) nodeFromNaughty(n naughty) *Node { return &t.nodes[int(n)] }

// Children returns the children of a node, in the order of the legal actions of its position.
func (t *MCTS) Children(of naughty) []naughty { return t.children[of] }

func (t *MCTS) full(extra int) bool {
	return t.MaxNodes > 0 && len(t.nodes)+extra > t.MaxNodes
}

// lookup finds the node of the position. A node whose children do not match the legal actions
// is a hash collision and is not returned.
func (t *MCTS) lookup(s game.State) (naughty, bool) {
	n, ok := t.table[s.Hash()]
	if !ok {
		return nilNode, false
	}
	if !t.nodes[n].expanded {
		return n, true
	}
	kids := t.children[n]
	actions := s.LegalActions()
	if len(kids) != len(actions) {
		return nilNode, false
	}
	for i, kid := range kids {
		if t.nodes[kid].move != actions[i] {
			return nilNode, false
		}
	}
	return n, true
}

// Reset forgets the whole tree.
func (t *MCTS) Reset() error {
	t.Lock()
	defer t.Unlock()

	t.nodes = t.nodes[:0]
	for i := range t.children {
		t.children[i] = nil
	}
	t.children = t.children[:0]
	t.table = make(map[game.Zobrist]naughty)
	t.playouts = 0
	return nil
}
