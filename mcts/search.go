package mcts

import (
	"github.com/chewxy/math32"
	"github.com/gorgonia/arena/game"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

/*
Here lies the search code, while node.go and tree.go handles the data structure stuff.

Every simulation walks down the tree from the root by PUCT, evaluates the leaf with the oracle
(or the rules, if the game is over there), and backs the value up, flipping its sign at every ply.
*/

// Explore runs exactly iterations simulations from s. s is not modified.
func (t *MCTS) Explore(s game.State, iterations int) error {
	t.Lock()
	defer t.Unlock()

	if _, ended := s.TerminalReward(); ended {
		return errors.Wrapf(ErrTerminal, "cannot explore move %d", s.MoveNumber())
	}
	root, err := t.prepareRoot(s)
	if err != nil {
		return err
	}

	for i := 0; i < iterations; i++ {
		if err := t.simulate(s.Clone(), root); err != nil {
			return errors.WithMessagef(err, "simulation %d", i)
		}
		t.playouts++
	}
	R := t.nodeFromNaughty(root)
	log.Debug().
		Int("move", s.MoveNumber()).
		Int("iterations", iterations).
		Uint32("rootVisits", R.visits).
		Int("nodes", len(t.nodes)).
		Msg("explored")
	return nil
}

// prepareRoot finds or creates the node of s and makes sure that it has children.
func (t *MCTS) prepareRoot(s game.State) (naughty, error) {
	root, ok := t.lookup(s)
	if !ok {
		root = t.alloc(noMove, 1)
		t.table[s.Hash()] = root
	}
	if t.nodes[root].expanded {
		return root, nil
	}
	v, err := t.expand(root, s, true)
	if err != nil {
		return nilNode, err
	}
	// the evaluation of the root counts as its first visit
	t.nodes[root].update(-v)
	return root, nil
}

func (t *MCTS) simulate(s game.State, root naughty) error {
	path := []naughty{root}
	current := root
	for {
		N := t.nodeFromNaughty(current)
		if !N.IsExpanded() || N.IsTerminal() || len(t.children[current]) == 0 {
			break
		}
		next := t.selectChild(current)
		if !next.isValid() {
			return errors.Errorf("no child of node %v could be selected", current)
		}
		if err := s.Apply(t.nodes[next].move); err != nil {
			return errors.WithMessagef(err, "unable to apply %d", t.nodes[next].move)
		}
		path = append(path, next)
		current = next
	}

	// v is from the point of view of the side to move at the leaf
	var v float32
	if leaf := t.nodeFromNaughty(current); leaf.IsExpanded() {
		v = leaf.value
	} else {
		var err error
		if v, err = t.expand(current, s, false); err != nil {
			return err
		}
		t.table[s.Hash()] = current
	}

	// each node stores the value for the player who moved into it
	for i := len(path) - 1; i >= 0; i-- {
		v = -v
		t.nodes[path[i]].update(v)
	}
	return nil
}

// expand evaluates the position s of node n and grows its children. The returned value is from
// the point of view of the side to move in s.
func (t *MCTS) expand(n naughty, s game.State, force bool) (float32, error) {
	if reward, ended := s.TerminalReward(); ended {
		v := reward
		if !s.WhiteToMove() {
			v = -reward
		}
		N := t.nodeFromNaughty(n)
		N.expanded, N.terminal, N.value = true, true, v
		return v, nil
	}

	actions := s.LegalActions()
	policy, value, err := t.oracle.Evaluate(s.CanonicalBoard(), actions)
	if err != nil {
		return 0, errors.WithMessage(err, "oracle failed")
	}
	if len(policy) != len(actions) {
		return 0, errors.Errorf("oracle returned %d probabilities for %d actions", len(policy), len(actions))
	}
	N := t.nodeFromNaughty(n)
	N.expanded, N.value = true, value

	if !force && t.full(len(actions)) {
		log.Debug().Int("nodes", len(t.nodes)).Int("max", t.MaxNodes).Msg("tree is full. Not expanding")
		return value, nil
	}
	kids := make([]naughty, 0, len(actions))
	for i, a := range actions {
		kids = append(kids, t.alloc(a, policy[i]))
	}
	t.children[n] = kids
	return value, nil
}

// Policy returns the legal actions of s and the distribution over them derived from the visit
// counts at the given temperature: π(a) ∝ N(s, a)^(1/temperature). At a temperature close to 0
// the policy puts all of its mass on the most visited action. If none of the children has been
// visited the priors are used instead.
func (t *MCTS) Policy(s game.State, temperature float32) (actions []game.Single, policy []float32, err error) {
	t.Lock()
	defer t.Unlock()

	n, ok := t.lookup(s)
	if !ok || len(t.children[n]) == 0 {
		return nil, nil, errors.Wrapf(ErrUnexplored, "move %d", s.MoveNumber())
	}

	kids := t.children[n]
	actions = make([]game.Single, len(kids))
	weights := make([]float32, len(kids))
	var total uint32
	for i, kid := range kids {
		child := t.nodeFromNaughty(kid)
		actions[i] = child.move
		weights[i] = float32(child.visits)
		total += child.visits
	}
	if total == 0 {
		for i, kid := range kids {
			weights[i] = t.nodes[kid].prior
		}
	}

	policy = make([]float32, len(kids))
	if temperature <= minTemperature {
		policy[argmax(weights)] = 1
		return actions, policy, nil
	}

	top := weights[argmax(weights)]
	if top <= 0 {
		for i := range policy {
			policy[i] = 1 / float32(len(policy))
		}
		return actions, policy, nil
	}
	var sum float32
	for i, w := range weights {
		policy[i] = math32.Pow(w/top, 1/temperature)
		sum += policy[i]
	}
	for i := range policy {
		policy[i] /= sum
	}
	return actions, policy, nil
}
