package arena

import (
	"math"
	"testing"

	"github.com/gorgonia/arena/game"
	"github.com/gorgonia/arena/game/mnk"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

type fakeSearcher struct {
	actions []game.Single
	policy  []float32
	err     error

	explored     int
	iterations   int
	temperatures []float32
	resets       int
}

func (f *fakeSearcher) Explore(s game.State, iterations int) error {
	f.explored++
	f.iterations = iterations
	return nil
}

func (f *fakeSearcher) Policy(s game.State, temperature float32) ([]game.Single, []float32, error) {
	f.temperatures = append(f.temperatures, temperature)
	return f.actions, f.policy, f.err
}

func (f *fakeSearcher) Reset() error {
	f.resets++
	return f.err
}

type fakeOracle struct {
	policy []float32
	calls  int
}

func (o *fakeOracle) Evaluate(board []float32, actions []game.Single) ([]float32, float32, error) {
	o.calls++
	return o.policy, 0, nil
}

func TestRandomPlayer(t *testing.T) {
	s := mnk.TicTacToe().InitialState()
	p := NewRandomPlayer(rand.NewSource(1337))

	seen := make(map[game.Single]int)
	for i := 0; i < 900; i++ {
		a, policy, err := p.Decide(s, 0)
		require.NoError(t, err)
		require.Len(t, policy, 9)
		assert.InDelta(t, 1, sum(policy), 1e-6)
		seen[a]++
	}
	assert.Len(t, seen, 9, "every legal action is played")
	for a, n := range seen {
		assert.True(t, n > 50, "action %d was played %d times", a, n)
	}

	ended := mnk.New(3, 3, 3)
	for _, a := range []game.Single{0, 3, 1, 4, 2} {
		require.NoError(t, ended.Apply(a))
	}
	_, _, err := p.Decide(ended, 5)
	assert.Equal(t, ErrNoLegalActions, errors.Cause(err))
	assert.NoError(t, p.Reset())
}

func TestSearchPlayerSupport(t *testing.T) {
	s := mnk.TicTacToe().InitialState()
	search := &fakeSearcher{
		actions: []game.Single{4, 5, 6},
		policy:  []float32{0, 1, 0},
	}
	conf := SearchConfig{Iterations: 10, Temperature: ConstantTemperature(1)}
	p, err := NewSearchPlayer(conf, search, nil, rand.NewSource(1))
	require.NoError(t, err)

	for i := 0; i < 50; i++ {
		a, policy, err := p.Decide(s, i)
		require.NoError(t, err)
		assert.Equal(t, game.Single(5), a)
		assert.Equal(t, search.policy, policy)
	}
	assert.Equal(t, 50, search.explored)
	assert.Equal(t, 10, search.iterations)
}

func TestSearchPlayerNoise(t *testing.T) {
	s := mnk.TicTacToe().InitialState()
	search := &fakeSearcher{
		actions: []game.Single{0, 1, 2},
		policy:  []float32{1, 0, 0},
	}
	conf := SearchConfig{
		Iterations:      1,
		Temperature:     ConstantTemperature(1),
		DirichletAlpha:  0.9,
		DirichletWeight: 0.25,
	}
	p, err := NewSearchPlayer(conf, search, nil, rand.NewSource(1337))
	require.NoError(t, err)

	var others int
	for i := 0; i < 200; i++ {
		a, policy, err := p.Decide(s, i)
		require.NoError(t, err)
		assert.Equal(t, []float32{1, 0, 0}, policy, "the returned distribution is the one before noise")
		assert.Contains(t, search.actions, a)
		if a != 0 {
			others++
		}
	}
	assert.True(t, others > 0, "noise lets other actions be explored")
	assert.True(t, others < 200)
}

func TestSearchPlayerTemperature(t *testing.T) {
	s := mnk.TicTacToe().InitialState()
	search := &fakeSearcher{
		actions: []game.Single{0},
		policy:  []float32{1},
	}
	sched, err := NewSchedule(TemperatureStep{0, 1}, TemperatureStep{2, 0.5})
	require.NoError(t, err)
	p, err := NewSearchPlayer(SearchConfig{Iterations: 1, Temperature: sched}, search, nil, rand.NewSource(1))
	require.NoError(t, err)
	for turn := 0; turn < 4; turn++ {
		_, _, err := p.Decide(s, turn)
		require.NoError(t, err)
	}
	assert.Equal(t, []float32{1, 1, 0.5, 0.5}, search.temperatures)
}

func TestSearchPlayerWithoutSearch(t *testing.T) {
	s := mnk.New(3, 3, 3)
	for _, a := range []game.Single{0, 1, 2, 4, 3, 5, 7} {
		require.NoError(t, s.Apply(a))
	}
	_, ended := s.TerminalReward()
	require.False(t, ended)
	require.Equal(t, []game.Single{6, 8}, s.LegalActions())

	oracle := &fakeOracle{policy: []float32{0, 3}}
	p, err := NewSearchPlayer(SearchConfig{Temperature: ConstantTemperature(1)}, nil, oracle, rand.NewSource(1))
	require.NoError(t, err)

	a, policy, err := p.Decide(s, 7)
	require.NoError(t, err)
	assert.Equal(t, game.Single(8), a)
	assert.Equal(t, []float32{0, 3}, policy)
	assert.Equal(t, 1, oracle.calls)
	assert.NoError(t, p.Reset(), "a player without a searcher has nothing to reset")
}

func TestSearchPlayerErrors(t *testing.T) {
	s := mnk.TicTacToe().InitialState()
	conf := SearchConfig{Iterations: 1, Temperature: ConstantTemperature(1)}

	cases := []struct {
		name    string
		actions []game.Single
		policy  []float32
		err     error
	}{
		{"empty", nil, nil, ErrEmptyPolicy},
		{"mismatch", []game.Single{0, 1}, []float32{0.2, 0.3, 0.5}, ErrShapeMismatch},
		{"negative", []game.Single{0, 1}, []float32{-1, 2}, ErrInvalidWeights},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			search := &fakeSearcher{actions: c.actions, policy: c.policy}
			p, err := NewSearchPlayer(conf, search, nil, rand.NewSource(1))
			require.NoError(t, err)
			_, _, err = p.Decide(s, 0)
			assert.Equal(t, c.err, errors.Cause(err))
		})
	}

	search := &fakeSearcher{err: errors.New("boom")}
	p, err := NewSearchPlayer(conf, search, nil, rand.NewSource(1))
	require.NoError(t, err)
	_, _, err = p.Decide(s, 0)
	assert.Error(t, err)
	assert.Error(t, p.Reset())
	assert.Equal(t, 1, search.resets)
}

func TestNewSearchPlayer(t *testing.T) {
	src := rand.NewSource(1)
	_, err := NewSearchPlayer(SearchConfig{Iterations: 10}, nil, nil, src)
	assert.Error(t, err, "searching requires a searcher")

	_, err = NewSearchPlayer(SearchConfig{}, nil, nil, src)
	assert.Error(t, err, "not searching requires an oracle")

	_, err = NewSearchPlayer(SearchConfig{Iterations: -1}, &fakeSearcher{}, nil, src)
	assert.Error(t, err)

	_, err = NewSearchPlayer(SearchConfig{Iterations: 1, DirichletWeight: 0.25}, &fakeSearcher{}, nil, src)
	assert.Error(t, err, "noise requires a concentration")

	_, err = NewSearchPlayer(SearchConfig{Iterations: 1, DirichletWeight: 1.5, DirichletAlpha: 0.3}, &fakeSearcher{}, nil, src)
	assert.Error(t, err)

	_, err = NewSearchPlayer(SearchConfig{Iterations: 1, Temperature: Schedule{{From: 0, Temperature: 0}}}, &fakeSearcher{}, nil, src)
	assert.Error(t, err)

	nan := math.NaN()
	bad := []SearchConfig{
		{Iterations: 1, DirichletWeight: nan, DirichletAlpha: 0.3},
		{Iterations: 1, DirichletWeight: 0.25, DirichletAlpha: nan},
		{Iterations: 1, DirichletWeight: 0, DirichletAlpha: nan},
		{Iterations: 1, DirichletWeight: 0.25, DirichletAlpha: math.Inf(1)},
		{Iterations: 1, Temperature: Schedule{{From: 0, Temperature: float32(nan)}}},
	}
	for i, conf := range bad {
		_, err = NewSearchPlayer(conf, &fakeSearcher{}, nil, src)
		assert.Error(t, err, "case %d", i)
	}

	p, err := NewSearchPlayer(DefaultSearchConfig(), &fakeSearcher{}, nil, src)
	require.NoError(t, err)
	assert.Equal(t, 100, p.Iterations)
}

func TestSearchPlayerClose(t *testing.T) {
	inf := &fixedInferer{policy: []float32{0.5, 0.5}}
	p, err := NewSearchPlayer(SearchConfig{Temperature: ConstantTemperature(1)}, nil, InfererOracle{inf}, rand.NewSource(1))
	require.NoError(t, err)
	require.NoError(t, p.Close())
	assert.True(t, inf.closed)

	inf.closeErr = errors.New("stuck")
	assert.Error(t, p.Close())

	// neither the searcher nor the oracle need closing
	p, err = NewSearchPlayer(SearchConfig{Iterations: 1}, &fakeSearcher{}, UniformOracle{}, rand.NewSource(1))
	require.NoError(t, err)
	assert.NoError(t, p.Close())
	assert.NoError(t, InfererOracle{}.Close())
}

func TestNoise(t *testing.T) {
	src := rand.NewSource(1337)
	for n := 1; n < 10; n++ {
		noise := dirichlet(n, 0.3*float64(n), src)
		require.Len(t, noise, n)
		assert.InDelta(t, 1, sum(noise), 1e-4)
		for _, v := range noise {
			assert.True(t, v >= 0)
		}
	}

	mixed := mix([]float32{1, 0}, []float32{0, 1}, 0.25)
	assert.InDeltaSlice(t, []float32{0.75, 0.25}, mixed, 1e-6)
}
