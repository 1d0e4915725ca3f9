package main

import (
	"os"

	"github.com/gorgonia/arena"
	"github.com/gorgonia/arena/game"
	"github.com/gorgonia/arena/game/c4"
	"github.com/gorgonia/arena/game/mnk"
	"github.com/gorgonia/arena/mcts"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/exp/rand"
)

// loadConfig reads the config file, if any, and applies the flags that were set on top of it.
func loadConfig(cmd *cobra.Command) (arena.Config, error) {
	conf := arena.DefaultConfig()
	if configFile != "" {
		var err error
		if conf, err = arena.LoadConfig(configFile); err != nil {
			return conf, err
		}
	}
	flags := cmd.Flags()
	if flags.Changed("game") {
		conf.Game = gameName
	}
	if flags.Changed("seed") {
		conf.Seed = seed
	}
	if flags.Changed("iterations") {
		conf.Contender.Iterations = iterations
	}
	return conf, nil
}

// rules are the rules of a game played on a rectangular board.
type rules interface {
	game.Rules
	game.Sizer
}

type setup struct {
	rules rules
	aug   arena.Augmenter
}

func gameFor(name string) (setup, error) {
	switch name {
	case "tictactoe", "mnk", "":
		r := mnk.TicTacToe()
		rows, _ := r.BoardSize()
		return setup{rules: r, aug: arena.SquareAugmenter(rows)}, nil
	case "connect4", "c4":
		r := c4.ConnectFour()
		return setup{rules: r}, nil
	}
	return setup{}, errors.Errorf("unknown game %q", name)
}

// newSearchPlayer creates a player with its own tree. Both the tree and the player ask a uniform oracle.
func newSearchPlayer(conf arena.Config, seed uint64) (*arena.SearchPlayer, *mcts.MCTS, error) {
	oracle := arena.UniformOracle{}
	tree := mcts.New(conf.MCTS, oracle)
	p, err := arena.NewSearchPlayer(conf.Contender, tree, oracle, rand.NewSource(seed))
	if err != nil {
		return nil, nil, err
	}
	return p, tree, nil
}

func writeDot(tree *mcts.MCTS) error {
	if dotFile == "" {
		return nil
	}
	if tree.Nodes() == 0 {
		log.Warn().Str("file", dotFile).Msg("the search tree is empty")
	}
	dot, err := tree.ToDot()
	if err != nil {
		return err
	}
	return errors.WithStack(os.WriteFile(dotFile, []byte(dot), 0644))
}

func closePlayer(p *arena.SearchPlayer) {
	if err := p.Close(); err != nil {
		log.Warn().Err(err).Msg("unable to close player")
	}
}
