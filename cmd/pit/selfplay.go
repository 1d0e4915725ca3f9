package main

import (
	"os"

	"github.com/gorgonia/arena"
	"github.com/gorgonia/arena/encoding/gif"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/exp/rand"
)

var (
	selfPlayGames int
	gifFile       string
	batchSize     int

	selfPlayCmd = &cobra.Command{
		Use:   "selfplay",
		Short: "Play the search based player against itself and collect training examples",
		RunE:  runSelfPlay,
	}
)

func init() {
	flags := selfPlayCmd.Flags()
	flags.IntVarP(&selfPlayGames, "games", "n", 0, "number of games")
	flags.StringVar(&gifFile, "gif", "", "render the games into this gif")
	flags.IntVar(&batchSize, "batch-size", 0, "lay out the examples in batches of this size")
}

func runSelfPlay(cmd *cobra.Command, args []string) (err error) {
	conf, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("games") {
		conf.SelfPlayGames = selfPlayGames
	}
	if err = conf.Validate(); err != nil {
		return err
	}

	g, err := gameFor(conf.Game)
	if err != nil {
		return err
	}
	player, tree, err := newSearchPlayer(conf, conf.Seed)
	if err != nil {
		return err
	}
	defer closePlayer(player)

	mem := arena.NewReplayMemory(g.rules.ActionSpace(), conf.MaxExamples, g.aug)
	memories := arena.Memories{mem}
	var enc *gif.Encoder
	if gifFile != "" {
		f, ferr := os.Create(gifFile)
		if ferr != nil {
			return errors.WithStack(ferr)
		}
		defer func() {
			if cerr := f.Close(); err == nil {
				err = cerr
			}
		}()
		enc = gif.NewGifEncoder(conf.Name, g.rules, 800, 800, f)
		memories = append(memories, enc)
	}

	for i := 1; i <= conf.SelfPlayGames; i++ {
		if err = player.Reset(); err != nil {
			return err
		}
		reward, err := arena.PlayGame(g.rules, player, player, memories)
		if err != nil {
			return errors.WithMessagef(err, "game %d", i)
		}
		log.Info().Int("game", i).Float32("reward", reward).Int("examples", mem.Len()).Msg("self-play game played")
	}

	if enc != nil && enc.Frames() > 0 {
		if err = enc.Flush(); err != nil {
			return err
		}
	}
	if batchSize > 0 {
		xs, policies, values, batches, err := mem.Batches(batchSize, rand.NewSource(conf.Seed))
		if err != nil {
			return err
		}
		log.Info().
			Int("batches", batches).
			Ints("boards", xs.Shape()).
			Ints("policies", policies.Shape()).
			Ints("values", values.Shape()).
			Msg("examples laid out")
	}
	return writeDot(tree)
}
