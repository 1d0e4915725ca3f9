package main

import (
	"fmt"

	"github.com/gorgonia/arena"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/exp/rand"
)

var (
	games      int
	resetEvery int
	colours    string
	statsFile  string

	pitCmd = &cobra.Command{
		Use:   "pit",
		Short: "Play a random baseline against a search based contender",
		RunE:  runPit,
	}
)

func init() {
	flags := pitCmd.Flags()
	flags.IntVarP(&games, "games", "n", 0, "number of games")
	flags.IntVar(&resetEvery, "reset-every", 0, "reset both players every so many games")
	flags.StringVar(&colours, "colours", "", "alternate, baseline-white or contender-white")
	flags.StringVar(&statsFile, "stats", "", "write per game statistics as CSV to this file")
}

func runPit(cmd *cobra.Command, args []string) error {
	conf, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("games") {
		conf.Pit.Games = games
	}
	if flags.Changed("reset-every") {
		conf.Pit.ResetEvery = resetEvery
	}
	if flags.Changed("colours") {
		if conf.Pit.Colours, err = arena.ParseColourPolicy(colours); err != nil {
			return err
		}
	}
	if err = conf.Validate(); err != nil {
		return err
	}

	g, err := gameFor(conf.Game)
	if err != nil {
		return err
	}
	baseline := arena.NewRandomPlayer(rand.NewSource(conf.Seed))
	contender, tree, err := newSearchPlayer(conf, conf.Seed+1)
	if err != nil {
		return err
	}
	defer closePlayer(contender)

	log.Info().Str("name", conf.Name).Int("games", conf.Pit.Games).Stringer("colours", conf.Pit.Colours).Msg("pit started")
	stats := &arena.Statistics{}
	mean, err := arena.Pit(g.rules, stats.Record, baseline, contender, conf.Pit)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "contender: %d wins, %d losses, %d draws. Mean score %.3f\n", stats.Wins, stats.Losses, stats.Draws, mean)

	if statsFile != "" {
		if err = stats.Dump(statsFile); err != nil {
			return err
		}
	}
	return writeDot(tree)
}
