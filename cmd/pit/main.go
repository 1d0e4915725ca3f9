// Command pit pits a search based player against a random baseline, or plays self-play games.
package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	configFile string
	gameName   string
	seed       uint64
	iterations int
	logLevel   string
	dotFile    string

	rootCmd = &cobra.Command{
		Use:   "pit",
		Short: "Pit search based players against each other",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := zerolog.ParseLevel(logLevel)
			if err != nil {
				return err
			}
			zerolog.SetGlobalLevel(level)
			log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
			return nil
		},
		SilenceUsage: true,
	}
)

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&configFile, "config", "c", "", "YAML configuration file")
	flags.StringVarP(&gameName, "game", "g", "", "game to play: tictactoe or connect4")
	flags.Uint64Var(&seed, "seed", 0, "seed of the random sources")
	flags.IntVar(&iterations, "iterations", -1, "MCTS simulations per move. 0 asks the oracle directly")
	flags.StringVar(&logLevel, "log-level", "info", "log level")
	flags.StringVar(&dotFile, "dot", "", "write the search tree of the last game in DOT format to this file")

	rootCmd.AddCommand(pitCmd, selfPlayCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
