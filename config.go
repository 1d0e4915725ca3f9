package arena

import (
	"os"

	"github.com/gorgonia/arena/mcts"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config configures a pit between a baseline and a search based contender, and self-play games.
type Config struct {
	Name string `yaml:"name"`
	Game string `yaml:"game"` // tictactoe or connect4
	Seed uint64 `yaml:"seed"`

	Pit       PitConfig    `yaml:"pit"`
	Contender SearchConfig `yaml:"contender"`
	MCTS      mcts.Config  `yaml:"mcts"`

	// SelfPlayGames is the number of games the selfplay command plays.
	SelfPlayGames int `yaml:"selfplay_games"`
	MaxExamples   int `yaml:"max_examples"` // 0 keeps every example
}

// DefaultConfig is a 100 game pit on tic-tac-toe.
func DefaultConfig() Config {
	return Config{
		Name: "Tic Tac Toe",
		Game: "tictactoe",
		Seed: 1337,
		Pit: PitConfig{
			Games:      100,
			ResetEvery: 10,
			Colours:    AlternateColours,
		},
		Contender:     DefaultSearchConfig(),
		MCTS:          mcts.DefaultConfig(),
		SelfPlayGames: 10,
	}
}

func (c Config) Validate() error {
	if err := c.Pit.Validate(); err != nil {
		return errors.WithMessage(err, "bad pit")
	}
	if err := c.Contender.Validate(); err != nil {
		return errors.WithMessage(err, "bad contender")
	}
	if !c.MCTS.IsValid() {
		return errors.Errorf("bad MCTS config %+v", c.MCTS)
	}
	if c.SelfPlayGames < 0 {
		return errors.Errorf("selfplay games must not be negative. Got %d", c.SelfPlayGames)
	}
	if c.MaxExamples < 0 {
		return errors.Errorf("max examples must not be negative. Got %d", c.MaxExamples)
	}
	return nil
}

// LoadConfig reads a YAML file on top of DefaultConfig. Fields missing from the file keep their defaults.
func LoadConfig(filename string) (Config, error) {
	conf := DefaultConfig()
	data, err := os.ReadFile(filename)
	if err != nil {
		return conf, errors.WithStack(err)
	}
	if err = yaml.Unmarshal(data, &conf); err != nil {
		return conf, errors.Wrapf(err, "unable to parse %v", filename)
	}
	return conf, conf.Validate()
}
