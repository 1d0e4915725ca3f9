package arena

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"

	"github.com/pkg/errors"
)

// Statistics tallies the contender's results over a pit. Its Record method is a Handler.
type Statistics struct {
	Wins   int
	Losses int
	Draws  int
	Scores []float32
}

// Record records the score of a game.
func (s *Statistics) Record(game int, score float32) {
	switch {
	case score > 0:
		s.Wins++
	case score < 0:
		s.Losses++
	default:
		s.Draws++
	}
	s.Scores = append(s.Scores, score)
}

func (s *Statistics) Games() int { return len(s.Scores) }

// Mean returns the mean score so far.
func (s *Statistics) Mean() float32 {
	if len(s.Scores) == 0 {
		return 0
	}
	var sum float32
	for _, v := range s.Scores {
		sum += v
	}
	return sum / float32(len(s.Scores))
}

// WinRate returns the fraction of games won.
func (s *Statistics) WinRate() float32 {
	if len(s.Scores) == 0 {
		return 0
	}
	return float32(s.Wins) / float32(len(s.Scores))
}

// Write writes one CSV row per game with the running tallies.
func (s *Statistics) Write(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"game", "score", "wins", "losses", "draws", "mean"}); err != nil {
		return err
	}
	var wins, losses, draws int
	var sum float32
	for i, score := range s.Scores {
		switch {
		case score > 0:
			wins++
		case score < 0:
			losses++
		default:
			draws++
		}
		sum += score
		record := []string{
			strconv.Itoa(i + 1),
			strconv.FormatFloat(float64(score), 'f', 3, 32),
			strconv.Itoa(wins),
			strconv.Itoa(losses),
			strconv.Itoa(draws),
			strconv.FormatFloat(float64(sum/float32(i+1)), 'f', 3, 32),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// Dump writes the statistics into filename.
func (s *Statistics) Dump(filename string) error {
	f, err := os.OpenFile(filename, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return errors.WithStack(err)
	}
	defer f.Close()
	return s.Write(f)
}
