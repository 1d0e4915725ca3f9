package arena

import (
	"sort"

	"github.com/pkg/errors"
)

// TemperatureStep sets the temperature from a given turn onwards.
type TemperatureStep struct {
	From        int     `yaml:"from"`
	Temperature float32 `yaml:"temperature"`
}

// Schedule is a piecewise constant temperature schedule keyed by turn number.
// Steps are ordered by From.
type Schedule []TemperatureStep

// NewSchedule sorts and validates the steps.
func NewSchedule(steps ...TemperatureStep) (Schedule, error) {
	retVal := make(Schedule, len(steps))
	copy(retVal, steps)
	sort.SliceStable(retVal, func(i, j int) bool { return retVal[i].From < retVal[j].From })
	if err := retVal.Validate(); err != nil {
		return nil, err
	}
	return retVal, nil
}

// ConstantTemperature is a schedule with a single step.
func ConstantTemperature(t float32) Schedule { return Schedule{{From: 0, Temperature: t}} }

// Validate checks that the steps are ordered, distinct and that every temperature is positive.
func (s Schedule) Validate() error {
	for i, step := range s {
		if !(step.Temperature > 0) {
			return errors.Errorf("temperature at turn %d must be positive. Got %v", step.From, step.Temperature)
		}
		if step.From < 0 {
			return errors.Errorf("temperature step %d starts at negative turn %d", i, step.From)
		}
		if i > 0 && s[i-1].From >= step.From {
			return errors.Errorf("temperature steps must be strictly increasing. Step %d starts at %d after %d", i, step.From, s[i-1].From)
		}
	}
	return nil
}

// At returns the temperature in force at the given turn. Turns before the first step use the
// first step's temperature. An empty schedule is a constant temperature of 1.
func (s Schedule) At(turn int) float32 {
	if len(s) == 0 {
		return 1
	}
	retVal := s[0].Temperature
	for _, step := range s {
		if step.From > turn {
			break
		}
		retVal = step.Temperature
	}
	return retVal
}
