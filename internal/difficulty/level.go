package difficulty

import "fmt"

// Level is the ordinal difficulty state controlling problem parameter ranges.
type Level string

const (
	Easy   Level = "easy"
	Medium Level = "medium"
	Hard   Level = "hard"
)

// Default is the level assigned to new learners.
const Default = Easy

// Parse converts a stored level string to a Level.
func Parse(s string) (Level, error) {
	switch Level(s) {
	case Easy, Medium, Hard:
		return Level(s), nil
	}
	return "", fmt.Errorf("unknown difficulty level %q", s)
}

// Promote moves one step up, saturating at Hard.
func (l Level) Promote() Level {
	switch l {
	case Easy:
		return Medium
	case Medium:
		return Hard
	}
	return Hard
}

// Demote moves one step down, saturating at Easy.
func (l Level) Demote() Level {
	switch l {
	case Hard:
		return Medium
	case Medium:
		return Easy
	}
	return Easy
}

// Step applies the single-step transition for one graded answer:
// correct promotes, incorrect demotes. No hysteresis, no streak memory.
func (l Level) Step(correct bool) Level {
	if correct {
		return l.Promote()
	}
	return l.Demote()
}
