package profile

import (
	"fmt"
	"time"

	"geotutor/internal/difficulty"
	"geotutor/internal/mastery"
)

// TimeLayout is the ISO-8601 layout used for last_login, seconds
// precision, no zone — the format the persisted file has always used.
const TimeLayout = "2006-01-02T15:04:05"

// Profile is the durable per-learner record.
type Profile struct {
	// Mastery is the full-precision BKT estimate, in [0,1].
	Mastery float64 `json:"mastery"`

	// Difficulty is the learner's current level.
	Difficulty difficulty.Level `json:"difficulty"`

	// Attempts counts every graded answer; Correct counts the correct
	// ones. Correct <= Attempts always.
	Attempts int `json:"attempts"`
	Correct  int `json:"correct"`

	// LastLogin is the timestamp of the last profile update, in TimeLayout.
	LastLogin string `json:"last_login"`
}

// NewProfile returns the default record for a first-seen learner.
func NewProfile(now time.Time) *Profile {
	return &Profile{
		Mastery:    mastery.DefaultPrior,
		Difficulty: difficulty.Default,
		LastLogin:  now.Format(TimeLayout),
	}
}

// Touch updates the last-activity timestamp.
func (p *Profile) Touch(now time.Time) {
	p.LastLogin = now.Format(TimeLayout)
}

// Validate checks the invariants the JSON schema cannot express.
func (p *Profile) Validate() error {
	if p.Mastery < 0 || p.Mastery > 1 {
		return fmt.Errorf("mastery %f outside [0,1]", p.Mastery)
	}
	if p.Correct > p.Attempts {
		return fmt.Errorf("correct %d exceeds attempts %d", p.Correct, p.Attempts)
	}
	if _, err := difficulty.Parse(string(p.Difficulty)); err != nil {
		return err
	}
	return nil
}
