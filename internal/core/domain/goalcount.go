package domain

import (
	"encoding/json"
	"errors"
)

// GoalCount is the per-day value of a monthly goal. Current documents store a
// non-negative count; v2 documents stored a plain boolean day-flag. Both shapes
// survive decoding so old exports keep their meaning, and a legacy flag is
// re-encoded as the boolean it came from.
type GoalCount struct {
	Count  int
	Legacy bool
}

// NewGoalCount clamps negative counts to zero.
func NewGoalCount(count int) GoalCount {
	if count < 0 {
		count = 0
	}
	return GoalCount{Count: count}
}

// Done reports whether the day contributed anything at all.
func (g GoalCount) Done() bool {
	return g.Count > 0
}

func (g GoalCount) MarshalJSON() ([]byte, error) {
	if g.Legacy {
		return json.Marshal(g.Count > 0)
	}
	return json.Marshal(g.Count)
}

func (g *GoalCount) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		if n < 0 {
			n = 0
		}
		*g = GoalCount{Count: n}
		return nil
	}

	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		count := 0
		if b {
			count = 1
		}
		*g = GoalCount{Count: count, Legacy: true}
		return nil
	}

	return errors.New("goal count must be a number or a boolean")
}
