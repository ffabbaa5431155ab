package balance

import (
	"sort"

	"github.com/ledgerkit/bankrec/internal/movement"
)

// Line is one movement with the running balance after applying it.
type Line struct {
	Movement movement.Movement
	Balance  int64
}

// Projection is the derived running-balance view for one period. It is
// a report, never an input to matching decisions.
type Projection struct {
	Opening int64
	Closing int64
	Lines   []Line
}

// Project folds the movements over the opening balance, emitting one
// line per movement with its post-movement running balance. Movements
// are ordered by (date, creation order) ascending; the closing balance
// equals the opening balance when the period is empty.
func Project(opening int64, movements []movement.Movement) Projection {
	ordered := make([]movement.Movement, len(movements))
	copy(ordered, movements)

	sort.SliceStable(ordered, func(i, j int) bool {
		if !ordered[i].Date.Equal(ordered[j].Date) {
			return ordered[i].Date.Before(ordered[j].Date)
		}

		return ordered[i].CreatedAt.Before(ordered[j].CreatedAt)
	})

	projection := Projection{
		Opening: opening,
		Closing: opening,
		Lines:   make([]Line, 0, len(ordered)),
	}

	running := opening
	for _, mv := range ordered {
		running += mv.Signed()
		projection.Lines = append(projection.Lines, Line{Movement: mv, Balance: running})
	}

	projection.Closing = running

	return projection
}
