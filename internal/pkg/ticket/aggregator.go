package ticket

import (
	"context"
	"log/slog"
)

// minutesPerDay is added once when arrival appears earlier than departure:
// the file encodes overnight flights with an unchanged date field.
const minutesPerDay = 1440

// MinFlightTimes folds the ticket list into a carrier -> minimum flight
// duration mapping, in whole minutes. The input slice is never mutated.
// A ticket whose duration cannot be computed is skipped with a diagnostic;
// an empty result for a non-empty input is a valid, reportable state.
func MinFlightTimes(ctx context.Context, tickets []Ticket) map[string]int64 {
	minFlightTimes := make(map[string]int64, len(tickets))

	for _, t := range tickets {
		duration, ok := flightDuration(t)
		if !ok {
			slog.WarnContext(ctx, "skipping duration computation",
				slog.String("carrier", t.Carrier))
			continue
		}

		current, seen := minFlightTimes[t.Carrier]
		if !seen || duration < current {
			minFlightTimes[t.Carrier] = duration
		}
	}

	return minFlightTimes
}

// flightDuration computes arrival minus departure in whole minutes,
// applying the midnight-rollover heuristic on a negative raw difference.
func flightDuration(t Ticket) (int64, bool) {
	if t.DepartureAt.IsZero() || t.ArrivalAt.IsZero() {
		return 0, false
	}

	minutes := int64(t.ArrivalAt.Sub(t.DepartureAt).Minutes())
	if minutes < 0 {
		minutes += minutesPerDay
	}

	return minutes, true
}
