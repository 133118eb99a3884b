package ticket

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/sergeywhite86/fly-analyzer/internal/app/dto"
)

const (
	// dd.MM.yy, two digit year. Go accepts a single digit hour for "15"
	// so both 9:45 and 09:45 parse with one layout.
	dateLayout = "02.01.06"
	timeLayout = "15:04"
)

// Ticket is one fully parsed record. Only tickets whose every required
// field parsed successfully reach the working set.
type Ticket struct {
	Carrier     string
	DepartureAt time.Time
	ArrivalAt   time.Time
	Price       float64
}

// ParseError reports a single-record failure. It names the carrier and
// the offending field so the loader can log a useful diagnostic without
// aborting the run.
type ParseError struct {
	Carrier string
	Field   string
	cause   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("ticket %q: invalid %s: %s", e.Carrier, e.Field, e.cause)
}

func (e *ParseError) Unwrap() error {
	return e.cause
}

// ParseRecord converts one raw record into a Ticket. A failure never
// propagates as a panic; callers decide whether to drop the record.
func ParseRecord(raw dto.RawTicket) (Ticket, error) {
	departureAt, err := parseDateTime(raw.DepartureDate, raw.DepartureTime)
	if err != nil {
		return Ticket{}, &ParseError{Carrier: raw.Carrier, Field: "departure", cause: err}
	}

	arrivalAt, err := parseDateTime(raw.ArrivalDate, raw.ArrivalTime)
	if err != nil {
		return Ticket{}, &ParseError{Carrier: raw.Carrier, Field: "arrival", cause: err}
	}

	price, err := parsePrice(raw.Price)
	if err != nil {
		return Ticket{}, &ParseError{Carrier: raw.Carrier, Field: "price", cause: err}
	}

	return Ticket{
		Carrier:     raw.Carrier,
		DepartureAt: departureAt,
		ArrivalAt:   arrivalAt,
		Price:       price,
	}, nil
}

func parseDateTime(dateStr string, timeStr string) (time.Time, error) {
	date, err := time.Parse(dateLayout, dateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", dateStr, err)
	}

	clock, err := time.Parse(timeLayout, timeStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse time %q: %w", timeStr, err)
	}

	// the file carries zone-naive local date-times; anchor them in UTC so
	// duration stays calendar subtraction, unaffected by host DST rules
	return time.Date(date.Year(), date.Month(), date.Day(),
		clock.Hour(), clock.Minute(), 0, 0, time.UTC), nil
}

// parsePrice accepts a JSON number or a numeric string. A missing field
// defaults to zero, a negative value is rejected.
func parsePrice(raw []byte) (float64, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return 0, nil
	}

	if len(raw) >= 2 && raw[0] == '"' && raw[len(raw)-1] == '"' {
		raw = raw[1 : len(raw)-1]
	}

	price, err := strconv.ParseFloat(string(raw), 64)
	if err != nil {
		return 0, fmt.Errorf("parse price %q: %w", raw, err)
	}

	if math.IsNaN(price) || math.IsInf(price, 0) {
		return 0, fmt.Errorf("price %q is not a finite number", raw)
	}

	if price < 0 {
		return 0, fmt.Errorf("price cannot be negative: %v", price)
	}

	return price, nil
}
