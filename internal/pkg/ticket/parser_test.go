//go:build unit

package ticket

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/sergeywhite86/fly-analyzer/internal/app/dto"
	"github.com/stretchr/testify/assert"
)

func TestParseRecord_Closure(t *testing.T) {
	parseRequest := func(raw dto.RawTicket, want Ticket, wantField string) func(t *testing.T) {
		return func(t *testing.T) {
			got, err := ParseRecord(raw)

			if wantField != "" {
				var parseErr *ParseError
				if !errors.As(err, &parseErr) {
					t.Fatalf("expected *ParseError, got %v", err)
				}
				assert.Equal(t, wantField, parseErr.Field)
				assert.Equal(t, raw.Carrier, parseErr.Carrier)
				return
			}

			assert.NoError(t, err)
			diff := cmp.Diff(want, got)
			if diff != "" {
				t.Fatalf("ParseRecord result mismatch (-want +got):\n%s", diff)
			}
		}
	}

	t.Run("valid_record", parseRequest(dto.RawTicket{
		Carrier:       "SU",
		DepartureDate: "12.05.18",
		DepartureTime: "16:20",
		ArrivalDate:   "12.05.18",
		ArrivalTime:   "22:10",
		Price:         json.RawMessage("12400"),
	}, Ticket{
		Carrier:     "SU",
		DepartureAt: time.Date(2018, time.May, 12, 16, 20, 0, 0, time.UTC),
		ArrivalAt:   time.Date(2018, time.May, 12, 22, 10, 0, 0, time.UTC),
		Price:       12400,
	}, ""))

	t.Run("single_digit_hour", parseRequest(dto.RawTicket{
		Carrier:       "S7",
		DepartureDate: "12.05.18",
		DepartureTime: "9:40",
		ArrivalDate:   "12.05.18",
		ArrivalTime:   "11:20",
		Price:         json.RawMessage("13100"),
	}, Ticket{
		Carrier:     "S7",
		DepartureAt: time.Date(2018, time.May, 12, 9, 40, 0, 0, time.UTC),
		ArrivalAt:   time.Date(2018, time.May, 12, 11, 20, 0, 0, time.UTC),
		Price:       13100,
	}, ""))

	t.Run("malformed_departure_date", parseRequest(dto.RawTicket{
		Carrier:       "TK",
		DepartureDate: "2018-05-12",
		DepartureTime: "16:20",
		ArrivalDate:   "12.05.18",
		ArrivalTime:   "22:10",
	}, Ticket{}, "departure"))

	t.Run("malformed_arrival_time", parseRequest(dto.RawTicket{
		Carrier:       "TK",
		DepartureDate: "12.05.18",
		DepartureTime: "16:20",
		ArrivalDate:   "12.05.18",
		ArrivalTime:   "25:70",
	}, Ticket{}, "arrival"))

	t.Run("negative_price_rejected", parseRequest(dto.RawTicket{
		Carrier:       "BA",
		DepartureDate: "12.05.18",
		DepartureTime: "16:20",
		ArrivalDate:   "12.05.18",
		ArrivalTime:   "22:10",
		Price:         json.RawMessage("-5"),
	}, Ticket{}, "price"))

	t.Run("negative_string_price_rejected", parseRequest(dto.RawTicket{
		Carrier:       "BA",
		DepartureDate: "12.05.18",
		DepartureTime: "16:20",
		ArrivalDate:   "12.05.18",
		ArrivalTime:   "22:10",
		Price:         json.RawMessage(`"-5"`),
	}, Ticket{}, "price"))

	t.Run("non_numeric_price_rejected", parseRequest(dto.RawTicket{
		Carrier:       "BA",
		DepartureDate: "12.05.18",
		DepartureTime: "16:20",
		ArrivalDate:   "12.05.18",
		ArrivalTime:   "22:10",
		Price:         json.RawMessage(`"free"`),
	}, Ticket{}, "price"))

	t.Run("missing_price_defaults_to_zero", parseRequest(dto.RawTicket{
		Carrier:       "UT",
		DepartureDate: "12.05.18",
		DepartureTime: "16:20",
		ArrivalDate:   "12.05.18",
		ArrivalTime:   "22:10",
	}, Ticket{
		Carrier:     "UT",
		DepartureAt: time.Date(2018, time.May, 12, 16, 20, 0, 0, time.UTC),
		ArrivalAt:   time.Date(2018, time.May, 12, 22, 10, 0, 0, time.UTC),
		Price:       0,
	}, ""))

	t.Run("quoted_price_accepted", parseRequest(dto.RawTicket{
		Carrier:       "SU",
		DepartureDate: "12.05.18",
		DepartureTime: "16:20",
		ArrivalDate:   "12.05.18",
		ArrivalTime:   "22:10",
		Price:         json.RawMessage(`"21032.50"`),
	}, Ticket{
		Carrier:     "SU",
		DepartureAt: time.Date(2018, time.May, 12, 16, 20, 0, 0, time.UTC),
		ArrivalAt:   time.Date(2018, time.May, 12, 22, 10, 0, 0, time.UTC),
		Price:       21032.50,
	}, ""))

	// empty carrier is a valid grouping key, not a rejection
	t.Run("empty_carrier_accepted", parseRequest(dto.RawTicket{
		DepartureDate: "12.05.18",
		DepartureTime: "16:20",
		ArrivalDate:   "12.05.18",
		ArrivalTime:   "22:10",
		Price:         json.RawMessage("100"),
	}, Ticket{
		DepartureAt: time.Date(2018, time.May, 12, 16, 20, 0, 0, time.UTC),
		ArrivalAt:   time.Date(2018, time.May, 12, 22, 10, 0, 0, time.UTC),
		Price:       100,
	}, ""))
}
