package dto

import (
	"encoding/json"

	"github.com/sergeywhite86/fly-analyzer/internal/pkg/exception"
)

// TicketsDocument is the top-level shape of the tickets file.
type TicketsDocument struct {
	Tickets []RawTicket `json:"tickets"`
}

// RawTicket is one ticket record as it appears in the file. Dates and
// times come as separate text fields (dd.MM.yy and H:mm / HH:mm), the
// price as a JSON number or a numeric string.
type RawTicket struct {
	Origin          string          `json:"origin"`
	OriginName      string          `json:"origin_name"`
	Destination     string          `json:"destination"`
	DestinationName string          `json:"destination_name"`
	DepartureDate   string          `json:"departure_date"`
	DepartureTime   string          `json:"departure_time"`
	ArrivalDate     string          `json:"arrival_date"`
	ArrivalTime     string          `json:"arrival_time"`
	Carrier         string          `json:"carrier"`
	Stops           int             `json:"stops"`
	Price           json.RawMessage `json:"price"`
}

// RouteFilter narrows the working set to one origin/destination pair.
// Matching is exact and case sensitive, no normalization.
type RouteFilter struct {
	OriginName      string
	DestinationName string
}

func (f *RouteFilter) Matches(raw RawTicket) bool {
	return raw.OriginName == f.OriginName &&
		raw.DestinationName == f.DestinationName
}

// ReportRequest carries the caller input for one report run.
type ReportRequest struct {
	FilePath        string `json:"file" validate:"required"`
	OriginName      string `json:"origin"`
	DestinationName string `json:"destination"`
}

func (r *ReportRequest) Validate() error {
	if err := ValidateSingleError(r); err != nil {
		return exception.ApplicationError{
			Code:    1,
			Message: err.Error(),
		}
	}

	// the filter is an all-or-nothing pair
	if (r.OriginName == "") != (r.DestinationName == "") {
		return exception.ApplicationError{
			Code:    1,
			Message: "origin and destination must be provided together",
		}
	}

	return nil
}

// Filter returns the route filter encoded in the request, or nil when the
// request asks for an unfiltered run.
func (r *ReportRequest) Filter() *RouteFilter {
	if r.OriginName == "" && r.DestinationName == "" {
		return nil
	}

	return &RouteFilter{
		OriginName:      r.OriginName,
		DestinationName: r.DestinationName,
	}
}

// TicketReport is the aggregate outcome of one run.
type TicketReport struct {
	TotalTickets   int              `json:"total_tickets"`
	MinFlightTimes map[string]int64 `json:"min_flight_times"`
	PriceStats     *PriceStats      `json:"price_stats,omitempty"`
}

// PriceStats holds the price distribution summary. All three values keep
// full floating precision; formatting to two decimals happens at render
// time.
type PriceStats struct {
	Mean       float64 `json:"mean"`
	Median     float64 `json:"median"`
	Difference float64 `json:"difference"`
}
