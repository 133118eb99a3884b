package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sergeywhite86/fly-analyzer/internal/app/dto"
	"github.com/sergeywhite86/fly-analyzer/internal/pkg/ticket"
)

// TicketLoader matches ticket.LoadTickets; injected so tests can run the
// pipeline without a real file.
type TicketLoader func(ctx context.Context, path string, filter *dto.RouteFilter) ([]ticket.Ticket, error)

// ReportService runs the analysis pipeline: load, aggregate durations,
// compute price statistics. Every step consumes the previous step's
// output by value, nothing is retained between runs.
type ReportService struct {
	Loader TicketLoader
}

func NewReportService() *ReportService {
	return &ReportService{
		Loader: ticket.LoadTickets,
	}
}

// BuildReport produces the aggregate report for one request. A fatal load
// failure is returned as is; an empty working set is a valid report, not
// an error.
func (s *ReportService) BuildReport(ctx context.Context, req dto.ReportRequest) (dto.TicketReport, error) {
	tickets, err := s.Loader(ctx, req.FilePath, req.Filter())
	if err != nil {
		return dto.TicketReport{}, fmt.Errorf("load tickets: %w", err)
	}

	slog.DebugContext(ctx, "tickets loaded",
		slog.Int("count", len(tickets)),
		slog.String("file", req.FilePath))

	rep := dto.TicketReport{
		TotalTickets: len(tickets),
	}

	if len(tickets) == 0 {
		return rep, nil
	}

	rep.MinFlightTimes = ticket.MinFlightTimes(ctx, tickets)

	if stats, ok := ticket.ComputePriceStats(ticket.SortedPrices(tickets)); ok {
		rep.PriceStats = &dto.PriceStats{
			Mean:       stats.Mean,
			Median:     stats.Median,
			Difference: stats.Difference,
		}
	}

	return rep, nil
}
