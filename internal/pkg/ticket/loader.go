package ticket

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/sergeywhite86/fly-analyzer/internal/app/dto"
	"github.com/sergeywhite86/fly-analyzer/internal/pkg/exception"
)

var ErrTicketsFileNotFound = exception.ApplicationError{
	Code:    1,
	Message: "tickets file not found",
}

var ErrMalformedTicketsFile = exception.ApplicationError{
	Code:    1,
	Message: "tickets file is malformed",
}

// LoadTickets reads the tickets file and returns every retained, fully
// parsed ticket. A missing file or a structurally invalid document is
// fatal. A record that fails the route filter or record parsing is
// dropped; parse failures are logged per record and never abort the load.
func LoadTickets(ctx context.Context, path string, filter *dto.RouteFilter) ([]Ticket, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrTicketsFileNotFound, path)
		}

		return nil, fmt.Errorf("read tickets file %s: %w", path, err)
	}

	var document dto.TicketsDocument
	if err := json.Unmarshal(data, &document); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMalformedTicketsFile, err)
	}

	if document.Tickets == nil {
		return nil, fmt.Errorf("%w: missing top-level tickets array", ErrMalformedTicketsFile)
	}

	tickets := make([]Ticket, 0, len(document.Tickets))

	for _, raw := range document.Tickets {
		if filter != nil && !filter.Matches(raw) {
			continue
		}

		parsed, err := ParseRecord(raw)
		if err != nil {
			logRecordFailure(ctx, err)
			continue
		}

		tickets = append(tickets, parsed)
	}

	return tickets, nil
}

func logRecordFailure(ctx context.Context, err error) {
	if parseErr, ok := err.(*ParseError); ok {
		slog.WarnContext(ctx, "dropping ticket record",
			slog.String("carrier", parseErr.Carrier),
			slog.String("field", parseErr.Field),
			slog.String("error", parseErr.Error()))
		return
	}

	slog.WarnContext(ctx, "dropping ticket record", slog.String("error", err.Error()))
}
