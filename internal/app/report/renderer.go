package report

import (
	"fmt"
	"io"
	"sort"

	"github.com/sergeywhite86/fly-analyzer/internal/app/dto"
	"github.com/sergeywhite86/fly-analyzer/internal/pkg/i18n"
	"github.com/sergeywhite86/fly-analyzer/internal/pkg/utils"
)

// Renderer writes the human readable report. It owns stdout in the CLI;
// diagnostics never pass through here.
type Renderer struct {
	out   io.Writer
	trans *i18n.Translations
}

func NewRenderer(out io.Writer, trans *i18n.Translations) *Renderer {
	return &Renderer{
		out:   out,
		trans: trans,
	}
}

// Render emits the full report for one run. Carrier lines are sorted by
// carrier name so output is deterministic across runs.
func (r *Renderer) Render(rep dto.TicketReport) error {
	if rep.TotalTickets == 0 {
		return r.println(r.trans.GetMessage("report.no_data", 0, nil))
	}

	if err := r.renderMinFlightTimes(rep.MinFlightTimes); err != nil {
		return err
	}

	return r.renderPriceStats(rep.PriceStats)
}

func (r *Renderer) renderMinFlightTimes(minFlightTimes map[string]int64) error {
	if err := r.println(r.trans.GetMessage("report.min_flight_times_header", 0, nil)); err != nil {
		return err
	}

	if len(minFlightTimes) == 0 {
		return r.println(r.trans.GetMessage("report.no_duration_data", 0, nil))
	}

	carriers := make([]string, 0, len(minFlightTimes))
	for carrier := range minFlightTimes {
		carriers = append(carriers, carrier)
	}
	sort.Strings(carriers)

	for _, carrier := range carriers {
		minutes := minFlightTimes[carrier]
		line := r.trans.GetMessage("report.carrier_line", 0, map[string]interface{}{
			"Carrier":  carrier,
			"Duration": utils.ConvertMinutesToDuration(minutes),
			"Hours":    minutes / 60,
			"Minutes":  minutes % 60,
		})
		if err := r.println(line); err != nil {
			return err
		}
	}

	return nil
}

func (r *Renderer) renderPriceStats(stats *dto.PriceStats) error {
	if err := r.println(""); err != nil {
		return err
	}

	if stats == nil {
		return r.println(r.trans.GetMessage("report.prices_unavailable", 0, nil))
	}

	lines := []struct {
		messageID string
		value     float64
	}{
		{"report.mean_price", stats.Mean},
		{"report.median_price", stats.Median},
		{"report.price_difference", stats.Difference},
	}

	for _, line := range lines {
		msg := r.trans.GetMessage(line.messageID, 0, map[string]interface{}{
			"Value": utils.FormatPrice(line.value),
		})
		if err := r.println(msg); err != nil {
			return err
		}
	}

	return nil
}

func (r *Renderer) println(line string) error {
	if _, err := fmt.Fprintln(r.out, line); err != nil {
		return fmt.Errorf("write report line: %w", err)
	}

	return nil
}
