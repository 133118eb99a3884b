package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/sergeywhite86/fly-analyzer/internal/app/config"
	"github.com/sergeywhite86/fly-analyzer/internal/app/dto"
	"github.com/sergeywhite86/fly-analyzer/internal/app/report"
	"github.com/sergeywhite86/fly-analyzer/internal/app/service"
	"github.com/sergeywhite86/fly-analyzer/internal/pkg/exception"
	"github.com/sergeywhite86/fly-analyzer/internal/pkg/i18n"
	"github.com/sergeywhite86/fly-analyzer/internal/pkg/logger"
	"github.com/urfave/cli/v3"
)

func main() {
	cfg := config.MustInitConfig(".env")
	logger.InitStructuredLogger(cfg.LogLevel)

	slog.Debug("config loaded successfully", slog.Any("config", cfg))

	// every run gets its own id so diagnostics of one pass can be grouped
	ctx := context.WithValue(context.Background(), logger.RunIDKey, uuid.NewString())

	app, err := makeApp(cfg)
	if err != nil {
		slog.ErrorContext(ctx, "failed to initialize analyzer", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := app.Run(ctx, os.Args); err != nil {
		slog.ErrorContext(ctx, "analyzer run failed", slog.String("error", err.Error()))

		var appErr exception.ApplicationError
		if errors.As(err, &appErr) {
			os.Exit(appErr.ExitCode())
		}

		os.Exit(1)
	}
}

func makeApp(cfg config.Config) (*cli.Command, error) {
	if err := dto.InitValidator(); err != nil {
		return nil, fmt.Errorf("init validator: %w", err)
	}

	trans, err := i18n.NewTranslations(cfg.Language)
	if err != nil {
		return nil, fmt.Errorf("load translations: %w", err)
	}

	return &cli.Command{
		Name:  "fly-analyzer",
		Usage: "report per-carrier minimum flight times and price statistics from a tickets file",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "file",
				Aliases: []string{"f"},
				Usage:   "path to the tickets JSON file",
				Value:   cfg.Report.TicketsFile,
			},
			&cli.StringFlag{
				Name:  "origin",
				Usage: "origin display name to filter by (requires --destination)",
				Value: cfg.Report.OriginName,
			},
			&cli.StringFlag{
				Name:  "destination",
				Usage: "destination display name to filter by (requires --origin)",
				Value: cfg.Report.DestinationName,
			},
			&cli.StringFlag{
				Name:  "lang",
				Usage: "report language (en, ru)",
				Value: cfg.Language,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if err := trans.SetLanguage(cmd.String("lang")); err != nil {
				return exception.ApplicationError{Code: 1, Message: err.Error()}
			}

			req := dto.ReportRequest{
				FilePath:        cmd.String("file"),
				OriginName:      cmd.String("origin"),
				DestinationName: cmd.String("destination"),
			}
			if err := req.Validate(); err != nil {
				return fmt.Errorf("invalid arguments: %w", err)
			}

			rep, err := service.NewReportService().BuildReport(ctx, req)
			if err != nil {
				return err
			}

			return report.NewRenderer(os.Stdout, trans).Render(rep)
		},
	}, nil
}
