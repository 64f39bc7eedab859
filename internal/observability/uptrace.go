package observability

import (
	"context"
	"strings"

	"github.com/riskibarqy/paddle-roster/internal/config"
	"github.com/riskibarqy/paddle-roster/internal/platform/logging"
	"github.com/uptrace/uptrace-go/uptrace"
)

func noopShutdown(context.Context) error { return nil }

// InitUptrace installs the global tracer provider that the HTTP middleware,
// usecase spans and otelsql report into. The returned func flushes pending
// spans before shutting the exporter down, so a CLI sync that exits right
// after its run still ships its trace.
func InitUptrace(cfg config.Config, logger *logging.Logger) (func(context.Context) error, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if !cfg.UptraceEnabled || strings.TrimSpace(cfg.UptraceDSN) == "" {
		logger.Debug("uptrace disabled", "enabled", cfg.UptraceEnabled)
		return noopShutdown, nil
	}

	uptrace.ConfigureOpentelemetry(
		uptrace.WithDSN(cfg.UptraceDSN),
		uptrace.WithServiceName(cfg.ServiceName),
		uptrace.WithServiceVersion(cfg.ServiceVersion),
		uptrace.WithDeploymentEnvironment(cfg.AppEnv),
	)
	logger.Info("uptrace enabled", "service_name", cfg.ServiceName, "environment", cfg.AppEnv)

	return func(ctx context.Context) error {
		if err := uptrace.ForceFlush(ctx); err != nil {
			logger.WarnContext(ctx, "uptrace flush failed", "error", err)
		}
		return uptrace.Shutdown(ctx)
	}, nil
}
