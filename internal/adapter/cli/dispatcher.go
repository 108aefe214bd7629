package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Abdurahmanit/marketplace-cli/internal/platform/logger"
	"github.com/Abdurahmanit/marketplace-cli/internal/platform/metrics"
)

// HandlerFunc is one dispatch target: tokenized arguments in, one result
// string out.
type HandlerFunc func(ctx context.Context, args []string) string

// Dispatcher routes a parsed command keyword to its handler. The keyword to
// handler table is built once at construction; an unknown keyword is an
// explicit result string, never a lookup panic.
type Dispatcher struct {
	handlers map[string]HandlerFunc
	logger   *logger.Logger
	metrics  *metrics.Manager
}

// NewDispatcher builds the command table over the given Handler.
func NewDispatcher(h *Handler, log *logger.Logger, m *metrics.Manager) *Dispatcher {
	return &Dispatcher{
		handlers: map[string]HandlerFunc{
			"REGISTER":         h.Register,
			"CREATE_LISTING":   h.CreateListing,
			"GET_LISTING":      h.GetListing,
			"DELETE_LISTING":   h.DeleteListing,
			"GET_CATEGORY":     h.GetCategory,
			"GET_TOP_CATEGORY": h.GetTopCategory,
		},
		logger:  log.Named("Dispatcher"),
		metrics: m,
	}
}

// Dispatch executes one command and returns its result string verbatim.
// Every invocation is logged with a correlation ID and recorded in the
// command metrics.
func (d *Dispatcher) Dispatch(ctx context.Context, command string, args []string) string {
	handler, ok := d.handlers[command]
	if !ok {
		d.logger.Warn("Unknown command", zap.String("command", command))
		if d.metrics != nil {
			d.metrics.UnknownCommandsTotal.Inc()
		}
		return fmt.Sprintf("Error - unknown command '%s'", command)
	}

	commandID := uuid.NewString()
	start := time.Now()
	d.logger.Debug("Dispatching command",
		zap.String("command", command),
		zap.String("command_id", commandID),
		zap.Int("arg_count", len(args)))

	result := handler(ctx, args)

	duration := time.Since(start)
	isError := strings.HasPrefix(result, "Error - ")
	if d.metrics != nil {
		d.metrics.CommandsTotal.WithLabelValues(command).Inc()
		d.metrics.CommandLatency.WithLabelValues(command).Observe(duration.Seconds())
		if isError {
			d.metrics.CommandErrorsTotal.WithLabelValues(command).Inc()
		}
	}
	if isError {
		d.logger.Info("Command completed with error result",
			zap.String("command", command),
			zap.String("command_id", commandID),
			zap.Duration("duration", duration),
			zap.String("result", result))
	} else {
		d.logger.Debug("Command completed",
			zap.String("command", command),
			zap.String("command_id", commandID),
			zap.Duration("duration", duration))
	}

	return result
}

// Commands returns the known command keywords in no particular order.
func (d *Dispatcher) Commands() []string {
	out := make([]string, 0, len(d.handlers))
	for name := range d.handlers {
		out = append(out, name)
	}
	return out
}
