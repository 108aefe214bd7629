package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/Abdurahmanit/marketplace-cli/internal/platform/logger"
)

// Manager holds the Prometheus metrics for the command pipeline.
type Manager struct {
	Registry             *prometheus.Registry
	CommandsTotal        *prometheus.CounterVec // by command keyword
	CommandErrorsTotal   *prometheus.CounterVec // by command keyword
	UnknownCommandsTotal prometheus.Counter
	CommandLatency       *prometheus.HistogramVec // by command keyword
}

// NewManager initializes and registers the command metrics on a private
// registry so tests can gather them in isolation.
func NewManager(namespace string) *Manager {
	registry := prometheus.NewRegistry()

	commandsTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "commands_total",
		Help:      "Total number of commands dispatched, by command keyword.",
	}, []string{"command"})
	commandErrorsTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "command_errors_total",
		Help:      "Total number of commands that produced an error result, by command keyword.",
	}, []string{"command"})
	unknownCommandsTotal := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "unknown_commands_total",
		Help:      "Total number of lines naming a command that is not in the dispatch table.",
	})
	commandLatency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "command_latency_seconds",
		Help:      "Latency of command execution, by command keyword.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"command"})

	registry.MustRegister(
		commandsTotal,
		commandErrorsTotal,
		unknownCommandsTotal,
		commandLatency,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return &Manager{
		Registry:             registry,
		CommandsTotal:        commandsTotal,
		CommandErrorsTotal:   commandErrorsTotal,
		UnknownCommandsTotal: unknownCommandsTotal,
		CommandLatency:       commandLatency,
	}
}

// StartServer exposes /metrics on the given port in a background goroutine.
// An empty port disables the server entirely, which is the default for an
// interactive session.
func (m *Manager) StartServer(port string, appLogger *logger.Logger) {
	if port == "" {
		appLogger.Info("Metrics server port not configured, server will not start")
		return
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{}))

	appLogger.Info("Metrics server starting", zap.String("port", port), zap.String("path", "/metrics"))
	go func() {
		server := &http.Server{Addr: ":" + port, Handler: mux}
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Metrics server stopped", zap.Error(err))
		}
	}()
}
