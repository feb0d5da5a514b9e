package config

import "time"

const (
	envPort         = "PORT"
	envPollInterval = "POLL_INTERVAL"
	envProvider     = "LINEUP_PROVIDER"
	envMetricsPort  = "METRICS_PORT"
	envMetricsOn    = "METRICS_ENABLED"
	envOtelEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService  = "OTEL_SERVICE_NAME"
	envOtelInsecure = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultPort = "4000"
	// Conservative default refresh cadence; lineup pages update a handful of
	// times per hour at most.
	defaultPollInterval = 5 * Duration(time.Minute)
	defaultProvider     = "rotowire"
	defaultMetricsPort  = "9090"
)
