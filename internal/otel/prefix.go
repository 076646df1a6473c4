package otel

// Metric prefixes for each service
const (
	PrefixTokenServer = "token_server"
)
