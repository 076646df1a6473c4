package transport

import (
	"go.opentelemetry.io/otel/metric"

	intotel "github.com/weixuan2008/tele-sales-token-server/internal/otel"
)

var (
	// Token metrics
	rtcIssued      metric.Int64Counter
	rtmIssued      metric.Int64Counter
	combinedIssued metric.Int64Counter

	// Error metrics
	validationFailed metric.Int64Counter
	signFailed       metric.Int64Counter

	// Latency
	requestDuration metric.Float64Histogram
)

func init() {
	f := intotel.NewFactory("token.server", intotel.PrefixTokenServer)

	f.Int64Counter(&rtcIssued, "rtc.issued",
		metric.WithDescription("RTC tokens issued"))

	f.Int64Counter(&rtmIssued, "rtm.issued",
		metric.WithDescription("RTM tokens issued"))

	f.Int64Counter(&combinedIssued, "combined.issued",
		metric.WithDescription("Combined RTC+RTM token pairs issued"))

	f.Int64Counter(&validationFailed, "validation.failed",
		metric.WithDescription("Requests rejected by parameter validation"))

	f.Int64Counter(&signFailed, "sign.failed",
		metric.WithDescription("Token signing failures"))

	f.Float64Histogram(&requestDuration, "request.duration",
		metric.WithDescription("Token request handling duration"),
		metric.WithUnit("s"))
}
