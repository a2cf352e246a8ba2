package simulate

import (
	"context"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "github.com/janpfeifer/antsGo/internal/simulate"

// metrics reported through the global OpenTelemetry meter provider. They are no-ops
// unless the binary installs a provider.
type metrics struct {
	games metric.Int64Counter
	turns metric.Int64Histogram
}

func newMetrics() (*metrics, error) {
	meter := otel.Meter(instrumentationName)
	m := &metrics{}
	var err error
	m.games, err = meter.Int64Counter(
		"antsgo.simulate.games",
		metric.WithDescription("Games played, by outcome"),
	)
	if err != nil {
		return nil, errors.Wrap(err, "creating games counter")
	}
	m.turns, err = meter.Int64Histogram(
		"antsgo.simulate.turns",
		metric.WithDescription("Number of turns played per game"),
	)
	if err != nil {
		return nil, errors.Wrap(err, "creating turns histogram")
	}
	return m, nil
}

func (m *metrics) record(ctx context.Context, r Result) {
	outcome := metric.WithAttributes(attribute.String("outcome", r.Outcome.String()))
	m.games.Add(ctx, 1, outcome)
	m.turns.Record(ctx, int64(r.Turns), outcome)
}
