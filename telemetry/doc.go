// Package telemetry exports scenario playbacks to OpenTelemetry and
// Prometheus through scenario observers.
//
//	reg := prometheus.NewRegistry()
//	r, err := scenario.New("checkout", out,
//	    scenario.WithObserver(
//	        telemetry.NewTracer(otel.Tracer("scenarios")),
//	        telemetry.NewMetrics(reg),
//	    ),
//	)
package telemetry
