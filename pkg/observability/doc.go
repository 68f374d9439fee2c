/*
Package observability exposes session activity as Prometheus metrics.

Metrics are collected through domain.LifecycleHooks, so the interpreter core
stays unaware of the metrics backend.

	m := observability.NewMetrics(prometheus.DefaultRegisterer)
	eng, _ := fable.New("./assets", fable.WithLifecycleHooks(m.Hooks()))
*/
package observability
