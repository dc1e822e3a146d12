// Package metrics records executor activity in a private Prometheus registry
// and samples Go runtime statistics for the dashboard.
package metrics
