// Package metrics provides Prometheus metrics registry and recording utilities.
//
// This package centralizes all application metrics including:
//   - Blog API request metrics (duration, count, payload size)
//   - Cache metrics (list size, fetches, invalidation collapse)
//   - Mutation lifecycle metrics (outcome, duration)
//
// All metrics are automatically registered with the Prometheus default registry
// and exposed via the /metrics endpoint of the watch daemon.
//
// Example usage:
//
//	import "blogdesk/internal/observability/metrics"
//
//	func submit() {
//	    start := time.Now()
//	    // ... run mutation ...
//	    metrics.RecordMutation("create", "success", time.Since(start))
//	}
package metrics
