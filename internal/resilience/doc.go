// Package resilience provides reliability and fault tolerance patterns for the application.
// It includes implementations of circuit breakers and retry logic to keep the blog API
// client usable when the remote service degrades.
//
// The package supports:
//   - Circuit breakers for blog API calls
//   - Retry logic with exponential backoff and jitter (initial list fetch only)
//
// Usage Example:
//
//	cb := circuitbreaker.New(circuitbreaker.BlogAPIConfig())
//	result, err := cb.Execute(func() (interface{}, error) {
//	    return callBlogAPI()
//	})
//
//	err := retry.WithBackoff(ctx, retry.ListFetchConfig(), func() error {
//	    return fetchList()
//	})
package resilience
