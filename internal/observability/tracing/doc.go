// Package tracing provides OpenTelemetry tracing integration.
//
// A span is created around every blog API call so a trace shows the full
// list/create/update/delete lifecycle, including retries on the initial
// list fetch.
//
// Example usage:
//
//	func (c *Client) List(ctx context.Context) ([]entity.Blog, error) {
//	    ctx, span := tracing.GetTracer().Start(ctx, "blog.list")
//	    defer span.End()
//	    // ... issue request ...
//	}
package tracing
