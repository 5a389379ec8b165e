package throttle

import (
	"net/http"
	"time"

	"github.com/zeptools/findoc-core/requests"
	"github.com/zeptools/findoc-core/responses"
)

// PerIPWrapper throttles requests per client IP against one bucket group.
// PDF rendering is CPU-heavy; this keeps a single client from monopolizing
// the worker.
type PerIPWrapper struct {
	Store   *BucketStore[string]
	GroupID string
}

func (t *PerIPWrapper) Wrap(inner http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := requests.GetClientIP(r)
		if !t.Store.Allow(t.GroupID, ip, time.Now()) {
			responses.WriteSimpleErrorJSON(w, http.StatusTooManyRequests, "too many requests")
			return
		}
		inner.ServeHTTP(w, r)
	})
}
