package auth

import (
	"net/http"

	"go.uber.org/zap"
)

// Middleware runs the Checker and stores the resulting User in the request
// context. It does NOT block unauthenticated requests: the navigation
// shell degrades by omission, and page content decides its own access
// policy. Infrastructure errors from the checker are logged and treated as
// unauthenticated so public pages keep rendering.
func Middleware(checker Checker, log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if checker == nil {
				next.ServeHTTP(w, r)
				return
			}

			user, err := checker.CheckAuth(r.Context(), r)
			if err != nil {
				log.Warn("auth check failed", zap.Error(err), zap.String("path", r.URL.Path))
			}

			if user != nil {
				r = r.WithContext(WithUser(r.Context(), user))
			}

			next.ServeHTTP(w, r)
		})
	}
}
