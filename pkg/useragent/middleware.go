package useragent

import "net/http"

// Middleware classifies the request's User-Agent header once and stores
// the result in the request context.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := WithContext(r.Context(), New(r.UserAgent()))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
