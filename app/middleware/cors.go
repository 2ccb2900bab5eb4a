package middleware

import "net/http"

// CORS allows the fixed development origin to call the API and short-circuits
// preflight requests. Production deployments serve the frontend same-origin
// and skip this wrapper entirely.
func CORS(allowedOrigin string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// the response differs by caller origin whether or not this one is
		// allowed, so caches must always key on it
		w.Header().Add("Vary", "Origin")
		if origin := r.Header.Get("Origin"); origin == allowedOrigin {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			w.Header().Set("Access-Control-Allow-Methods", "GET,POST,PUT,DELETE,OPTIONS")
		}
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
