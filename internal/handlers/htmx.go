package handlers

import (
	"net/http"
	"strconv"
	"strings"
)

const (
	headerHXRequest     = "HX-Request"
	headerReducedMotion = "Sec-CH-Prefers-Reduced-Motion"
)

// IsHTMX reports whether r was issued by htmx and expects a fragment.
func IsHTMX(r *http.Request) bool {
	return r.Header.Get(headerHXRequest) == "true"
}

// PrefersReducedMotion reads the reduced-motion client hint.
func PrefersReducedMotion(r *http.Request) bool {
	return strings.EqualFold(strings.Trim(r.Header.Get(headerReducedMotion), `" `), "reduce")
}

// clientHints asks browsers for the reduced-motion hint and marks every page
// response as varying on the headers it is built from.
func clientHints(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("Accept-CH", headerReducedMotion)
		h.Add("Vary", headerReducedMotion)
		h.Add("Vary", "Accept-Language")
		h.Add("Vary", headerHXRequest)
		next.ServeHTTP(w, r)
	})
}

// queryFlag treats "1" and "true" as set.
func queryFlag(r *http.Request, name string) bool {
	v := r.URL.Query().Get(name)
	return v == "1" || strings.EqualFold(v, "true")
}

// parseIndex parses a non-negative record index.
func parseIndex(s string) (int, bool) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}
