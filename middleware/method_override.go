package middleware

import (
	"net/http"
	"strings"
)

// MethodOverrideField is the form field HTML forms use to tunnel a method.
const MethodOverrideField = "_method"

// MethodOverride rewrites POST requests carrying _method=PUT|PATCH|DELETE
// before routing, since gin matches routes ahead of any middleware.
func MethodOverride(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			method := strings.ToUpper(r.Header.Get("X-HTTP-Method-Override"))
			if method == "" {
				method = strings.ToUpper(r.PostFormValue(MethodOverrideField))
			}
			switch method {
			case http.MethodPut, http.MethodPatch, http.MethodDelete:
				r.Method = method
			}
		}
		next.ServeHTTP(w, r)
	})
}
