// Package gateway implements the edge reverse proxy.
package gateway

import (
	"net/http"
	"net/http/httputil"
	"net/url"
	"strings"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/saatviknagpal/fitness-app/internal/platform/auth"
)

// Routes holds the downstream service addresses.
type Routes struct {
	UserServiceURL     string
	ActivityServiceURL string
}

// New builds the gateway handler: a path-prefix router over two reverse
// proxies, wrapped in bearer-token authentication. Health and metrics paths
// bypass authentication so probes and scrapers work without tokens.
func New(routes Routes, authCfg auth.Config) (http.Handler, error) {
	userTarget, err := url.Parse(routes.UserServiceURL)
	if err != nil {
		return nil, err
	}
	activityTarget, err := url.Parse(routes.ActivityServiceURL)
	if err != nil {
		return nil, err
	}

	userProxy := httputil.NewSingleHostReverseProxy(userTarget)
	activityProxy := httputil.NewSingleHostReverseProxy(activityTarget)

	mux := http.NewServeMux()
	mux.Handle("/api/users/", userProxy)
	mux.Handle("/api/activities", activityProxy)
	mux.Handle("/api/activities/", activityProxy)
	mux.HandleFunc("/healthz", healthz)
	mux.Handle("/metrics", promhttp.Handler())

	skipper := func(r *http.Request) bool {
		return isPublicPath(r.URL.Path)
	}
	middleware := auth.NewMiddleware(authCfg, skipper)
	return middleware.Wrap(mux), nil
}

// healthz reports a simple OK status for container health checks.
func healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// isPublicPath permits unauthenticated access to health and metrics probes.
func isPublicPath(path string) bool {
	return path == "/healthz" || path == "/metrics" || strings.HasPrefix(path, "/healthz/") || strings.HasPrefix(path, "/metrics/")
}
