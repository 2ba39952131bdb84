// Package endpoints serves a small admin HTTP interface next to a running
// scheduling session: a health check and the rendered stats registry.
package endpoints

import (
	"bytes"
	"fmt"
	"io"
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/dssim/dsclient/common/stats"
)

const MetricsPath = "/admin/metrics.json"
const HealthPath = "/health"

func NewAdminServer(addr string, stat stats.StatsReceiver) *AdminServer {
	s := &AdminServer{Addr: addr, Stats: stat, mux: http.NewServeMux()}
	s.mux.HandleFunc("/", helpHandler)
	s.mux.HandleFunc(HealthPath, healthHandler)
	s.mux.HandleFunc(MetricsPath, s.statsHandler)
	return s
}

type AdminServer struct {
	Addr  string
	Stats stats.StatsReceiver
	mux   *http.ServeMux
}

// Serve blocks until the listener fails.
func (s *AdminServer) Serve() error {
	log.Infof("Serving http & stats on %s", s.Addr)
	return http.ListenAndServe(s.Addr, s.mux)
}

func (s *AdminServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func helpHandler(w http.ResponseWriter, r *http.Request) {
	http.Error(w, fmt.Sprintf("Common paths: '%s', '%s'", HealthPath, MetricsPath), http.StatusNotImplemented)
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	fmt.Fprintf(w, "ok")
}

func (s *AdminServer) statsHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")

	pretty := r.URL.Query().Get("pretty") == "true"
	if _, err := io.Copy(w, bytes.NewBuffer(s.Stats.Render(pretty))); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
