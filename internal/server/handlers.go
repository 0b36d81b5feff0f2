package server

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/murphyqm/derelict/internal/chart"
	"github.com/murphyqm/derelict/internal/page"
)

// compose builds a fresh page for the request. On failure it writes a 500
// and returns nil.
func (s *Server) compose(w http.ResponseWriter, r *http.Request) *page.Page {
	p, err := page.Build(s.def)
	if err != nil {
		log.Printf("compose failed request_id=%s err=%v", middleware.GetReqID(r.Context()), err)
		writeError(w, http.StatusInternalServerError, "composing page failed")
		return nil
	}
	log.Printf("page composed request_id=%s render_id=%s sections=%d charts=%d",
		middleware.GetReqID(r.Context()), p.RenderID, len(p.Sections), len(p.Charts))
	return p
}

func (s *Server) handleIndex() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p := s.compose(w, r)
		if p == nil {
			return
		}
		var buf bytes.Buffer
		if err := s.renderer.Render(&buf, p); err != nil {
			log.Printf("render failed render_id=%s err=%v", p.RenderID, err)
			writeError(w, http.StatusInternalServerError, "rendering page failed")
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(buf.Bytes())
	}
}

func (s *Server) handlePageJSON() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p := s.compose(w, r)
		if p == nil {
			return
		}
		writeJSON(w, p)
	}
}

func (s *Server) handleChartSVG() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d, ok := s.chart(w, r)
		if !ok {
			return
		}
		svg, err := chart.SVG(d)
		if err != nil {
			log.Printf("svg failed chart=%s err=%v", d.ID, err)
			writeError(w, http.StatusInternalServerError, "rendering chart failed")
			return
		}
		w.Header().Set("Content-Type", "image/svg+xml")
		w.Write(svg)
	}
}

func (s *Server) handleChartJSON() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d, ok := s.chart(w, r)
		if !ok {
			return
		}
		writeJSON(w, d)
	}
}

// chart looks up the chart named in the URL on a freshly composed page.
func (s *Server) chart(w http.ResponseWriter, r *http.Request) (chart.Descriptor, bool) {
	p := s.compose(w, r)
	if p == nil {
		return chart.Descriptor{}, false
	}
	id := chi.URLParam(r, "id")
	d, ok := p.Chart(id)
	if !ok {
		writeError(w, http.StatusNotFound, "chart not found")
		return chart.Descriptor{}, false
	}
	return d, true
}

func handleAsset(contentType string, data []byte) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", contentType)
		w.Write(data)
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "encoding response failed")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	data, _ := json.Marshal(map[string]string{"error": msg})
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(data)
}
