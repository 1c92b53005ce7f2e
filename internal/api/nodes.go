package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/soochol/nodecanvas/internal/catalog"
	"github.com/soochol/nodecanvas/internal/inputs"
)

func (s *Server) listNodes(w http.ResponseWriter, r *http.Request) {
	defs := s.registry.List()
	schemas := make([]catalog.NodeSchema, len(defs))
	for i, def := range defs {
		schemas[i] = def.Schema()
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(schemas)
}

func (s *Server) getNode(w http.ResponseWriter, r *http.Request) {
	def, err := s.registry.Get(chi.URLParam(r, "category"), chi.URLParam(r, "name"))
	if err != nil {
		http.Error(w, "node not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(def.Schema())
}

type enforceRequest struct {
	Values []any `json:"values"`
}

type enforceResponse struct {
	Values []any `json:"values"`
}

func (s *Server) enforceNode(w http.ResponseWriter, r *http.Request) {
	def, err := s.registry.Get(chi.URLParam(r, "category"), chi.URLParam(r, "name"))
	if err != nil {
		http.Error(w, "node not found", http.StatusNotFound)
		return
	}

	var req enforceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	values, err := catalog.EnforceValues(def, req.Values)
	if err != nil {
		if errors.Is(err, inputs.ErrInvalidValue) {
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(enforceResponse{Values: values})
}
