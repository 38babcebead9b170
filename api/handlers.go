package api

import (
	"encoding/json"
	"net/http"

	"github.com/ansel1/merry"
	"github.com/powerman/structlog"

	"github.com/Lazyartist1/Non-Flow-processes-calculator/thermo"
)

var log = structlog.New()

type handler struct {
	table *thermo.Table
}

// calculateRequest is the wire contract consumed from the request layer.
// Mass is a pointer so "not supplied" falls back to 1 kg while an explicit
// zero still fails validation.
type calculateRequest struct {
	ProcessType string            `json:"process_type"`
	Substance   string            `json:"substance"`
	InputData   thermo.StateInput `json:"input_data"`
	Mass        *float64          `json:"mass,omitempty"`
}

type calculateResponse struct {
	Result *thermo.Result `json:"result"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// processInfo rows populate the process-kind select in the UI.
type processInfo struct {
	Key      string `json:"key"`
	Name     string `json:"name"`
	Equation string `json:"equation"`
}

func healthHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

func (h *handler) calculate(w http.ResponseWriter, r *http.Request) {
	var req calculateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, merry.WithHTTPCode(merry.Prepend(err, "decode request"), http.StatusBadRequest))
		return
	}
	kind, err := thermo.ParseKind(req.ProcessType)
	if err != nil {
		writeError(w, r, err)
		return
	}
	mass := 1.0
	if req.Mass != nil {
		mass = *req.Mass
	}
	res, err := h.table.Calculate(kind, req.Substance, req.InputData, mass)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, calculateResponse{Result: res})
}

func (h *handler) substances(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, h.table.List())
}

func (h *handler) processes(w http.ResponseWriter, _ *http.Request) {
	kinds := thermo.Kinds()
	out := make([]processInfo, 0, len(kinds))
	for _, k := range kinds {
		out = append(out, processInfo{Key: string(k), Name: k.DisplayName(), Equation: k.Equation()})
	}
	writeJSON(w, out)
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.PrintErr(err)
	}
}

// writeError maps an engine error to its HTTP status (400 invalid input,
// 404 unknown entity, 500 otherwise) and a single-message JSON body.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := merry.HTTPCode(err)
	log.Err("request failed",
		"method", r.Method,
		"path", r.URL.Path,
		"request_id", RequestID(r),
		"code", code,
		"err", err,
	)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(errorResponse{Error: err.Error()})
}
