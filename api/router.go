package api

import (
	"github.com/gorilla/mux"

	"github.com/Lazyartist1/Non-Flow-processes-calculator/thermo"
)

// NewRouter wires the calculator endpoints around a normalized substance
// table. The table is read-only after startup, so one router serves
// concurrent requests without locking.
func NewRouter(tbl *thermo.Table) *mux.Router {
	h := &handler{table: tbl}

	r := mux.NewRouter()
	r.Use(requestID)
	r.HandleFunc("/health", healthHandler).Methods("GET")
	r.HandleFunc("/calculate", h.calculate).Methods("POST")
	r.HandleFunc("/substances", h.substances).Methods("GET")
	r.HandleFunc("/processes", h.processes).Methods("GET")

	return r
}
