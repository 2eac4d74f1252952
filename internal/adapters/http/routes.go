package web

import (
	"net/http"
)

// registerRoutes attaches all endpoint handlers to the mux. Each entity
// handler dispatches collection vs item operations from the path remainder.
func registerRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/categorias", handleCategorias)
	mux.HandleFunc("/categorias/", handleCategorias)
	mux.HandleFunc("/centros_treinamento", handleCentrosTreinamento)
	mux.HandleFunc("/centros_treinamento/", handleCentrosTreinamento)
	mux.HandleFunc("/atletas", handleAtletas)
	mux.HandleFunc("/atletas/", handleAtletas)

	mux.HandleFunc("/healthz", handleHealth)
	mux.HandleFunc("/perf", handlePerfSnapshot)
}
