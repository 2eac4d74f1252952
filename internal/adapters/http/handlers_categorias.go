package web

import (
	"errors"
	"fmt"
	"net/http"

	"workoutapi/internal/application/orchestrators"
	"workoutapi/internal/application/pagination"
	"workoutapi/internal/domain/registry"
)

// categoriaOut is the full category representation.
type categoriaOut struct {
	ID   string `json:"id"`
	Nome string `json:"nome"`
}

// handleCategorias dispatches /categorias/ requests.
func handleCategorias(w http.ResponseWriter, r *http.Request) {
	key := pathKey(r.URL.Path, "/categorias")
	if key == "" {
		switch r.Method {
		case "POST":
			handleCreateCategoria(w, r)
		case "GET":
			handleListCategorias(w, r)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
		return
	}

	switch r.Method {
	case "GET":
		handleGetCategoria(w, r, key)
	case "DELETE":
		handleDeleteCategoria(w, r, key)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// handleCreateCategoria handles POST /categorias/.
func handleCreateCategoria(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Nome string `json:"nome"`
	}
	if err := strictDecode(r, &input); err != nil {
		writeDetail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	deps := orchestrators.RegisterCategoryDeps{CategoryStore: stores.CategoryStore}
	c, err := orchestrators.ExecuteRegisterCategory(r.Context(), orchestrators.RegisterCategoryInput{Nome: input.Nome}, deps)
	if err != nil {
		var conflict *registry.ConflictError
		var persistence *registry.PersistenceError
		switch {
		case errors.As(err, &conflict):
			writeDetail(w, http.StatusSeeOther, fmt.Sprintf("Categoria com mesmo nome: %s", conflict.Value))
		case errors.As(err, &persistence):
			internalError(w, err)
		default:
			writeDetail(w, http.StatusUnprocessableEntity, err.Error())
		}
		return
	}

	writeJSON(w, http.StatusCreated, categoriaOut{ID: c.ID, Nome: c.Name})
}

// handleListCategorias handles GET /categorias/.
func handleListCategorias(w http.ResponseWriter, r *http.Request) {
	categories, err := stores.CategoryStore.List(r.Context())
	if err != nil {
		internalError(w, err)
		return
	}

	items := make([]categoriaOut, 0, len(categories))
	for _, c := range categories {
		items = append(items, categoriaOut{ID: c.ID, Nome: c.Name})
	}
	page := pagination.Paginate(items, pagination.Parse(r.URL.Query(), MaxPageLimit))
	writeJSON(w, http.StatusOK, page)
}

// handleGetCategoria handles GET /categorias/{id}.
func handleGetCategoria(w http.ResponseWriter, r *http.Request, id string) {
	c, err := stores.CategoryStore.GetByID(r.Context(), id)
	if err != nil {
		if registry.IsNotFound(err) {
			writeDetail(w, http.StatusNotFound, fmt.Sprintf("Categoria não encontrada no id: %s", id))
			return
		}
		internalError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, categoriaOut{ID: c.ID, Nome: c.Name})
}

// handleDeleteCategoria handles DELETE /categorias/{id}.
func handleDeleteCategoria(w http.ResponseWriter, r *http.Request, id string) {
	deps := orchestrators.DeleteCategoryDeps{CategoryStore: stores.CategoryStore}
	err := orchestrators.ExecuteDeleteCategory(r.Context(), orchestrators.DeleteCategoryInput{ID: id}, deps)
	if err != nil {
		switch {
		case registry.IsNotFound(err):
			writeDetail(w, http.StatusNotFound, fmt.Sprintf("Categoria não encontrada no id: %s", id))
		case registry.IsConflict(err):
			writeDetail(w, http.StatusConflict, fmt.Sprintf("Categoria em uso por um atleta: %s", id))
		default:
			internalError(w, err)
		}
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
