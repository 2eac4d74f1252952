package web

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"workoutapi/internal/application/orchestrators"
	"workoutapi/internal/application/pagination"
	"workoutapi/internal/application/projections"
	"workoutapi/internal/domain/registry"
)

// nomeRef is a reference to a category or training center by name, the
// shape used both in athlete creation requests and responses.
type nomeRef struct {
	Nome string `json:"nome"`
}

// atletaOut is the full athlete representation returned on create.
// The create_at field name is a wire contract inherited from the original
// service and deliberately kept, misspelling included.
type atletaOut struct {
	ID                string    `json:"id"`
	CreateAt          time.Time `json:"create_at"`
	Nome              string    `json:"nome"`
	CPF               string    `json:"cpf"`
	Idade             int       `json:"idade"`
	Peso              float64   `json:"peso"`
	Altura            float64   `json:"altura"`
	Sexo              string    `json:"sexo"`
	Categoria         nomeRef   `json:"categoria"`
	CentroTreinamento nomeRef   `json:"centro_treinamento"`
}

// atletaListItem is the listing projection: name plus resolved references.
type atletaListItem struct {
	Nome              string  `json:"nome"`
	Categoria         nomeRef `json:"categoria"`
	CentroTreinamento nomeRef `json:"centro_treinamento"`
}

// atletaSummary is the single-item projection: name and document only.
type atletaSummary struct {
	Nome string `json:"nome"`
	CPF  string `json:"cpf"`
}

// handleAtletas dispatches /atletas/ requests. Item operations are keyed
// by athlete name, not id — preserved from the original service contract.
func handleAtletas(w http.ResponseWriter, r *http.Request) {
	nome := pathKey(r.URL.Path, "/atletas")
	if nome == "" {
		switch r.Method {
		case "POST":
			handleCreateAtleta(w, r)
		case "GET":
			handleListAtletas(w, r)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
		return
	}

	switch r.Method {
	case "GET":
		handleGetAtleta(w, r, nome)
	case "PATCH":
		handleUpdateAtleta(w, r, nome)
	case "DELETE":
		handleDeleteAtleta(w, r, nome)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// handleCreateAtleta handles POST /atletas/, the one multi-step validation
// path: category reference, then training-center reference, then document
// uniqueness, first failure wins.
func handleCreateAtleta(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Nome              string  `json:"nome"`
		CPF               string  `json:"cpf"`
		Idade             int     `json:"idade"`
		Peso              float64 `json:"peso"`
		Altura            float64 `json:"altura"`
		Sexo              string  `json:"sexo"`
		Categoria         nomeRef `json:"categoria"`
		CentroTreinamento nomeRef `json:"centro_treinamento"`
	}
	if err := strictDecode(r, &input); err != nil {
		writeDetail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	deps := orchestrators.RegisterAthleteDeps{
		AthleteStore:        stores.AthleteStore,
		CategoryStore:       stores.CategoryStore,
		TrainingCenterStore: stores.TrainingCenterStore,
	}
	result, err := orchestrators.ExecuteRegisterAthlete(r.Context(), orchestrators.RegisterAthleteInput{
		Nome:              input.Nome,
		CPF:               input.CPF,
		Idade:             input.Idade,
		Peso:              input.Peso,
		Altura:            input.Altura,
		Sexo:              input.Sexo,
		Categoria:         input.Categoria.Nome,
		CentroTreinamento: input.CentroTreinamento.Nome,
	}, deps)
	if err != nil {
		var unresolved *registry.UnresolvedReferenceError
		var conflict *registry.ConflictError
		var persistence *registry.PersistenceError
		switch {
		case errors.As(err, &unresolved):
			if unresolved.Kind == registry.KindCategory {
				writeDetail(w, http.StatusBadRequest, fmt.Sprintf("A categoria %s não foi encontrada.", unresolved.Name))
			} else {
				writeDetail(w, http.StatusBadRequest, fmt.Sprintf("O centro de treinamento %s não foi encontrado.", unresolved.Name))
			}
		case errors.As(err, &conflict):
			writeDetail(w, http.StatusSeeOther, fmt.Sprintf("Já existe um atleta cadastrado com o cpf: %s", conflict.Value))
		case errors.As(err, &persistence):
			writeDetail(w, http.StatusInternalServerError, "Ocorreu um erro ao inserir os dados no banco")
		default:
			writeDetail(w, http.StatusUnprocessableEntity, err.Error())
		}
		return
	}

	a := result.Athlete
	writeJSON(w, http.StatusCreated, atletaOut{
		ID:                a.ID,
		CreateAt:          a.CreatedAt,
		Nome:              a.Name,
		CPF:               a.CPF,
		Idade:             a.Age,
		Peso:              a.Weight,
		Altura:            a.Height,
		Sexo:              a.Sex,
		Categoria:         nomeRef{Nome: result.Category.Name},
		CentroTreinamento: nomeRef{Nome: result.TrainingCenter.Name},
	})
}

// handleListAtletas handles GET /atletas/.
func handleListAtletas(w http.ResponseWriter, r *http.Request) {
	deps := projections.GetAthleteListDeps{
		AthleteStore:        stores.AthleteStore,
		CategoryStore:       stores.CategoryStore,
		TrainingCenterStore: stores.TrainingCenterStore,
	}
	result, err := projections.QueryGetAthleteList(r.Context(), deps)
	if err != nil {
		internalError(w, err)
		return
	}

	items := make([]atletaListItem, 0, len(result.Athletes))
	for _, a := range result.Athletes {
		items = append(items, atletaListItem{
			Nome:              a.Nome,
			Categoria:         nomeRef{Nome: a.Categoria},
			CentroTreinamento: nomeRef{Nome: a.CentroTreinamento},
		})
	}
	page := pagination.Paginate(items, pagination.Parse(r.URL.Query(), MaxPageLimit))
	writeJSON(w, http.StatusOK, page)
}

// handleGetAtleta handles GET /atletas/{nome}.
func handleGetAtleta(w http.ResponseWriter, r *http.Request, nome string) {
	deps := projections.GetAthleteDeps{AthleteStore: stores.AthleteStore}
	summary, err := projections.QueryGetAthlete(r.Context(), projections.GetAthleteQuery{Nome: nome}, deps)
	if err != nil {
		if registry.IsNotFound(err) {
			writeDetail(w, http.StatusNotFound, fmt.Sprintf("Atleta não encontrado com nome: %s", nome))
			return
		}
		internalError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, atletaSummary{Nome: summary.Nome, CPF: summary.CPF})
}

// handleUpdateAtleta handles PATCH /atletas/{nome}. Absent fields keep
// their stored values; references have no update path.
func handleUpdateAtleta(w http.ResponseWriter, r *http.Request, nome string) {
	var input struct {
		Nome   *string  `json:"nome"`
		Idade  *int     `json:"idade"`
		Peso   *float64 `json:"peso"`
		Altura *float64 `json:"altura"`
	}
	if err := strictDecode(r, &input); err != nil {
		writeDetail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	deps := orchestrators.UpdateAthleteDeps{AthleteStore: stores.AthleteStore}
	a, err := orchestrators.ExecuteUpdateAthlete(r.Context(), orchestrators.UpdateAthleteInput{
		Nome: nome,
		Fields: orchestrators.UpdateAthleteFields{
			Nome:   input.Nome,
			Idade:  input.Idade,
			Peso:   input.Peso,
			Altura: input.Altura,
		},
	}, deps)
	if err != nil {
		var persistence *registry.PersistenceError
		switch {
		case registry.IsNotFound(err):
			writeDetail(w, http.StatusNotFound, fmt.Sprintf("Atleta não encontrado com nome: %s", nome))
		case errors.As(err, &persistence):
			internalError(w, err)
		default:
			writeDetail(w, http.StatusUnprocessableEntity, err.Error())
		}
		return
	}

	// Resolve reference names for the full representation.
	cat, err := stores.CategoryStore.GetByID(r.Context(), a.CategoryID)
	if err != nil {
		internalError(w, err)
		return
	}
	center, err := stores.TrainingCenterStore.GetByID(r.Context(), a.TrainingCenterID)
	if err != nil {
		internalError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, atletaOut{
		ID:                a.ID,
		CreateAt:          a.CreatedAt,
		Nome:              a.Name,
		CPF:               a.CPF,
		Idade:             a.Age,
		Peso:              a.Weight,
		Altura:            a.Height,
		Sexo:              a.Sex,
		Categoria:         nomeRef{Nome: cat.Name},
		CentroTreinamento: nomeRef{Nome: center.Name},
	})
}

// handleDeleteAtleta handles DELETE /atletas/{nome}.
func handleDeleteAtleta(w http.ResponseWriter, r *http.Request, nome string) {
	deps := orchestrators.DeleteAthleteDeps{AthleteStore: stores.AthleteStore}
	err := orchestrators.ExecuteDeleteAthlete(r.Context(), orchestrators.DeleteAthleteInput{Nome: nome}, deps)
	if err != nil {
		if registry.IsNotFound(err) {
			writeDetail(w, http.StatusNotFound, fmt.Sprintf("Atleta não encontrado com nome: %s", nome))
			return
		}
		internalError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
