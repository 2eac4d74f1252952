package web

import (
	"errors"
	"fmt"
	"net/http"

	"workoutapi/internal/application/orchestrators"
	"workoutapi/internal/application/pagination"
	"workoutapi/internal/domain/registry"
	"workoutapi/internal/domain/trainingcenter"
)

// centroTreinamentoOut is the full training-center representation.
type centroTreinamentoOut struct {
	ID           string `json:"id"`
	Nome         string `json:"nome"`
	Endereco     string `json:"endereco"`
	Proprietario string `json:"proprietario"`
}

func toCentroOut(t trainingcenter.TrainingCenter) centroTreinamentoOut {
	return centroTreinamentoOut{ID: t.ID, Nome: t.Name, Endereco: t.Address, Proprietario: t.Owner}
}

// handleCentrosTreinamento dispatches /centros_treinamento/ requests.
func handleCentrosTreinamento(w http.ResponseWriter, r *http.Request) {
	key := pathKey(r.URL.Path, "/centros_treinamento")
	if key == "" {
		switch r.Method {
		case "POST":
			handleCreateCentroTreinamento(w, r)
		case "GET":
			handleListCentrosTreinamento(w, r)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
		return
	}

	switch r.Method {
	case "GET":
		handleGetCentroTreinamento(w, r, key)
	case "PATCH":
		handleUpdateCentroTreinamento(w, r, key)
	case "DELETE":
		handleDeleteCentroTreinamento(w, r, key)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// handleCreateCentroTreinamento handles POST /centros_treinamento/.
func handleCreateCentroTreinamento(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Nome         string `json:"nome"`
		Endereco     string `json:"endereco"`
		Proprietario string `json:"proprietario"`
	}
	if err := strictDecode(r, &input); err != nil {
		writeDetail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	deps := orchestrators.RegisterTrainingCenterDeps{TrainingCenterStore: stores.TrainingCenterStore}
	t, err := orchestrators.ExecuteRegisterTrainingCenter(r.Context(), orchestrators.RegisterTrainingCenterInput{
		Nome:         input.Nome,
		Endereco:     input.Endereco,
		Proprietario: input.Proprietario,
	}, deps)
	if err != nil {
		var conflict *registry.ConflictError
		var persistence *registry.PersistenceError
		switch {
		case errors.As(err, &conflict):
			writeDetail(w, http.StatusSeeOther, fmt.Sprintf("Centro de treinamento com mesmo nome: %s", conflict.Value))
		case errors.As(err, &persistence):
			internalError(w, err)
		default:
			writeDetail(w, http.StatusUnprocessableEntity, err.Error())
		}
		return
	}

	writeJSON(w, http.StatusCreated, toCentroOut(t))
}

// handleListCentrosTreinamento handles GET /centros_treinamento/.
func handleListCentrosTreinamento(w http.ResponseWriter, r *http.Request) {
	centers, err := stores.TrainingCenterStore.List(r.Context())
	if err != nil {
		internalError(w, err)
		return
	}

	items := make([]centroTreinamentoOut, 0, len(centers))
	for _, t := range centers {
		items = append(items, toCentroOut(t))
	}
	page := pagination.Paginate(items, pagination.Parse(r.URL.Query(), MaxPageLimit))
	writeJSON(w, http.StatusOK, page)
}

// handleGetCentroTreinamento handles GET /centros_treinamento/{id}.
func handleGetCentroTreinamento(w http.ResponseWriter, r *http.Request, id string) {
	t, err := stores.TrainingCenterStore.GetByID(r.Context(), id)
	if err != nil {
		if registry.IsNotFound(err) {
			writeDetail(w, http.StatusNotFound, fmt.Sprintf("Centro de treinamento não encontrado no id: %s", id))
			return
		}
		internalError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toCentroOut(t))
}

// handleUpdateCentroTreinamento handles PATCH /centros_treinamento/{id}.
// Absent fields keep their stored values.
func handleUpdateCentroTreinamento(w http.ResponseWriter, r *http.Request, id string) {
	var input struct {
		Nome         *string `json:"nome"`
		Endereco     *string `json:"endereco"`
		Proprietario *string `json:"proprietario"`
	}
	if err := strictDecode(r, &input); err != nil {
		writeDetail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	deps := orchestrators.UpdateTrainingCenterDeps{TrainingCenterStore: stores.TrainingCenterStore}
	t, err := orchestrators.ExecuteUpdateTrainingCenter(r.Context(), orchestrators.UpdateTrainingCenterInput{
		ID: id,
		Fields: orchestrators.UpdateTrainingCenterFields{
			Nome:         input.Nome,
			Endereco:     input.Endereco,
			Proprietario: input.Proprietario,
		},
	}, deps)
	if err != nil {
		var conflict *registry.ConflictError
		var persistence *registry.PersistenceError
		switch {
		case registry.IsNotFound(err):
			writeDetail(w, http.StatusNotFound, fmt.Sprintf("Centro de treinamento não encontrado no id: %s", id))
		case errors.As(err, &conflict):
			writeDetail(w, http.StatusSeeOther, fmt.Sprintf("Centro de treinamento com mesmo nome: %s", conflict.Value))
		case errors.As(err, &persistence):
			internalError(w, err)
		default:
			writeDetail(w, http.StatusUnprocessableEntity, err.Error())
		}
		return
	}

	writeJSON(w, http.StatusOK, toCentroOut(t))
}

// handleDeleteCentroTreinamento handles DELETE /centros_treinamento/{id}.
func handleDeleteCentroTreinamento(w http.ResponseWriter, r *http.Request, id string) {
	deps := orchestrators.DeleteTrainingCenterDeps{TrainingCenterStore: stores.TrainingCenterStore}
	err := orchestrators.ExecuteDeleteTrainingCenter(r.Context(), orchestrators.DeleteTrainingCenterInput{ID: id}, deps)
	if err != nil {
		switch {
		case registry.IsNotFound(err):
			writeDetail(w, http.StatusNotFound, fmt.Sprintf("Centro de treinamento não encontrado no id: %s", id))
		case registry.IsConflict(err):
			writeDetail(w, http.StatusConflict, fmt.Sprintf("Centro de treinamento em uso por um atleta: %s", id))
		default:
			internalError(w, err)
		}
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
