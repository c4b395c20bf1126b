package doselogs

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"medtracker/internal/domain/adherence"
	"medtracker/internal/platform/httpx"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/doselogs", func(dr chi.Router) {
		dr.Get("/", listDoseLogsHandler(svc))
		dr.Post("/", createDoseLogHandler(svc))

		// Estático: chi lo prioriza sobre /{doseLogID}
		dr.Get("/filter", filterByDateHandler(svc))

		dr.Route("/{doseLogID}", func(ir chi.Router) {
			ir.Get("/", getDoseLogHandler(svc))
			ir.Put("/", updateDoseLogHandler(svc))
			ir.Patch("/", patchDoseLogHandler(svc))
			ir.Delete("/", deleteDoseLogHandler(svc))
		})
	})
}

const takenAtRule = "datetime=2006-01-02T15:04:05Z07:00"

// doseLogRequest es el cuerpo para crear (POST) o reemplazar (PUT) un dose log.
type doseLogRequest struct {
	Medication string `json:"medication" validate:"required"`
	TakenAt    string `json:"taken_at" validate:"required,datetime=2006-01-02T15:04:05Z07:00"` // RFC3339
	WasTaken   *bool  `json:"was_taken"`                                                       // default true
}

type patchDoseLogRequest struct {
	Medication *string `json:"medication" validate:"omitempty,min=1"`
	TakenAt    *string `json:"taken_at" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	WasTaken   *bool   `json:"was_taken"`
}

type doseLogResponse struct {
	ID         string    `json:"id"`
	Medication string    `json:"medication"`
	TakenAt    time.Time `json:"taken_at"`
	WasTaken   bool      `json:"was_taken"`
}

// listDoseLogsHandler godoc
// @Summary Listar dose logs
// @Description Más recientes primero. Filtro opcional por medicamento.
// @Tags doselogs
// @Produce json
// @Param medication query string false "ID del medicamento"
// @Success 200 {array} doseLogResponse
// @Failure 500 {object} httpx.ErrorResponse
// @Router /doselogs [get]
func listDoseLogsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context(), ListFilter{
			MedicationID: r.URL.Query().Get("medication"),
			Order:        OrderNewestFirst,
		})
		if err != nil {
			httpx.WriteError(w, http.StatusInternalServerError, httpx.CodeInternal, "internal error")
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toDoseLogResponses(items))
	}
}

// filterByDateHandler godoc
// @Summary Filtrar dose logs por fecha
// @Description Logs cuya fecha de taken_at cae en [start, end] (inclusive), más antiguos primero.
// @Tags doselogs
// @Produce json
// @Param start query string true "Fecha inicial YYYY-MM-DD"
// @Param end query string true "Fecha final YYYY-MM-DD"
// @Success 200 {array} doseLogResponse
// @Failure 400 {object} httpx.ErrorResponse "start/end ausentes o inválidos"
// @Router /doselogs/filter [get]
func filterByDateHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start, end, err := adherence.ParseDateRange(r.URL.Query())
		if err != nil {
			writeServiceError(w, err)
			return
		}

		items, err := svc.ListByDateRange(r.Context(), start, end)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toDoseLogResponses(items))
	}
}

// createDoseLogHandler godoc
// @Summary Registrar toma
// @Tags doselogs
// @Accept json
// @Produce json
// @Param payload body doseLogRequest true "medication, taken_at (RFC3339), was_taken (default true)"
// @Success 201 {object} doseLogResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Router /doselogs [post]
func createDoseLogHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req doseLogRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteDecodeError(w, err)
			return
		}

		in, err := req.toInput()
		if err != nil {
			httpx.WriteDecodeError(w, err)
			return
		}

		d, err := svc.Create(r.Context(), in)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusCreated, toDoseLogResponse(d))
	}
}

// getDoseLogHandler godoc
// @Summary Obtener dose log
// @Tags doselogs
// @Produce json
// @Param doseLogID path string true "ID del dose log"
// @Success 200 {object} doseLogResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /doselogs/{doseLogID} [get]
func getDoseLogHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d, err := svc.GetByID(r.Context(), chi.URLParam(r, "doseLogID"))
		if err != nil {
			writeServiceError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toDoseLogResponse(d))
	}
}

// updateDoseLogHandler godoc
// @Summary Reemplazar dose log
// @Tags doselogs
// @Accept json
// @Produce json
// @Param doseLogID path string true "ID del dose log"
// @Param payload body doseLogRequest true "Datos completos"
// @Success 200 {object} doseLogResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /doselogs/{doseLogID} [put]
func updateDoseLogHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "doseLogID")
		if _, err := svc.GetByID(r.Context(), id); err != nil {
			writeServiceError(w, err)
			return
		}

		var req doseLogRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteDecodeError(w, err)
			return
		}
		in, err := req.toInput()
		if err != nil {
			httpx.WriteDecodeError(w, err)
			return
		}

		d, err := svc.Update(r.Context(), id, in)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toDoseLogResponse(d))
	}
}

// patchDoseLogHandler godoc
// @Summary Actualizar parcialmente un dose log
// @Tags doselogs
// @Accept json
// @Produce json
// @Param doseLogID path string true "ID del dose log"
// @Param payload body patchDoseLogRequest true "Campos a modificar"
// @Success 200 {object} doseLogResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /doselogs/{doseLogID} [patch]
func patchDoseLogHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "doseLogID")
		if _, err := svc.GetByID(r.Context(), id); err != nil {
			writeServiceError(w, err)
			return
		}

		var req patchDoseLogRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteDecodeError(w, err)
			return
		}

		in := PatchInput{MedicationID: req.Medication, WasTaken: req.WasTaken}
		if req.TakenAt != nil {
			t, err := time.Parse(time.RFC3339, strings.TrimSpace(*req.TakenAt))
			if err != nil {
				httpx.WriteDecodeError(w, &httpx.ValidationError{Fields: map[string]string{"taken_at": takenAtRule}})
				return
			}
			in.TakenAt = &t
		}

		d, err := svc.Patch(r.Context(), id, in)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toDoseLogResponse(d))
	}
}

// deleteDoseLogHandler godoc
// @Summary Borrar dose log
// @Tags doselogs
// @Param doseLogID path string true "ID del dose log"
// @Success 204
// @Failure 404 {object} httpx.ErrorResponse
// @Router /doselogs/{doseLogID} [delete]
func deleteDoseLogHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "doseLogID")); err != nil {
			writeServiceError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func (req doseLogRequest) toInput() (CreateInput, error) {
	t, err := time.Parse(time.RFC3339, strings.TrimSpace(req.TakenAt))
	if err != nil {
		return CreateInput{}, &httpx.ValidationError{Fields: map[string]string{"taken_at": takenAtRule}}
	}
	return CreateInput{
		MedicationID: req.Medication,
		TakenAt:      t,
		WasTaken:     req.WasTaken,
	}, nil
}

func toDoseLogResponse(d DoseLog) doseLogResponse {
	return doseLogResponse{
		ID:         d.ID,
		Medication: d.MedicationID,
		TakenAt:    d.TakenAt,
		WasTaken:   d.WasTaken,
	}
}

func toDoseLogResponses(items []DoseLog) []doseLogResponse {
	out := make([]doseLogResponse, 0, len(items))
	for _, d := range items {
		out = append(out, toDoseLogResponse(d))
	}
	return out
}

func writeServiceError(w http.ResponseWriter, err error) {
	if pe, ok := adherence.IsParamError(err); ok {
		httpx.WriteError(w, http.StatusBadRequest, string(pe.Kind), pe.Message)
		return
	}
	switch {
	case errors.Is(err, ErrNotFound):
		httpx.WriteError(w, http.StatusNotFound, httpx.CodeNotFound, "dose log not found")
	case errors.Is(err, ErrUnknownMedication):
		httpx.WriteJSON(w, http.StatusBadRequest, httpx.ErrorResponse{
			Error:  err.Error(),
			Code:   httpx.CodeUnknownParent,
			Fields: map[string]string{"medication": "exists"},
		})
	case errors.Is(err, ErrInvalidInput):
		httpx.WriteError(w, http.StatusBadRequest, httpx.CodeInvalidInput, err.Error())
	default:
		httpx.WriteError(w, http.StatusInternalServerError, httpx.CodeInternal, "internal error")
	}
}
