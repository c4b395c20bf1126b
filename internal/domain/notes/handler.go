package notes

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"medtracker/internal/domain/adherence"
	"medtracker/internal/platform/httpx"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes: las notas no se editan, PUT/PATCH sobre /notes/{noteID} responden 405.
func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/notes", func(nr chi.Router) {
		nr.Get("/", listNotesHandler(svc))
		nr.Post("/", createNoteHandler(svc))

		nr.Get("/{noteID}", getNoteHandler(svc))
		nr.Delete("/{noteID}", deleteNoteHandler(svc))
	})
}

type createNoteRequest struct {
	Medication string `json:"medication" validate:"required"`
	Text       string `json:"text" validate:"required"`
	Date       string `json:"date" validate:"required,datetime=2006-01-02"`
}

type noteResponse struct {
	ID         string `json:"id"`
	Medication string `json:"medication"`
	Text       string `json:"text"`
	Date       string `json:"date"`
}

// listNotesHandler godoc
// @Summary Listar notas
// @Tags notes
// @Produce json
// @Param medication query string false "ID del medicamento"
// @Success 200 {array} noteResponse
// @Failure 500 {object} httpx.ErrorResponse
// @Router /notes [get]
func listNotesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context(), r.URL.Query().Get("medication"))
		if err != nil {
			httpx.WriteError(w, http.StatusInternalServerError, httpx.CodeInternal, "internal error")
			return
		}

		out := make([]noteResponse, 0, len(items))
		for _, n := range items {
			out = append(out, toNoteResponse(n))
		}
		httpx.WriteJSON(w, http.StatusOK, out)
	}
}

// createNoteHandler godoc
// @Summary Crear nota
// @Description date en formato YYYY-MM-DD, no puede ser futura.
// @Tags notes
// @Accept json
// @Produce json
// @Param payload body createNoteRequest true "Nota"
// @Success 201 {object} noteResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Router /notes [post]
func createNoteHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createNoteRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteDecodeError(w, err)
			return
		}

		date, err := time.Parse(adherence.DateLayout, strings.TrimSpace(req.Date))
		if err != nil {
			httpx.WriteDecodeError(w, &httpx.ValidationError{Fields: map[string]string{"date": "datetime"}})
			return
		}

		n, err := svc.Create(r.Context(), CreateInput{
			MedicationID: req.Medication,
			Text:         req.Text,
			Date:         date,
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusCreated, toNoteResponse(n))
	}
}

// getNoteHandler godoc
// @Summary Obtener nota
// @Tags notes
// @Produce json
// @Param noteID path string true "ID de la nota"
// @Success 200 {object} noteResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /notes/{noteID} [get]
func getNoteHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		n, err := svc.GetByID(r.Context(), chi.URLParam(r, "noteID"))
		if err != nil {
			writeServiceError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toNoteResponse(n))
	}
}

// deleteNoteHandler godoc
// @Summary Borrar nota
// @Tags notes
// @Param noteID path string true "ID de la nota"
// @Success 204
// @Failure 404 {object} httpx.ErrorResponse
// @Router /notes/{noteID} [delete]
func deleteNoteHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "noteID")); err != nil {
			writeServiceError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func toNoteResponse(n Note) noteResponse {
	return noteResponse{
		ID:         n.ID,
		Medication: n.MedicationID,
		Text:       n.Text,
		Date:       n.Date.Format(adherence.DateLayout),
	}
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		httpx.WriteError(w, http.StatusNotFound, httpx.CodeNotFound, "note not found")
	case errors.Is(err, ErrUnknownMedication):
		httpx.WriteJSON(w, http.StatusBadRequest, httpx.ErrorResponse{
			Error:  err.Error(),
			Code:   httpx.CodeUnknownParent,
			Fields: map[string]string{"medication": "exists"},
		})
	case errors.Is(err, ErrFutureDate):
		httpx.WriteJSON(w, http.StatusBadRequest, httpx.ErrorResponse{
			Error:  err.Error(),
			Code:   httpx.CodeFutureDate,
			Fields: map[string]string{"date": "not_future"},
		})
	case errors.Is(err, ErrInvalidInput):
		httpx.WriteError(w, http.StatusBadRequest, httpx.CodeInvalidInput, err.Error())
	default:
		httpx.WriteError(w, http.StatusInternalServerError, httpx.CodeInternal, "internal error")
	}
}
