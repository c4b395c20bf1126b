package medications

import (
	"errors"
	"net/http"
	"time"

	"medtracker/internal/domain/adherence"
	"medtracker/internal/platform/httpx"
	"medtracker/internal/ports/druginfo"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/medications", func(mr chi.Router) {
		mr.Get("/", listMedicationsHandler(svc))
		mr.Post("/", createMedicationHandler(svc))

		mr.Route("/{medicationID}", func(ir chi.Router) {
			ir.Get("/", getMedicationHandler(svc))
			ir.Put("/", updateMedicationHandler(svc))
			ir.Patch("/", patchMedicationHandler(svc))
			ir.Delete("/", deleteMedicationHandler(svc))

			ir.Get("/info", drugInfoHandler(svc))
			ir.Get("/expected-doses", expectedDosesHandler(svc))
			ir.Get("/adherence", adherenceHandler(svc))
		})
	})
}

// medicationRequest es el cuerpo para crear (POST) o reemplazar (PUT) un medicamento.
type medicationRequest struct {
	Name             string `json:"name" validate:"required,max=100"`
	DosageMg         *int   `json:"dosage_mg" validate:"required,gt=0,max=2147483647"`
	PrescribedPerDay *int   `json:"prescribed_per_day" validate:"required,gte=0,max=2147483647"`
}

// patchMedicationRequest: nil = no tocar.
type patchMedicationRequest struct {
	Name             *string `json:"name" validate:"omitempty,min=1,max=100"`
	DosageMg         *int    `json:"dosage_mg" validate:"omitempty,gt=0,max=2147483647"`
	PrescribedPerDay *int    `json:"prescribed_per_day" validate:"omitempty,gte=0,max=2147483647"`
}

// medicationResponse incluye la adherencia observada sobre todo el historial.
type medicationResponse struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	DosageMg         int       `json:"dosage_mg"`
	PrescribedPerDay int       `json:"prescribed_per_day"`
	Adherence        float64   `json:"adherence"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type expectedDosesResponse struct {
	MedicationID  string `json:"medication_id"`
	Days          int    `json:"days"`
	ExpectedDoses int    `json:"expected_doses"`
}

type adherenceResponse struct {
	MedicationID string  `json:"medication_id"`
	Adherence    float64 `json:"adherence"`
	Start        string  `json:"start,omitempty"`
	End          string  `json:"end,omitempty"`
}

// listMedicationsHandler godoc
// @Summary Listar medicamentos
// @Tags medications
// @Produce json
// @Success 200 {array} medicationResponse
// @Failure 500 {object} httpx.ErrorResponse
// @Router /medications [get]
func listMedicationsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			httpx.WriteError(w, http.StatusInternalServerError, httpx.CodeInternal, "internal error")
			return
		}

		out := make([]medicationResponse, 0, len(items))
		for _, m := range items {
			resp, err := toMedicationResponse(r, svc, m)
			if err != nil {
				httpx.WriteError(w, http.StatusInternalServerError, httpx.CodeInternal, "internal error")
				return
			}
			out = append(out, resp)
		}

		httpx.WriteJSON(w, http.StatusOK, out)
	}
}

// createMedicationHandler godoc
// @Summary Crear medicamento
// @Description prescribed_per_day puede ser 0 (sin esquema); dosage_mg debe ser positivo.
// @Tags medications
// @Accept json
// @Produce json
// @Param payload body medicationRequest true "Datos del medicamento"
// @Success 201 {object} medicationResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Router /medications [post]
func createMedicationHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req medicationRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteDecodeError(w, err)
			return
		}

		m, err := svc.Create(r.Context(), req.toInput())
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeMedication(w, r, svc, http.StatusCreated, m)
	}
}

// getMedicationHandler godoc
// @Summary Obtener medicamento
// @Tags medications
// @Produce json
// @Param medicationID path string true "ID del medicamento"
// @Success 200 {object} medicationResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /medications/{medicationID} [get]
func getMedicationHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		m, err := svc.GetByID(r.Context(), chi.URLParam(r, "medicationID"))
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeMedication(w, r, svc, http.StatusOK, m)
	}
}

// updateMedicationHandler godoc
// @Summary Reemplazar medicamento
// @Tags medications
// @Accept json
// @Produce json
// @Param medicationID path string true "ID del medicamento"
// @Param payload body medicationRequest true "Datos completos del medicamento"
// @Success 200 {object} medicationResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /medications/{medicationID} [put]
func updateMedicationHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "medicationID")

		// 404 antes que 400: un id inexistente no depende del body
		if _, err := svc.GetByID(r.Context(), id); err != nil {
			writeServiceError(w, err)
			return
		}

		var req medicationRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteDecodeError(w, err)
			return
		}

		m, err := svc.Update(r.Context(), id, req.toInput())
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeMedication(w, r, svc, http.StatusOK, m)
	}
}

// patchMedicationHandler godoc
// @Summary Actualizar parcialmente un medicamento
// @Tags medications
// @Accept json
// @Produce json
// @Param medicationID path string true "ID del medicamento"
// @Param payload body patchMedicationRequest true "Campos a modificar"
// @Success 200 {object} medicationResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /medications/{medicationID} [patch]
func patchMedicationHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "medicationID")
		if _, err := svc.GetByID(r.Context(), id); err != nil {
			writeServiceError(w, err)
			return
		}

		var req patchMedicationRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteDecodeError(w, err)
			return
		}

		m, err := svc.Patch(r.Context(), id, PatchInput{
			Name:             req.Name,
			DosageMg:         req.DosageMg,
			PrescribedPerDay: req.PrescribedPerDay,
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeMedication(w, r, svc, http.StatusOK, m)
	}
}

// deleteMedicationHandler godoc
// @Summary Borrar medicamento
// @Description Borra también sus dose logs y notas.
// @Tags medications
// @Param medicationID path string true "ID del medicamento"
// @Success 204
// @Failure 404 {object} httpx.ErrorResponse
// @Router /medications/{medicationID} [delete]
func deleteMedicationHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "medicationID")); err != nil {
			writeServiceError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// drugInfoHandler godoc
// @Summary Información externa de la droga
// @Description Consulta OpenFDA por el nombre del medicamento. Errores del proveedor => 502 con {"error": "..."}.
// @Tags medications
// @Produce json
// @Param medicationID path string true "ID del medicamento"
// @Success 200 {object} druginfo.Info
// @Failure 404 {object} httpx.ErrorResponse
// @Failure 502 {object} httpx.ErrorResponse
// @Failure 503 {object} httpx.ErrorResponse
// @Router /medications/{medicationID}/info [get]
func drugInfoHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		m, err := svc.GetByID(r.Context(), chi.URLParam(r, "medicationID"))
		if err != nil {
			writeServiceError(w, err)
			return
		}

		res := svc.DrugInfo(r.Context(), m)
		switch res.Outcome {
		case druginfo.OutcomeSuccess:
			httpx.WriteJSON(w, http.StatusOK, res.Info)
		case druginfo.OutcomeUpstreamError:
			httpx.WriteJSON(w, http.StatusBadGateway, map[string]string{"error": res.Message})
		default:
			httpx.WriteError(w, http.StatusServiceUnavailable, httpx.CodeNotConfigured, res.Message)
		}
	}
}

// expectedDosesHandler godoc
// @Summary Dosis esperadas
// @Description days * prescribed_per_day. days debe ser un entero positivo.
// @Tags medications
// @Produce json
// @Param medicationID path string true "ID del medicamento"
// @Param days query int true "Cantidad de días (> 0)"
// @Success 200 {object} expectedDosesResponse
// @Failure 400 {object} httpx.ErrorResponse "days ausente / no entero / no positivo, o medicamento sin esquema"
// @Failure 404 {object} httpx.ErrorResponse
// @Router /medications/{medicationID}/expected-doses [get]
func expectedDosesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		m, err := svc.GetByID(r.Context(), chi.URLParam(r, "medicationID"))
		if err != nil {
			writeServiceError(w, err)
			return
		}

		days, err := adherence.ParseDays(r.URL.Query())
		if err != nil {
			writeServiceError(w, err)
			return
		}

		expected, err := svc.ExpectedDoses(r.Context(), m.ID, days)
		if err != nil {
			switch {
			case errors.Is(err, adherence.ErrInvalidSchedule):
				httpx.WriteError(w, http.StatusBadRequest, httpx.CodeInvalidSched, "Calculation failed: "+err.Error())
				return
			case errors.Is(err, adherence.ErrScheduleOverflow):
				httpx.WriteError(w, http.StatusBadRequest, httpx.CodeSchedOverflow, "Calculation failed: "+err.Error())
				return
			}
			writeServiceError(w, err)
			return
		}

		httpx.WriteJSON(w, http.StatusOK, expectedDosesResponse{
			MedicationID:  m.ID,
			Days:          days,
			ExpectedDoses: expected,
		})
	}
}

// adherenceHandler godoc
// @Summary Adherencia
// @Description Sin start/end: % tomadas sobre todo el historial. Con start/end (YYYY-MM-DD): tomadas en el rango sobre esperadas por esquema; sin esquema devuelve 0.
// @Tags medications
// @Produce json
// @Param medicationID path string true "ID del medicamento"
// @Param start query string false "Fecha inicial YYYY-MM-DD"
// @Param end query string false "Fecha final YYYY-MM-DD"
// @Success 200 {object} adherenceResponse
// @Failure 400 {object} httpx.ErrorResponse "fechas inválidas o start > end"
// @Failure 404 {object} httpx.ErrorResponse
// @Router /medications/{medicationID}/adherence [get]
func adherenceHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		m, err := svc.GetByID(r.Context(), chi.URLParam(r, "medicationID"))
		if err != nil {
			writeServiceError(w, err)
			return
		}

		q := r.URL.Query()
		if !adherence.HasDateRange(q) {
			rate, err := svc.Adherence(r.Context(), m)
			if err != nil {
				writeServiceError(w, err)
				return
			}
			httpx.WriteJSON(w, http.StatusOK, adherenceResponse{MedicationID: m.ID, Adherence: rate})
			return
		}

		start, end, err := adherence.ParseDateRange(q)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		rate, err := svc.AdherenceOverPeriod(r.Context(), m, start, end)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, adherenceResponse{
			MedicationID: m.ID,
			Adherence:    rate,
			Start:        start.Format(adherence.DateLayout),
			End:          end.Format(adherence.DateLayout),
		})
	}
}

func (req medicationRequest) toInput() CreateInput {
	in := CreateInput{Name: req.Name}
	if req.DosageMg != nil {
		in.DosageMg = *req.DosageMg
	}
	if req.PrescribedPerDay != nil {
		in.PrescribedPerDay = *req.PrescribedPerDay
	}
	return in
}

func writeMedication(w http.ResponseWriter, r *http.Request, svc *Service, status int, m Medication) {
	resp, err := toMedicationResponse(r, svc, m)
	if err != nil {
		httpx.WriteError(w, http.StatusInternalServerError, httpx.CodeInternal, "internal error")
		return
	}
	httpx.WriteJSON(w, status, resp)
}

func toMedicationResponse(r *http.Request, svc *Service, m Medication) (medicationResponse, error) {
	rate, err := svc.Adherence(r.Context(), m)
	if err != nil {
		return medicationResponse{}, err
	}
	return medicationResponse{
		ID:               m.ID,
		Name:             m.Name,
		DosageMg:         m.DosageMg,
		PrescribedPerDay: m.PrescribedPerDay,
		Adherence:        rate,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}, nil
}

func writeServiceError(w http.ResponseWriter, err error) {
	if pe, ok := adherence.IsParamError(err); ok {
		httpx.WriteError(w, http.StatusBadRequest, string(pe.Kind), pe.Message)
		return
	}
	switch {
	case errors.Is(err, ErrNotFound):
		httpx.WriteError(w, http.StatusNotFound, httpx.CodeNotFound, "medication not found")
	case errors.Is(err, ErrInvalidInput):
		httpx.WriteError(w, http.StatusBadRequest, httpx.CodeInvalidInput, err.Error())
	case errors.Is(err, adherence.ErrInvalidSchedule):
		httpx.WriteError(w, http.StatusBadRequest, httpx.CodeInvalidSched, err.Error())
	case errors.Is(err, adherence.ErrScheduleOverflow):
		httpx.WriteError(w, http.StatusBadRequest, httpx.CodeSchedOverflow, err.Error())
	case errors.Is(err, adherence.ErrInvalidRange):
		httpx.WriteError(w, http.StatusBadRequest, httpx.CodeInvalidRange, err.Error())
	default:
		httpx.WriteError(w, http.StatusInternalServerError, httpx.CodeInternal, "internal error")
	}
}
