package httpx

import (
	"encoding/json"
	"errors"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Códigos de error estables para que el cliente distinga causas sin parsear mensajes.
const (
	CodeInvalidJSON    = "invalid_json"
	CodeInvalidInput   = "invalid_input"
	CodeNotFound       = "not_found"
	CodeInternal       = "internal"
	CodeUpstream       = "upstream_error"
	CodeNotConfigured  = "not_configured"
	CodeInvalidRange   = "invalid_range"
	CodeInvalidSched   = "invalid_schedule"
	CodeSchedOverflow  = "schedule_overflow"
	CodeUnknownParent  = "unknown_medication"
	CodeFutureDate     = "future_date"
	CodeMethodNotAllow = "method_not_allowed"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Reportar errores con el nombre JSON del campo
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

type ErrorResponse struct {
	Error  string            `json:"error"`
	Code   string            `json:"code,omitempty"`
	Fields map[string]string `json:"fields,omitempty"`
}

// ValidationError agrupa errores por campo (nombre JSON -> regla que falló).
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string { return "invalid input" }

var ErrInvalidJSON = errors.New("invalid json")

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func WriteError(w http.ResponseWriter, status int, code, msg string) {
	WriteJSON(w, status, ErrorResponse{Error: msg, Code: code})
}

// DecodeJSON decodifica el body en dst y lo valida con los tags `validate`.
func DecodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return ErrInvalidJSON
	}
	return Validate(dst)
}

// Validate corre el validator sobre un struct ya decodificado.
func Validate(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = fe.Tag()
	}
	return &ValidationError{Fields: fields}
}

// WriteDecodeError traduce el error de DecodeJSON a un 400.
func WriteDecodeError(w http.ResponseWriter, err error) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		WriteJSON(w, http.StatusBadRequest, ErrorResponse{
			Error:  "invalid input",
			Code:   CodeInvalidInput,
			Fields: ve.Fields,
		})
		return
	}
	WriteError(w, http.StatusBadRequest, CodeInvalidJSON, "invalid json")
}

// MethodNotAllowed responde 405 en el mismo formato que el resto de errores.
func MethodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	WriteError(w, http.StatusMethodNotAllowed, CodeMethodNotAllow, "method not allowed")
}

func NotFound(w http.ResponseWriter, _ *http.Request) {
	WriteError(w, http.StatusNotFound, CodeNotFound, "not found")
}
