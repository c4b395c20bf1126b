package adherence

import (
	"errors"
	"net/url"
	"strconv"
	"strings"
	"time"
)

type ParamErrorKind string

const (
	KindDaysRequired    ParamErrorKind = "days_required"
	KindDaysNotInteger  ParamErrorKind = "days_not_integer"
	KindDaysNotPositive ParamErrorKind = "days_not_positive"
	KindInvalidDate     ParamErrorKind = "invalid_date"
)

// ParamError es el rechazo de un query param. Kind permite distinguir la causa.
type ParamError struct {
	Kind    ParamErrorKind
	Message string
}

func (e *ParamError) Error() string { return e.Message }

// IsParamError extrae el *ParamError si err lo envuelve.
func IsParamError(err error) (*ParamError, bool) {
	var pe *ParamError
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}

// ParseDays valida el parámetro "days" en orden estricto:
// presencia, luego entero, luego positivo. Un no-entero nunca llega al chequeo de signo.
func ParseDays(q url.Values) (int, error) {
	raw, present := q["days"]
	if !present || len(raw) == 0 {
		return 0, &ParamError{Kind: KindDaysRequired, Message: "Query parameter 'days' is required."}
	}

	days, err := strconv.Atoi(strings.TrimSpace(raw[0]))
	if err != nil {
		return 0, &ParamError{Kind: KindDaysNotInteger, Message: "Days must be a valid integer."}
	}

	if days <= 0 {
		return 0, &ParamError{Kind: KindDaysNotPositive, Message: "Days must be a positive integer greater than zero."}
	}
	return days, nil
}

// ParseDateRange lee start/end (YYYY-MM-DD). Ambos son obligatorios.
// No compara el orden: eso es ErrInvalidRange y lo decide quien calcula.
func ParseDateRange(q url.Values) (time.Time, time.Time, error) {
	start, errStart := time.Parse(DateLayout, strings.TrimSpace(q.Get("start")))
	end, errEnd := time.Parse(DateLayout, strings.TrimSpace(q.Get("end")))
	if errStart != nil || errEnd != nil {
		return time.Time{}, time.Time{}, &ParamError{
			Kind:    KindInvalidDate,
			Message: "Both 'start' and 'end' query parameters are required and must be valid dates.",
		}
	}
	return start, end, nil
}

// HasDateRange indica si el request trae alguno de start/end.
func HasDateRange(q url.Values) bool {
	_, s := q["start"]
	_, e := q["end"]
	return s || e
}
