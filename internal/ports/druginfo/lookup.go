package druginfo

import "context"

// Info es la ficha normalizada de un medicamento en el catálogo externo.
type Info struct {
	Name         string   `json:"name"`
	BrandName    string   `json:"brand_name,omitempty"`
	Manufacturer string   `json:"manufacturer"`
	Warnings     []string `json:"warnings"`
	Purpose      []string `json:"purpose"`
}

type Outcome int

const (
	OutcomeSuccess Outcome = iota
	OutcomeUpstreamError
	OutcomeNotConfigured
)

// Result es el resultado de una consulta: éxito, error upstream o sin configurar.
// Nunca se propaga un error: el handler decide por Outcome.
type Result struct {
	Outcome Outcome
	Info    Info
	Message string
}

func Success(info Info) Result {
	return Result{Outcome: OutcomeSuccess, Info: info}
}

func UpstreamError(msg string) Result {
	return Result{Outcome: OutcomeUpstreamError, Message: msg}
}

func NotConfigured() Result {
	return Result{Outcome: OutcomeNotConfigured, Message: "drug info lookup not configured"}
}

// Lookup consulta un catálogo externo por nombre de droga.
type Lookup interface {
	Lookup(ctx context.Context, drugName string) Result
}
