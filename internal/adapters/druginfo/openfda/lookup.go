package openfda

import (
	"context"
	"errors"

	"medtracker/internal/platform/logger"
	"medtracker/internal/ports/druginfo"
)

// Lookup implementa druginfo.Lookup sobre Client.
// Cualquier error del cliente se vuelve UpstreamError con su mensaje.
type Lookup struct {
	client *Client
	log    logger.Logger
}

func NewLookup(client *Client, log logger.Logger) *Lookup {
	return &Lookup{client: client, log: log}
}

func (l *Lookup) Lookup(ctx context.Context, drugName string) druginfo.Result {
	if l == nil || !l.client.IsConfigured() {
		return druginfo.NotConfigured()
	}

	info, err := l.client.GetDrugInfo(ctx, drugName)
	if err != nil {
		if errors.Is(err, ErrNotConfigured) {
			return druginfo.NotConfigured()
		}
		if l.log != nil {
			l.log.Warn("openfda lookup failed", map[string]any{
				"drug":  drugName,
				"error": err.Error(),
			})
		}
		return druginfo.UpstreamError(err.Error())
	}
	return druginfo.Success(info)
}
