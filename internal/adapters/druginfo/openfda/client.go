package openfda

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"medtracker/internal/platform/httpclient"
	"medtracker/internal/ports/druginfo"
)

var (
	ErrNotConfigured = errors.New("openfda client not configured")
	ErrDrugNameEmpty = errors.New("drug_name is required")
	ErrNoResults     = errors.New("no results found")
	ErrUpstream      = errors.New("openfda upstream error")
)

const (
	DefaultBaseURL = "https://api.fda.gov"

	labelPath = "/drug/label.json"
)

// Config del cliente OpenFDA.
// APIKey es opcional: sin key OpenFDA aplica un rate limit más bajo.
type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

type Client struct {
	http   *httpclient.Client
	apiKey string
}

func NewClient(cfg Config) (*Client, error) {
	base := strings.TrimSpace(cfg.BaseURL)
	if base == "" {
		return &Client{}, nil
	}
	hc, err := httpclient.New(base, cfg.Timeout)
	if err != nil {
		return nil, err
	}
	return &Client{
		http:   hc,
		apiKey: strings.TrimSpace(cfg.APIKey),
	}, nil
}

func (c *Client) IsConfigured() bool {
	return c != nil && c.http != nil && c.http.BaseURL != ""
}

// labelResponse es el subconjunto de /drug/label.json que usamos.
type labelResponse struct {
	Results []struct {
		OpenFDA struct {
			GenericName      []string `json:"generic_name"`
			BrandName        []string `json:"brand_name"`
			ManufacturerName []string `json:"manufacturer_name"`
		} `json:"openfda"`
		Warnings []string `json:"warnings"`
		Purpose  []string `json:"purpose"`
	} `json:"results"`
}

// GetDrugInfo busca la etiqueta más relevante por nombre genérico o comercial.
func (c *Client) GetDrugInfo(ctx context.Context, drugName string) (druginfo.Info, error) {
	if !c.IsConfigured() {
		return druginfo.Info{}, ErrNotConfigured
	}
	drugName = strings.TrimSpace(drugName)
	if drugName == "" {
		return druginfo.Info{}, ErrDrugNameEmpty
	}

	q := url.Values{}
	term := quoteTerm(drugName)
	q.Set("search", fmt.Sprintf(`openfda.generic_name:%s openfda.brand_name:%s`, term, term))
	q.Set("limit", "1")
	if c.apiKey != "" {
		q.Set("api_key", c.apiKey)
	}

	var out labelResponse
	if err := c.http.GetJSON(ctx, labelPath, q, nil, &out); err != nil {
		var he *httpclient.HTTPError
		if errors.As(err, &he) && he.StatusCode == 404 {
			// OpenFDA responde 404 cuando la búsqueda no matchea nada
			return druginfo.Info{}, fmt.Errorf("%w for %s", ErrNoResults, drugName)
		}
		return druginfo.Info{}, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	if len(out.Results) == 0 {
		return druginfo.Info{}, fmt.Errorf("%w for %s", ErrNoResults, drugName)
	}

	r := out.Results[0]
	info := druginfo.Info{
		Name:         first(r.OpenFDA.GenericName, first(r.OpenFDA.BrandName, drugName)),
		BrandName:    first(r.OpenFDA.BrandName, ""),
		Manufacturer: first(r.OpenFDA.ManufacturerName, "Unknown"),
		Warnings:     r.Warnings,
		Purpose:      r.Purpose,
	}
	if len(info.Warnings) == 0 {
		info.Warnings = []string{"No warnings available"}
	}
	if len(info.Purpose) == 0 {
		info.Purpose = []string{"Not specified"}
	}
	return info, nil
}

var termEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// quoteTerm arma la frase exacta para el search de OpenFDA escapando \ y ".
func quoteTerm(s string) string {
	return `"` + termEscaper.Replace(s) + `"`
}

func first(xs []string, fallback string) string {
	for _, x := range xs {
		if s := strings.TrimSpace(x); s != "" {
			return s
		}
	}
	return fallback
}
