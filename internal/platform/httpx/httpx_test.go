package httpx

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Name string `json:"name" validate:"required"`
	Dose *int   `json:"dosage_mg" validate:"required,gt=0"`
}

func TestDecodeJSON(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantFields map[string]string
		wantJSON   bool
	}{
		{name: "ok", body: `{"name":"Aspirin","dosage_mg":100}`},
		{name: "json roto", body: `{"name":`, wantJSON: true},
		{name: "campos faltantes", body: `{}`, wantFields: map[string]string{"name": "required", "dosage_mg": "required"}},
		{name: "dosis no positiva", body: `{"name":"A","dosage_mg":0}`, wantFields: map[string]string{"dosage_mg": "gt"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			var dst sampleRequest
			err := DecodeJSON(r, &dst)

			switch {
			case tt.wantJSON:
				assert.ErrorIs(t, err, ErrInvalidJSON)
			case tt.wantFields != nil:
				var ve *ValidationError
				require.ErrorAs(t, err, &ve)
				assert.Equal(t, tt.wantFields, ve.Fields)
			default:
				require.NoError(t, err)
				assert.Equal(t, "Aspirin", dst.Name)
			}
		})
	}
}

func TestWriteDecodeError(t *testing.T) {
	rr := httptest.NewRecorder()
	WriteDecodeError(rr, &ValidationError{Fields: map[string]string{"name": "required"}})

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, CodeInvalidInput, body.Code)
	assert.Equal(t, "required", body.Fields["name"])

	rr = httptest.NewRecorder()
	WriteDecodeError(rr, ErrInvalidJSON)
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, CodeInvalidJSON, body.Code)
}
