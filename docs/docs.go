// Package docs registra el documento OpenAPI servido en /swagger.
// Se regenera con `swag init -g cmd/api/main.go` a partir de los godoc de los handlers.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/health": {
            "get": {
                "tags": ["health"],
                "summary": "Health check",
                "responses": {"200": {"description": "ok"}}
            }
        },
        "/medications": {
            "get": {
                "produces": ["application/json"],
                "tags": ["medications"],
                "summary": "Listar medicamentos",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/medications.medicationResponse"}}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/httpx.ErrorResponse"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["medications"],
                "summary": "Crear medicamento",
                "parameters": [
                    {"description": "Medicamento", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/medications.medicationRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/medications.medicationResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httpx.ErrorResponse"}}
                }
            }
        },
        "/medications/{medicationID}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["medications"],
                "summary": "Obtener medicamento",
                "parameters": [{"type": "string", "description": "ID del medicamento", "name": "medicationID", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/medications.medicationResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/httpx.ErrorResponse"}}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["medications"],
                "summary": "Reemplazar medicamento",
                "parameters": [
                    {"type": "string", "description": "ID del medicamento", "name": "medicationID", "in": "path", "required": true},
                    {"description": "Datos completos", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/medications.medicationRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/medications.medicationResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httpx.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/httpx.ErrorResponse"}}
                }
            },
            "patch": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["medications"],
                "summary": "Actualizar parcialmente un medicamento",
                "parameters": [
                    {"type": "string", "description": "ID del medicamento", "name": "medicationID", "in": "path", "required": true},
                    {"description": "Campos a modificar", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/medications.patchMedicationRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/medications.medicationResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httpx.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/httpx.ErrorResponse"}}
                }
            },
            "delete": {
                "tags": ["medications"],
                "summary": "Borrar medicamento (y sus dose logs y notas)",
                "parameters": [{"type": "string", "description": "ID del medicamento", "name": "medicationID", "in": "path", "required": true}],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/httpx.ErrorResponse"}}
                }
            }
        },
        "/medications/{medicationID}/info": {
            "get": {
                "produces": ["application/json"],
                "tags": ["medications"],
                "summary": "Información externa de la droga",
                "parameters": [{"type": "string", "description": "ID del medicamento", "name": "medicationID", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/druginfo.Info"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/httpx.ErrorResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/httpx.ErrorResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/httpx.ErrorResponse"}}
                }
            }
        },
        "/medications/{medicationID}/expected-doses": {
            "get": {
                "produces": ["application/json"],
                "tags": ["medications"],
                "summary": "Dosis esperadas",
                "parameters": [
                    {"type": "string", "description": "ID del medicamento", "name": "medicationID", "in": "path", "required": true},
                    {"type": "integer", "description": "Cantidad de días (> 0)", "name": "days", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/medications.expectedDosesResponse"}},
                    "400": {"description": "days ausente / no entero / no positivo, o medicamento sin esquema", "schema": {"$ref": "#/definitions/httpx.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/httpx.ErrorResponse"}}
                }
            }
        },
        "/medications/{medicationID}/adherence": {
            "get": {
                "produces": ["application/json"],
                "tags": ["medications"],
                "summary": "Adherencia",
                "parameters": [
                    {"type": "string", "description": "ID del medicamento", "name": "medicationID", "in": "path", "required": true},
                    {"type": "string", "description": "Fecha inicial YYYY-MM-DD", "name": "start", "in": "query"},
                    {"type": "string", "description": "Fecha final YYYY-MM-DD", "name": "end", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/medications.adherenceResponse"}},
                    "400": {"description": "fechas inválidas o start > end", "schema": {"$ref": "#/definitions/httpx.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/httpx.ErrorResponse"}}
                }
            }
        },
        "/doselogs": {
            "get": {
                "produces": ["application/json"],
                "tags": ["doselogs"],
                "summary": "Listar dose logs",
                "parameters": [{"type": "string", "description": "ID del medicamento", "name": "medication", "in": "query"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/doselogs.doseLogResponse"}}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["doselogs"],
                "summary": "Registrar toma",
                "parameters": [
                    {"description": "medication, taken_at (RFC3339), was_taken (default true)", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/doselogs.doseLogRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/doselogs.doseLogResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httpx.ErrorResponse"}}
                }
            }
        },
        "/doselogs/filter": {
            "get": {
                "produces": ["application/json"],
                "tags": ["doselogs"],
                "summary": "Filtrar dose logs por fecha",
                "parameters": [
                    {"type": "string", "description": "Fecha inicial YYYY-MM-DD", "name": "start", "in": "query", "required": true},
                    {"type": "string", "description": "Fecha final YYYY-MM-DD", "name": "end", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/doselogs.doseLogResponse"}}},
                    "400": {"description": "start/end ausentes o inválidos", "schema": {"$ref": "#/definitions/httpx.ErrorResponse"}}
                }
            }
        },
        "/doselogs/{doseLogID}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["doselogs"],
                "summary": "Obtener dose log",
                "parameters": [{"type": "string", "description": "ID del dose log", "name": "doseLogID", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/doselogs.doseLogResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/httpx.ErrorResponse"}}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["doselogs"],
                "summary": "Reemplazar dose log",
                "parameters": [
                    {"type": "string", "description": "ID del dose log", "name": "doseLogID", "in": "path", "required": true},
                    {"description": "Datos completos", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/doselogs.doseLogRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/doselogs.doseLogResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httpx.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/httpx.ErrorResponse"}}
                }
            },
            "patch": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["doselogs"],
                "summary": "Actualizar parcialmente un dose log",
                "parameters": [
                    {"type": "string", "description": "ID del dose log", "name": "doseLogID", "in": "path", "required": true},
                    {"description": "Campos a modificar", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/doselogs.patchDoseLogRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/doselogs.doseLogResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httpx.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/httpx.ErrorResponse"}}
                }
            },
            "delete": {
                "tags": ["doselogs"],
                "summary": "Borrar dose log",
                "parameters": [{"type": "string", "description": "ID del dose log", "name": "doseLogID", "in": "path", "required": true}],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/httpx.ErrorResponse"}}
                }
            }
        },
        "/notes": {
            "get": {
                "produces": ["application/json"],
                "tags": ["notes"],
                "summary": "Listar notas",
                "parameters": [{"type": "string", "description": "ID del medicamento", "name": "medication", "in": "query"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/notes.noteResponse"}}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["notes"],
                "summary": "Crear nota",
                "parameters": [
                    {"description": "Nota", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/notes.createNoteRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/notes.noteResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httpx.ErrorResponse"}}
                }
            }
        },
        "/notes/{noteID}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["notes"],
                "summary": "Obtener nota",
                "parameters": [{"type": "string", "description": "ID de la nota", "name": "noteID", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/notes.noteResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/httpx.ErrorResponse"}}
                }
            },
            "delete": {
                "tags": ["notes"],
                "summary": "Borrar nota",
                "parameters": [{"type": "string", "description": "ID de la nota", "name": "noteID", "in": "path", "required": true}],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/httpx.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "httpx.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "code": {"type": "string"},
                "fields": {"type": "object", "additionalProperties": {"type": "string"}}
            }
        },
        "druginfo.Info": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "brand_name": {"type": "string"},
                "manufacturer": {"type": "string"},
                "warnings": {"type": "array", "items": {"type": "string"}},
                "purpose": {"type": "array", "items": {"type": "string"}}
            }
        },
        "medications.medicationRequest": {
            "type": "object",
            "required": ["name", "dosage_mg", "prescribed_per_day"],
            "properties": {
                "name": {"type": "string", "maxLength": 100},
                "dosage_mg": {"type": "integer", "minimum": 1, "maximum": 2147483647},
                "prescribed_per_day": {"type": "integer", "minimum": 0, "maximum": 2147483647}
            }
        },
        "medications.patchMedicationRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string", "maxLength": 100, "minLength": 1},
                "dosage_mg": {"type": "integer", "minimum": 1, "maximum": 2147483647},
                "prescribed_per_day": {"type": "integer", "minimum": 0, "maximum": 2147483647}
            }
        },
        "medications.medicationResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "dosage_mg": {"type": "integer"},
                "prescribed_per_day": {"type": "integer"},
                "adherence": {"type": "number"},
                "created_at": {"type": "string"},
                "updated_at": {"type": "string"}
            }
        },
        "medications.expectedDosesResponse": {
            "type": "object",
            "properties": {
                "medication_id": {"type": "string"},
                "days": {"type": "integer"},
                "expected_doses": {"type": "integer"}
            }
        },
        "medications.adherenceResponse": {
            "type": "object",
            "properties": {
                "medication_id": {"type": "string"},
                "adherence": {"type": "number"},
                "start": {"type": "string"},
                "end": {"type": "string"}
            }
        },
        "doselogs.doseLogRequest": {
            "type": "object",
            "required": ["medication", "taken_at"],
            "properties": {
                "medication": {"type": "string"},
                "taken_at": {"type": "string"},
                "was_taken": {"type": "boolean"}
            }
        },
        "doselogs.patchDoseLogRequest": {
            "type": "object",
            "properties": {
                "medication": {"type": "string"},
                "taken_at": {"type": "string"},
                "was_taken": {"type": "boolean"}
            }
        },
        "doselogs.doseLogResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "medication": {"type": "string"},
                "taken_at": {"type": "string"},
                "was_taken": {"type": "boolean"}
            }
        },
        "notes.createNoteRequest": {
            "type": "object",
            "required": ["medication", "text", "date"],
            "properties": {
                "medication": {"type": "string"},
                "text": {"type": "string"},
                "date": {"type": "string"}
            }
        },
        "notes.noteResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "medication": {"type": "string"},
                "text": {"type": "string"},
                "date": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "MedTracker API",
	Description:      "Medicamentos, registro de tomas, notas y adherencia.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
