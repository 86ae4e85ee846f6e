package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Progress Analytics API",
        "description": "Per-student and per-course quiz progress metrics for the dashboard widget",
        "version": "1.0.0"
    },
    "basePath": "/api/v1",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Progress", "description": "Quiz progress metrics and exports"},
        {"name": "Events", "description": "Cache invalidation events"}
    ],
    "paths": {
        "/health": {
            "get": {
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/ready": {
            "get": {
                "summary": "Readiness check",
                "responses": {
                    "200": {"description": "Ready"}
                }
            }
        },
        "/courses/{courseid}/quiz-metrics": {
            "get": {
                "tags": ["Progress"],
                "summary": "Quiz progress metrics for the current user in a course",
                "parameters": [
                    {"name": "courseid", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "Metrics payload", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "401": {"description": "Unauthorized"},
                    "404": {"description": "Course not found"}
                }
            }
        },
        "/courses/{courseid}/progress-export": {
            "get": {
                "tags": ["Progress"],
                "summary": "Export the course progress baseline",
                "parameters": [
                    {"name": "courseid", "in": "path", "required": true, "type": "integer"},
                    {"name": "format", "in": "query", "required": false, "type": "string", "enum": ["csv", "pdf"]}
                ],
                "responses": {
                    "200": {"description": "Rendered report"},
                    "403": {"description": "Forbidden"}
                }
            }
        },
        "/internal/progress-events": {
            "post": {
                "tags": ["Events"],
                "summary": "Apply a grade- or completion-affecting domain event",
                "responses": {
                    "204": {"description": "Event applied"},
                    "400": {"description": "Invalid payload"}
                }
            }
        }
    },
    "definitions": {
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "meta": {"type": "object"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
