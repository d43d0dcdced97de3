// Package docs holds the Swagger spec served at /swagger/doc.json.
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
        "/api/parse": {
            "post": {
                "description": "Extracts title, start/end, timezone and attendees from free text.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Command"],
                "summary": "Parse a scheduling command",
                "parameters": [
                    {"description": "Command", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/parseReq"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/parseResult"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/api/parse/ics": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["text/calendar"],
                "tags": ["Command"],
                "summary": "Parse a command into an iCalendar event",
                "parameters": [
                    {"description": "Command", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/parseReq"}}
                ],
                "responses": {
                    "200": {"description": "VCALENDAR document", "schema": {"type": "string"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/api/schedule": {
            "post": {
                "description": "Parses the command and creates the event with a Meet link in the signed-in user's calendar.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Command"],
                "summary": "Schedule a command in Google Calendar",
                "parameters": [
                    {"description": "Command", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/scheduleReq"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/scheduleResp"}},
                    "401": {"description": "Not authenticated", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "502": {"description": "Google Calendar error", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/api/history": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Command"],
                "summary": "Recently scheduled events",
                "parameters": [
                    {"type": "integer", "description": "Number of events (default 10, max 50)", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/auth/start": {
            "get": {
                "description": "Returns the Google consent page URL carrying a single-use state.",
                "produces": ["application/json"],
                "tags": ["Auth"],
                "summary": "Begin Google sign-in",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/auth/callback": {
            "get": {
                "description": "Exchanges the code, stores the user and sets the session cookie.",
                "tags": ["Auth"],
                "summary": "Google OAuth redirect target",
                "parameters": [
                    {"type": "string", "description": "Authorization code", "name": "code", "in": "query", "required": true},
                    {"type": "string", "description": "State issued by /auth/start", "name": "state", "in": "query", "required": true}
                ],
                "responses": {
                    "302": {"description": "Found"},
                    "400": {"description": "Missing code or invalid state", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "502": {"description": "Google rejected the exchange", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/auth/me": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Auth"],
                "summary": "Current account",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/auth/logout": {
            "post": {
                "produces": ["application/json"],
                "tags": ["Auth"],
                "summary": "Sign out",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/health": {
            "get": {
                "description": "Check if the API is healthy",
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Health Check",
                "responses": {"200": {"description": "API is healthy", "schema": {"type": "object", "additionalProperties": true}}}
            }
        },
        "/ready": {
            "get": {
                "description": "Check if the API is ready to serve traffic",
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Readiness Check",
                "responses": {
                    "200": {"description": "API is ready", "schema": {"type": "object", "additionalProperties": true}},
                    "503": {"description": "Database unreachable", "schema": {"type": "object", "additionalProperties": true}}
                }
            }
        },
        "/live": {
            "get": {
                "description": "Check if the API is alive",
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Liveness Check",
                "responses": {"200": {"description": "API is alive", "schema": {"type": "object", "additionalProperties": true}}}
            }
        }
    },
    "definitions": {
        "parseReq": {
            "type": "object",
            "properties": {
                "command": {"type": "string", "example": "Meeting with alice@example.com tomorrow 10am"},
                "time_zone": {"type": "string", "example": "America/Los_Angeles"}
            }
        },
        "scheduleReq": {
            "type": "object",
            "properties": {
                "command": {"type": "string"}
            }
        },
        "parseResult": {
            "type": "object",
            "properties": {
                "summary": {"type": "string"},
                "start_time": {"type": "string", "format": "date-time"},
                "end_time": {"type": "string", "format": "date-time"},
                "time_zone": {"type": "string"},
                "attendees": {"type": "array", "items": {"type": "string"}},
                "original_command": {"type": "string"}
            }
        },
        "scheduleResp": {
            "type": "object",
            "properties": {
                "event_id": {"type": "string"},
                "html_link": {"type": "string"},
                "meet_link": {"type": "string"},
                "summary": {"type": "string"},
                "start": {"type": "string", "format": "date-time"},
                "end": {"type": "string", "format": "date-time"},
                "attendees": {"type": "array", "items": {"type": "string"}}
            }
        },
        "response.Resp": {
            "type": "object",
            "properties": {
                "error_code": {"type": "integer"},
                "message": {"type": "string"},
                "data": {},
                "errors": {}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1",
	Host:             "localhost:8080",
	BasePath:         "",
	Schemes:          []string{"http"},
	Title:            "AI Scheduler API",
	Description:      "Natural-language meeting scheduling with Google Calendar and Meet.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
