package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "CampusPulse API",
        "description": "Campus schedule, live status and study partner recommendations",
        "version": "1.0.0"
    },
    "basePath": "/api/v1",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Auth", "description": "Session issue and revocation"},
        {"name": "Users", "description": "Own profile"},
        {"name": "Schedules", "description": "Weekly schedule management"},
        {"name": "Status", "description": "Manual availability status"},
        {"name": "Board", "description": "Campus status board"},
        {"name": "Partners", "description": "Study partner recommendations"},
        {"name": "Locations", "description": "Campus building directory"}
    ],
    "paths": {
        "/auth/login": {
            "post": {
                "tags": ["Auth"],
                "summary": "Sign in by identity",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Validation error"}
                }
            }
        },
        "/auth/logout": {
            "post": {
                "tags": ["Auth"],
                "summary": "Revoke the current session",
                "responses": {
                    "204": {"description": "No Content"},
                    "401": {"description": "Unauthorized"}
                }
            }
        },
        "/me": {
            "get": {
                "tags": ["Users"],
                "summary": "Current user's profile",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "401": {"description": "Unauthorized"}
                }
            }
        },
        "/me/avatar": {
            "put": {
                "tags": ["Users"],
                "summary": "Update own avatar",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateAvatarRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Validation error"},
                    "401": {"description": "Unauthorized"}
                }
            }
        },
        "/schedule": {
            "get": {
                "tags": ["Schedules"],
                "summary": "List own schedule entries",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "401": {"description": "Unauthorized"}
                }
            },
            "post": {
                "tags": ["Schedules"],
                "summary": "Add a schedule entry",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateScheduleEntryRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Validation error"},
                    "401": {"description": "Unauthorized"}
                }
            }
        },
        "/schedule/{id}": {
            "delete": {
                "tags": ["Schedules"],
                "summary": "Remove an own schedule entry",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "401": {"description": "Unauthorized"},
                    "403": {"description": "Entry belongs to another user"},
                    "404": {"description": "Entry not found"}
                }
            }
        },
        "/schedule/import": {
            "post": {
                "tags": ["Schedules"],
                "summary": "Import entries from an iCalendar file",
                "consumes": ["multipart/form-data"],
                "parameters": [
                    {"name": "file", "in": "formData", "required": true, "type": "file"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Missing, oversized or unparseable file"},
                    "401": {"description": "Unauthorized"}
                }
            }
        },
        "/schedule/export": {
            "get": {
                "tags": ["Schedules"],
                "summary": "Download own schedule as CSV or PDF",
                "produces": ["text/csv", "application/pdf"],
                "parameters": [
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"], "default": "csv"}
                ],
                "responses": {
                    "200": {"description": "File download"},
                    "400": {"description": "Unsupported format"},
                    "401": {"description": "Unauthorized"}
                }
            }
        },
        "/status": {
            "get": {
                "tags": ["Status"],
                "summary": "Current manual status",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "401": {"description": "Unauthorized"}
                }
            },
            "put": {
                "tags": ["Status"],
                "summary": "Set manual status",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateStatusRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Status outside the enumeration"},
                    "401": {"description": "Unauthorized"}
                }
            }
        },
        "/status-board": {
            "get": {
                "tags": ["Board"],
                "summary": "Campus status board",
                "parameters": [
                    {"name": "at", "in": "query", "type": "string", "description": "Reference instant (RFC3339), defaults to now"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Bad timestamp"}
                }
            }
        },
        "/partners": {
            "get": {
                "tags": ["Partners"],
                "summary": "Recommended study partners",
                "parameters": [
                    {"name": "at", "in": "query", "type": "string", "description": "Reference instant (RFC3339), defaults to now"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Bad timestamp"},
                    "401": {"description": "Unauthorized"}
                }
            }
        },
        "/locations": {
            "get": {
                "tags": ["Locations"],
                "summary": "Campus building directory",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        }
    },
    "definitions": {
        "LoginRequest": {
            "type": "object",
            "properties": {
                "username": {"type": "string"},
                "major": {"type": "string"}
            },
            "required": ["username", "major"]
        },
        "UpdateAvatarRequest": {
            "type": "object",
            "properties": {
                "avatar": {"type": "string"}
            },
            "required": ["avatar"]
        },
        "CreateScheduleEntryRequest": {
            "type": "object",
            "properties": {
                "course_code": {"type": "string"},
                "course_name": {"type": "string"},
                "day": {"type": "string", "enum": ["monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"]},
                "start_time": {"type": "string", "example": "09:00"},
                "end_time": {"type": "string", "example": "10:20"},
                "location": {"type": "string"}
            },
            "required": ["course_code", "course_name", "day", "start_time", "end_time"]
        },
        "UpdateStatusRequest": {
            "type": "object",
            "properties": {
                "status": {"type": "string", "enum": ["studying", "free", "help", "busy", "tired", "social"]}
            },
            "required": ["status"]
        },
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
