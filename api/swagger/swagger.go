package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Tableset Catering API",
        "description": "Chef availability, calendar and booking assignment service",
        "version": "1.0.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Stations", "description": "Kitchen stations"},
        {"name": "Chefs", "description": "Chef roster management"},
        {"name": "Availability", "description": "Weekly templates and date overrides"},
        {"name": "Calendar", "description": "Computed week/month calendars"},
        {"name": "Bookings", "description": "Booking chef assignment"}
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
                    "200": {"description": "Ready"},
                    "503": {"description": "Database unreachable"}
                }
            }
        },
        "/stations": {
            "get": {
                "tags": ["Stations"],
                "summary": "List stations",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/chefs": {
            "get": {
                "tags": ["Chefs"],
                "summary": "List chefs",
                "parameters": [
                    {"name": "station_id", "in": "query", "type": "string"},
                    {"name": "search", "in": "query", "type": "string"},
                    {"name": "active", "in": "query", "type": "boolean"},
                    {"name": "page", "in": "query", "type": "integer"},
                    {"name": "limit", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Chefs"],
                "summary": "Create chef",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateChefRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "409": {"description": "Email already in use"}
                }
            }
        },
        "/chefs/{id}": {
            "get": {
                "tags": ["Chefs"],
                "summary": "Get chef detail",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Chef not found"}
                }
            },
            "put": {
                "tags": ["Chefs"],
                "summary": "Update chef",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateChefRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "delete": {
                "tags": ["Chefs"],
                "summary": "Deactivate chef",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "204": {"description": "Deactivated"}
                }
            }
        },
        "/chefs/{id}/availability": {
            "get": {
                "tags": ["Availability"],
                "summary": "Get weekly templates and date overrides",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "from", "in": "query", "type": "string"},
                    {"name": "to", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/chefs/{id}/availability/week": {
            "put": {
                "tags": ["Availability"],
                "summary": "Replace the full 7-day weekly template set",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ReplaceWeekRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/chefs/{id}/availability/toggle": {
            "post": {
                "tags": ["Availability"],
                "summary": "Toggle one slot on one date",
                "description": "Creates or updates a full-day override seeded from the currently resolved state, with the named slot flipped.",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ToggleSlotRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/chefs/{id}/availability/overrides": {
            "put": {
                "tags": ["Availability"],
                "summary": "Create or replace a date override",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpsertOverrideRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/chefs/{id}/availability/overrides/{date}": {
            "delete": {
                "tags": ["Availability"],
                "summary": "Delete a date override, reverting to the weekly template",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "date", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "204": {"description": "Deleted"},
                    "404": {"description": "No override on that date"}
                }
            }
        },
        "/chefs/{id}/calendar": {
            "get": {
                "tags": ["Calendar"],
                "summary": "Get a chef's week or month calendar",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "view", "in": "query", "type": "string", "enum": ["week", "month"]},
                    {"name": "date", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/calendar": {
            "get": {
                "tags": ["Calendar"],
                "summary": "Get calendars for every active chef of a station",
                "parameters": [
                    {"name": "station_id", "in": "query", "required": true, "type": "string"},
                    {"name": "view", "in": "query", "type": "string", "enum": ["week", "month"]},
                    {"name": "date", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/bookings/{id}/assign": {
            "post": {
                "tags": ["Bookings"],
                "summary": "Assign or unassign a chef on a booking",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/AssignRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Booking or chef not found"},
                    "422": {"description": "Assignment rejected"}
                }
            }
        }
    },
    "definitions": {
        "CreateChefRequest": {
            "type": "object",
            "required": ["name", "email", "station_id"],
            "properties": {
                "name": {"type": "string"},
                "email": {"type": "string"},
                "phone": {"type": "string"},
                "station_id": {"type": "string"},
                "avatar_url": {"type": "string"}
            }
        },
        "UpdateChefRequest": {
            "type": "object",
            "required": ["name", "email", "station_id"],
            "properties": {
                "name": {"type": "string"},
                "email": {"type": "string"},
                "phone": {"type": "string"},
                "station_id": {"type": "string"},
                "avatar_url": {"type": "string"},
                "active": {"type": "boolean"}
            }
        },
        "WeekDayRequest": {
            "type": "object",
            "properties": {
                "day_of_week": {"type": "integer", "minimum": 0, "maximum": 6},
                "slot_ids": {"type": "array", "items": {"type": "string"}},
                "is_available": {"type": "boolean"}
            }
        },
        "ReplaceWeekRequest": {
            "type": "object",
            "required": ["days"],
            "properties": {
                "days": {"type": "array", "items": {"$ref": "#/definitions/WeekDayRequest"}}
            }
        },
        "ToggleSlotRequest": {
            "type": "object",
            "required": ["date", "slot_id"],
            "properties": {
                "date": {"type": "string"},
                "slot_id": {"type": "string", "enum": ["noon", "3pm", "6pm", "9pm"]}
            }
        },
        "UpsertOverrideRequest": {
            "type": "object",
            "required": ["date"],
            "properties": {
                "date": {"type": "string"},
                "slot_ids": {"type": "array", "items": {"type": "string"}},
                "is_available": {"type": "boolean"},
                "reason": {"type": "string"},
                "created_by": {"type": "string"}
            }
        },
        "AssignRequest": {
            "type": "object",
            "properties": {
                "chef_id": {"type": "string", "x-nullable": true}
            }
        },
        "Pagination": {
            "type": "object",
            "properties": {
                "page": {"type": "integer"},
                "page_size": {"type": "integer"},
                "total_count": {"type": "integer"}
            }
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
                "pagination": {"$ref": "#/definitions/Pagination"},
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
