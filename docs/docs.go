// Package docs registers the OpenAPI description served under /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "Backend Team"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/healthz": {
            "get": {
                "produces": ["application/json"],
                "tags": ["system"],
                "summary": "Liveness probe",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/config": {
            "get": {
                "produces": ["application/json"],
                "tags": ["system"],
                "summary": "Default board size",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/rooms": {
            "get": {
                "produces": ["application/json"],
                "tags": ["rooms"],
                "summary": "List open room codes",
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["rooms"],
                "summary": "Create a room with an empty board",
                "parameters": [
                    {"in": "body", "name": "body", "schema": {"$ref": "#/definitions/http.CreateRoomRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Bad Request"}
                }
            }
        },
        "/rooms/{code}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["rooms"],
                "summary": "Room snapshot",
                "parameters": [{"$ref": "#/parameters/code"}],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found"}
                }
            },
            "delete": {
                "tags": ["rooms"],
                "summary": "Close a room",
                "parameters": [{"$ref": "#/parameters/code"}],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/rooms/{code}/move": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["board"],
                "summary": "Place a stone",
                "parameters": [
                    {"$ref": "#/parameters/code"},
                    {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/http.MoveRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request"},
                    "404": {"description": "Not Found"},
                    "409": {"description": "Conflict"}
                }
            }
        },
        "/rooms/{code}/clear": {
            "post": {
                "produces": ["application/json"],
                "tags": ["board"],
                "summary": "Empty the board",
                "parameters": [{"$ref": "#/parameters/code"}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        },
        "/rooms/{code}/rotate": {
            "post": {
                "produces": ["application/json"],
                "tags": ["board"],
                "summary": "Rotate the board 90 degrees clockwise",
                "parameters": [{"$ref": "#/parameters/code"}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        },
        "/rooms/{code}/subboard": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["board"],
                "summary": "Extract a rectangular region",
                "parameters": [
                    {"$ref": "#/parameters/code"},
                    {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/http.SubboardRequest"}}
                ],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            }
        },
        "/rooms/{code}/exist": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["board"],
                "summary": "Search for a pattern in any of four rotations",
                "parameters": [
                    {"$ref": "#/parameters/code"},
                    {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/http.PatternRequest"}}
                ],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            }
        },
        "/rooms/{code}/replace": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["board"],
                "summary": "Overwrite the first region matching a pattern",
                "parameters": [
                    {"$ref": "#/parameters/code"},
                    {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/http.ReplaceRequest"}}
                ],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            }
        },
        "/rooms/{code}/diff": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["board"],
                "summary": "Cells where the room board differs from another board",
                "parameters": [
                    {"$ref": "#/parameters/code"},
                    {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/http.DiffRequest"}}
                ],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            }
        },
        "/rooms/{code}/scan": {
            "get": {
                "produces": ["application/json"],
                "tags": ["patterns"],
                "summary": "Run the pattern library against the room board",
                "parameters": [{"$ref": "#/parameters/code"}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        },
        "/patterns": {
            "get": {
                "produces": ["application/json"],
                "tags": ["patterns"],
                "summary": "List stored patterns",
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["patterns"],
                "summary": "Save or overwrite a named pattern",
                "parameters": [
                    {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/http.SavePatternRequest"}}
                ],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            }
        },
        "/patterns/{name}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["patterns"],
                "summary": "Fetch a pattern by name",
                "parameters": [{"$ref": "#/parameters/name"}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            },
            "delete": {
                "tags": ["patterns"],
                "summary": "Delete a pattern",
                "parameters": [{"$ref": "#/parameters/name"}],
                "responses": {"204": {"description": "No Content"}, "404": {"description": "Not Found"}}
            }
        }
    },
    "parameters": {
        "code": {"type": "string", "description": "room code", "name": "code", "in": "path", "required": true},
        "name": {"type": "string", "description": "pattern name", "name": "name", "in": "path", "required": true}
    },
    "definitions": {
        "http.CreateRoomRequest": {
            "type": "object",
            "properties": {
                "rows": {"type": "integer"},
                "cols": {"type": "integer"}
            }
        },
        "http.MoveRequest": {
            "type": "object",
            "required": ["row", "col"],
            "properties": {
                "row": {"type": "integer"},
                "col": {"type": "integer"},
                "side": {"type": "string", "enum": ["B", "W"]}
            }
        },
        "http.SubboardRequest": {
            "type": "object",
            "properties": {
                "row": {"type": "integer"},
                "col": {"type": "integer"},
                "h": {"type": "integer"},
                "v": {"type": "integer"}
            }
        },
        "http.PatternRequest": {
            "type": "object",
            "required": ["pattern"],
            "properties": {
                "pattern": {"type": "array", "items": {"type": "string"}}
            }
        },
        "http.ReplaceRequest": {
            "type": "object",
            "required": ["from", "to"],
            "properties": {
                "from": {"type": "array", "items": {"type": "string"}},
                "to": {"type": "array", "items": {"type": "string"}}
            }
        },
        "http.DiffRequest": {
            "type": "object",
            "required": ["board"],
            "properties": {
                "board": {"type": "array", "items": {"type": "string"}}
            }
        },
        "http.SavePatternRequest": {
            "type": "object",
            "required": ["name", "rows"],
            "properties": {
                "name": {"type": "string"},
                "rows": {"type": "array", "items": {"type": "string"}}
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
	Title:            "Gomoku Board API",
	Description:      "Rooms, board geometry and pattern search for gomoku (Go + Gin)",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
