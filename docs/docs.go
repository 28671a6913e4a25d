// Package docs registers the OpenAPI description of the campus navigation API.
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
        "/locations": {
            "get": {
                "produces": ["application/json"],
                "summary": "List campus locations",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Location"}}
                    }
                }
            }
        },
        "/locations/{name}": {
            "get": {
                "produces": ["application/json"],
                "summary": "Get a campus location",
                "parameters": [
                    {"type": "string", "description": "Location name", "name": "name", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Location"}},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/locations/{name}/neighbors": {
            "get": {
                "produces": ["application/json"],
                "summary": "List directly connected locations",
                "parameters": [
                    {"type": "string", "description": "Location name", "name": "name", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"type": "string"}}},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/routes/shortest": {
            "get": {
                "produces": ["application/json"],
                "summary": "Shortest walking route",
                "parameters": [
                    {"type": "string", "description": "Origin location", "name": "from", "in": "query", "required": true},
                    {"type": "string", "description": "Destination location", "name": "to", "in": "query", "required": true},
                    {"type": "number", "description": "Walking speed in km/h", "name": "speed", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Route"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/routes/options": {
            "get": {
                "produces": ["application/json"],
                "summary": "Ranked alternative routes, fastest first",
                "parameters": [
                    {"type": "string", "description": "Origin location", "name": "from", "in": "query", "required": true},
                    {"type": "string", "description": "Destination location", "name": "to", "in": "query", "required": true},
                    {"type": "number", "description": "Walking speed in km/h", "name": "speed", "in": "query"}
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"type": "array", "items": {"$ref": "#/definitions/models.RouteOption"}}
                    },
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        }
    },
    "definitions": {
        "models.Location": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "category": {"type": "string"},
                "x": {"type": "number"},
                "y": {"type": "number"}
            }
        },
        "models.Route": {
            "type": "object",
            "properties": {
                "path": {"type": "array", "items": {"type": "string"}},
                "distance": {"type": "number"},
                "travel_time": {"type": "number"}
            }
        },
        "models.RouteOption": {
            "type": "object",
            "properties": {
                "path": {"type": "array", "items": {"type": "string"}},
                "distance": {"type": "number"},
                "travel_time": {"type": "number"},
                "description": {"type": "string"}
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
	Title:            "Campus Navigator API",
	Description:      "Shortest-path and ranked walking routes between campus locations.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
