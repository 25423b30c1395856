// Package docs registers the OpenAPI document served under /swagger.
// It is maintained by hand alongside the routes.
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
        "/ping": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Liveness check",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/timers/start": {
            "post": {
                "security": [{"Bearer": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["timers"],
                "summary": "Start the timer of an employee on a work order",
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/request.TimerRequest"}}],
                "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}, "403": {"description": "Forbidden"}, "404": {"description": "Not Found"}, "409": {"description": "Conflict"}}
            }
        },
        "/timers/stop": {
            "post": {
                "security": [{"Bearer": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["timers"],
                "summary": "Stop the running timer and price the session",
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/request.TimerRequest"}}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}, "409": {"description": "Conflict"}}
            }
        },
        "/timers/active": {
            "get": {
                "security": [{"Bearer": []}],
                "produces": ["application/json"],
                "tags": ["timers"],
                "summary": "Open sessions priced against now",
                "parameters": [
                    {"type": "string", "name": "employee_id", "in": "query"},
                    {"type": "string", "name": "order_id", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/dashboard": {
            "get": {
                "security": [{"Bearer": []}],
                "produces": ["application/json"],
                "tags": ["reports"],
                "summary": "Live employee board",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/stats": {
            "get": {
                "security": [{"Bearer": []}],
                "produces": ["application/json"],
                "tags": ["reports"],
                "summary": "Labor totals for a period (defaults to the current month)",
                "parameters": [
                    {"type": "string", "name": "employee_id", "in": "query"},
                    {"type": "string", "name": "start", "in": "query", "description": "RFC3339 or YYYY-MM-DD"},
                    {"type": "string", "name": "end", "in": "query", "description": "RFC3339 or YYYY-MM-DD"}
                ],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            }
        },
        "/stats/export": {
            "get": {
                "security": [{"Bearer": []}],
                "produces": ["application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"],
                "tags": ["reports"],
                "summary": "Period stats as an XLSX workbook",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/employees": {
            "get": {"security": [{"Bearer": []}], "tags": ["employees"], "summary": "List employees", "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"Bearer": []}], "tags": ["employees"], "summary": "Create an employee", "responses": {"201": {"description": "Created"}}}
        },
        "/employees/{id}": {
            "get": {"security": [{"Bearer": []}], "tags": ["employees"], "summary": "Get an employee", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "patch": {"security": [{"Bearer": []}], "tags": ["employees"], "summary": "Update an employee", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}
        },
        "/work-orders": {
            "get": {"security": [{"Bearer": []}], "tags": ["work-orders"], "summary": "List work orders", "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"Bearer": []}], "tags": ["work-orders"], "summary": "Create a work order", "responses": {"201": {"description": "Created"}}}
        },
        "/work-orders/{id}": {
            "get": {"security": [{"Bearer": []}], "tags": ["work-orders"], "summary": "Get a work order", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}
        },
        "/work-orders/{id}/status": {
            "patch": {"security": [{"Bearer": []}], "tags": ["work-orders"], "summary": "Move a work order to another status", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}
        },
        "/work-orders/{id}/labor": {
            "get": {"security": [{"Bearer": []}], "tags": ["work-orders"], "summary": "Labor breakdown of a work order", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}
        },
        "/work-orders/{id}/quote": {
            "post": {"security": [{"Bearer": []}], "tags": ["quotes"], "summary": "Generate a draft quote from closed labor sessions", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"201": {"description": "Created"}, "404": {"description": "Not Found"}}}
        },
        "/work-orders/{id}/quotes": {
            "get": {"security": [{"Bearer": []}], "tags": ["quotes"], "summary": "Quotes of a work order", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}
        },
        "/quotes/{id}": {
            "get": {"security": [{"Bearer": []}], "tags": ["quotes"], "summary": "Get a quote", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}
        },
        "/quotes/{id}/send": {
            "patch": {"security": [{"Bearer": []}], "tags": ["quotes"], "summary": "draft -> sent", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "409": {"description": "Conflict"}}}
        },
        "/quotes/{id}/accept": {
            "patch": {"security": [{"Bearer": []}], "tags": ["quotes"], "summary": "draft|sent -> accepted", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "409": {"description": "Conflict"}}}
        },
        "/quotes/{id}/reject": {
            "patch": {"security": [{"Bearer": []}], "tags": ["quotes"], "summary": "draft|sent -> rejected", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "409": {"description": "Conflict"}}}
        },
        "/quotes/{id}/payments": {
            "get": {"security": [{"Bearer": []}], "tags": ["payments"], "summary": "Payments of a quote, newest first", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"Bearer": []}], "tags": ["payments"], "summary": "Pay an accepted quote through Mercado Pago", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"201": {"description": "Created"}, "409": {"description": "Conflict"}}}
        }
    },
    "definitions": {
        "request.TimerRequest": {
            "type": "object",
            "required": ["order_id"],
            "properties": {
                "employee_id": {"type": "string"},
                "order_id": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "Bearer": {
            "description": "Type \"Bearer\" followed by a space and the API token.",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/v1",
	Schemes:          []string{},
	Title:            "Carrozzeria Labor API",
	Description:      "Body-shop labor timers, live dashboard, period stats and quotes.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
