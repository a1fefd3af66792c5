// Package docs holds the swagger specification served at /swagger. Generated
// by swag from the handler annotations; regenerate with "swag init -g
// cmd/api/main.go" after changing the API surface.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/properties": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "tags": ["Properties"],
                "summary": "List properties",
                "parameters": [
                    {"type": "integer", "default": 1, "name": "page", "in": "query"},
                    {"type": "integer", "default": 20, "name": "per_page", "in": "query"},
                    {"type": "string", "name": "status", "in": "query"},
                    {"type": "string", "name": "city", "in": "query"},
                    {"type": "number", "name": "min_price", "in": "query"},
                    {"type": "number", "name": "max_price", "in": "query"},
                    {"type": "string", "enum": ["price_asc", "price_desc", "newest", "oldest"], "name": "order", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "security": [{"ApiKeyAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Properties"],
                "summary": "Create property",
                "responses": {"201": {"description": "Created"}, "422": {"description": "Unprocessable Entity"}}
            }
        },
        "/properties/{id}": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "tags": ["Properties"],
                "summary": "Get property",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            },
            "put": {
                "security": [{"ApiKeyAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Properties"],
                "summary": "Update property",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}, "422": {"description": "Unprocessable Entity"}}
            },
            "delete": {
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "tags": ["Properties"],
                "summary": "Delete property",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/clients": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "tags": ["Clients"],
                "summary": "List clients",
                "parameters": [
                    {"type": "integer", "default": 1, "name": "page", "in": "query"},
                    {"type": "integer", "default": 20, "name": "per_page", "in": "query"},
                    {"type": "string", "name": "type", "in": "query"},
                    {"type": "string", "name": "stage", "in": "query"},
                    {"type": "string", "name": "search", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "security": [{"ApiKeyAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Clients"],
                "summary": "Create client",
                "responses": {"201": {"description": "Created"}, "422": {"description": "Unprocessable Entity"}}
            }
        },
        "/clients/{id}": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "tags": ["Clients"],
                "summary": "Get client",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            },
            "put": {
                "security": [{"ApiKeyAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Clients"],
                "summary": "Update client",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}, "422": {"description": "Unprocessable Entity"}}
            },
            "delete": {
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "tags": ["Clients"],
                "summary": "Delete client",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/visits": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "tags": ["Visits"],
                "summary": "List visits",
                "parameters": [
                    {"type": "integer", "default": 1, "name": "page", "in": "query"},
                    {"type": "integer", "default": 20, "name": "per_page", "in": "query"},
                    {"type": "string", "name": "status", "in": "query"},
                    {"type": "string", "name": "from", "in": "query"},
                    {"type": "string", "name": "to", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "security": [{"ApiKeyAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Visits"],
                "summary": "Create visit",
                "responses": {"201": {"description": "Created"}, "422": {"description": "Unprocessable Entity"}}
            }
        },
        "/visits/{id}": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "tags": ["Visits"],
                "summary": "Get visit",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            },
            "put": {
                "security": [{"ApiKeyAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Visits"],
                "summary": "Update visit",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}, "422": {"description": "Unprocessable Entity"}}
            },
            "delete": {
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "tags": ["Visits"],
                "summary": "Delete visit",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/contracts": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "tags": ["Contracts"],
                "summary": "List contracts",
                "parameters": [
                    {"type": "integer", "default": 1, "name": "page", "in": "query"},
                    {"type": "integer", "default": 20, "name": "per_page", "in": "query"},
                    {"type": "string", "name": "status", "in": "query"},
                    {"type": "string", "name": "type", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "security": [{"ApiKeyAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Contracts"],
                "summary": "Create contract",
                "responses": {"201": {"description": "Created"}, "422": {"description": "Unprocessable Entity"}}
            }
        },
        "/contracts/{id}": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "tags": ["Contracts"],
                "summary": "Get contract",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            },
            "put": {
                "security": [{"ApiKeyAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Contracts"],
                "summary": "Update contract",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}, "422": {"description": "Unprocessable Entity"}}
            },
            "delete": {
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "tags": ["Contracts"],
                "summary": "Delete contract",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/dashboard": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "tags": ["Dashboard"],
                "summary": "Dashboard metrics",
                "parameters": [
                    {"type": "integer", "default": 7, "name": "visit_days", "in": "query"},
                    {"type": "integer", "default": 30, "name": "contract_days", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        }
    },
    "securityDefinitions": {
        "ApiKeyAuth": {
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
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "ImovelHub Backoffice API",
	Description:      "Back-office API for property listings, client pipeline, visits and contracts",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
