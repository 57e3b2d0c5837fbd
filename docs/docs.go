// Package docs registers the OpenAPI description served under /swagger.
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
                "produces": ["application/json"],
                "tags": ["system"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/auth/sign-up": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Register a user",
                "parameters": [
                    {"description": "credentials", "name": "input", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.authCredentials"}}
                ],
                "responses": {
                    "200": {"description": "username", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "409": {"description": "Conflict", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/auth/sign-in": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Obtain an API token",
                "parameters": [
                    {"description": "credentials", "name": "input", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.authCredentials"}}
                ],
                "responses": {
                    "200": {"description": "token", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "401": {"description": "Unauthorized", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/api/v1/tasks": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["tasks"],
                "summary": "List tasks",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Task"}}},
                    "401": {"description": "Unauthorized", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["tasks"],
                "summary": "Create a task",
                "parameters": [
                    {"description": "task", "name": "input", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.TaskRequest"}}
                ],
                "responses": {
                    "201": {"description": "id", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "401": {"description": "Unauthorized", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/api/v1/tasks/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["tasks"],
                "summary": "Get a task",
                "parameters": [{"type": "string", "description": "task id", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Task"}},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "description": "Every field is overwritten and created_by becomes the caller.",
                "consumes": ["application/json"],
                "tags": ["tasks"],
                "summary": "Replace a task",
                "parameters": [
                    {"type": "string", "description": "task id", "name": "id", "in": "path", "required": true},
                    {"description": "task", "name": "input", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.TaskRequest"}}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["tasks"],
                "summary": "Delete a task",
                "parameters": [{"type": "string", "description": "task id", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "204": {"description": "No Content"}
                }
            }
        },
        "/api/v1/categories": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Sorted by name, ascending.",
                "produces": ["application/json"],
                "tags": ["categories"],
                "summary": "List categories",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Category"}}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["categories"],
                "summary": "Create a category",
                "parameters": [
                    {"description": "category", "name": "input", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.CategoryRequest"}}
                ],
                "responses": {
                    "201": {"description": "id", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/api/v1/categories/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["categories"],
                "summary": "Get a category",
                "parameters": [{"type": "string", "description": "category id", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Category"}},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "tags": ["categories"],
                "summary": "Rename a category",
                "parameters": [
                    {"type": "string", "description": "category id", "name": "id", "in": "path", "required": true},
                    {"description": "category", "name": "input", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.CategoryRequest"}}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        }
    },
    "definitions": {
        "handlers.authCredentials": {
            "type": "object",
            "required": ["password", "username"],
            "properties": {
                "password": {"type": "string", "example": "s3cret"},
                "username": {"type": "string", "example": "alice"}
            }
        },
        "handlers.TaskRequest": {
            "type": "object",
            "properties": {
                "category_name": {"type": "string", "example": "Home"},
                "due_date": {"description": "Free text, stored as sent", "type": "string", "example": "1 May, 2026"},
                "is_urgent": {"type": "boolean", "example": true},
                "task_description": {"type": "string", "example": "All of them"},
                "task_name": {"type": "string", "example": "Wash the dishes"}
            }
        },
        "handlers.CategoryRequest": {
            "type": "object",
            "properties": {
                "category_name": {"type": "string", "example": "Garden"}
            }
        },
        "models.Task": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "category_name": {"type": "string"},
                "task_name": {"type": "string"},
                "task_description": {"type": "string"},
                "is_urgent": {"type": "boolean"},
                "due_date": {"type": "string"},
                "created_by": {"type": "string"}
            }
        },
        "models.Category": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "category_name": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Task Manager API",
	Description:      "Tasks and categories behind bearer tokens issued by /auth/sign-in.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
