// Package docs holds the OpenAPI description served under /swagger.
// Regenerate with: swag init -g cmd/server/main.go
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/users": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["users"], "summary": "Search users",
                "parameters": [{"type": "string", "name": "q", "in": "query", "required": true}],
                "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}}}
        },
        "/users/{id}": {
            "get": {"tags": ["users"], "summary": "Get a user's profile",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}
        },
        "/users/{id}/sessions": {
            "get": {"tags": ["sessions"], "summary": "Get a user's sessions",
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true},
                    {"type": "integer", "name": "page", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}}}
        },
        "/users/{id}/followers": {
            "get": {"tags": ["follows"], "summary": "List a user's followers",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}}}
        },
        "/users/{id}/follow": {
            "post": {"security": [{"BearerAuth": []}], "tags": ["follows"], "summary": "Follow a user",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"201": {"description": "Created"}, "404": {"description": "Not Found"}, "409": {"description": "Conflict"}}},
            "delete": {"security": [{"BearerAuth": []}], "tags": ["follows"], "summary": "Unfollow a user",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}}}
        },
        "/users/me/following": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["follows"], "summary": "List the users I follow",
                "responses": {"200": {"description": "OK"}}}
        },
        "/users/me/statistics": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["users"], "summary": "Get my grilling statistics",
                "responses": {"200": {"description": "OK"}}}
        },
        "/sessions": {
            "post": {"security": [{"BearerAuth": []}], "consumes": ["multipart/form-data"], "tags": ["sessions"], "summary": "Log a new session",
                "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}}
        },
        "/sessions/mine": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["sessions"], "summary": "Get my sessions",
                "parameters": [{"type": "integer", "name": "page", "in": "query"}],
                "responses": {"200": {"description": "OK"}}}
        },
        "/sessions/{id}": {
            "get": {"tags": ["sessions"], "summary": "Get a session",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "put": {"security": [{"BearerAuth": []}], "consumes": ["multipart/form-data"], "tags": ["sessions"], "summary": "Edit a session",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}}},
            "delete": {"security": [{"BearerAuth": []}], "tags": ["sessions"], "summary": "Delete a session",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}
        },
        "/sessions/{id}/yummy": {
            "post": {"security": [{"BearerAuth": []}], "tags": ["yummies"], "summary": "Yummy a session",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"201": {"description": "Created"}, "404": {"description": "Not Found"}, "409": {"description": "Conflict"}}},
            "delete": {"security": [{"BearerAuth": []}], "tags": ["yummies"], "summary": "Remove a yummy",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}}}
        },
        "/sessions/{id}/yummies": {
            "get": {"tags": ["yummies"], "summary": "List who yummied a session",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}}}
        },
        "/profile/onboarding": {
            "post": {"security": [{"BearerAuth": []}], "tags": ["profile"], "summary": "Complete onboarding",
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "409": {"description": "Conflict"}}}
        },
        "/profile/avatar": {
            "put": {"security": [{"BearerAuth": []}], "consumes": ["multipart/form-data"], "tags": ["profile"], "summary": "Upload an avatar",
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}},
            "delete": {"security": [{"BearerAuth": []}], "tags": ["profile"], "summary": "Delete my avatar",
                "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden"}}}
        }
    },
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "BBQ Buddy API",
	Description:      "Log BBQ sessions, follow other grillers and hand out yummies.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
