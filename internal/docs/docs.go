// Package docs registers the API description served at /swagger/doc.json.
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
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    },
    "paths": {
        "/auth/register": {
            "post": {"tags": ["auth"], "summary": "Create a student or teacher account",
                "responses": {"201": {"description": "token and user"}, "400": {"description": "invalid account"}, "409": {"description": "email taken"}}}
        },
        "/auth/login": {
            "post": {"tags": ["auth"], "summary": "Log in with email and password",
                "responses": {"200": {"description": "token and user"}, "401": {"description": "invalid credentials"}}}
        },
        "/certificates": {
            "get": {"tags": ["certificates"], "summary": "List own certificates, newest first", "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "certificates"}}},
            "post": {"tags": ["certificates"], "summary": "Upload a certificate image", "security": [{"BearerAuth": []}],
                "consumes": ["multipart/form-data"],
                "parameters": [{"name": "certificate", "in": "formData", "type": "file", "required": true}],
                "responses": {"201": {"description": "pending certificate"}, "409": {"description": "duplicate"}, "413": {"description": "file too large"}, "422": {"description": "name mismatch"}}}
        },
        "/certificates/summary": {
            "get": {"tags": ["certificates"], "summary": "Approved points grouped by activity type", "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "summary"}}}
        },
        "/certificates/class/{className}": {
            "get": {"tags": ["review"], "summary": "List a class's certificates", "security": [{"BearerAuth": []}],
                "parameters": [{"name": "className", "in": "path", "type": "string", "required": true}],
                "responses": {"200": {"description": "certificates"}, "403": {"description": "teachers only"}}}
        },
        "/certificates/{id}": {
            "put": {"tags": ["review"], "summary": "Set status and optionally override points", "security": [{"BearerAuth": []}],
                "parameters": [{"name": "id", "in": "path", "type": "string", "required": true}],
                "responses": {"200": {"description": "reviewed certificate"}, "400": {"description": "invalid status or points"}, "404": {"description": "not found"}}},
            "delete": {"tags": ["certificates"], "summary": "Delete an own certificate", "security": [{"BearerAuth": []}],
                "parameters": [{"name": "id", "in": "path", "type": "string", "required": true}],
                "responses": {"200": {"description": "deleted"}, "403": {"description": "not the owner"}, "404": {"description": "not found"}}}
        },
        "/classes/{className}/leaderboard": {
            "get": {"tags": ["review"], "summary": "Rank a class by approved points", "security": [{"BearerAuth": []}],
                "parameters": [{"name": "className", "in": "path", "type": "string", "required": true}, {"name": "top", "in": "query", "type": "integer"}],
                "responses": {"200": {"description": "leaderboard"}}}
        },
        "/activities": {
            "get": {"tags": ["catalog"], "summary": "List activity rules", "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "rules"}}},
            "post": {"tags": ["catalog"], "summary": "Create an activity rule", "security": [{"BearerAuth": []}],
                "responses": {"201": {"description": "rule"}, "400": {"description": "field errors"}}}
        },
        "/activities/{id}": {
            "get": {"tags": ["catalog"], "summary": "Get an activity rule", "security": [{"BearerAuth": []}],
                "parameters": [{"name": "id", "in": "path", "type": "string", "required": true}],
                "responses": {"200": {"description": "rule"}, "404": {"description": "not found"}}},
            "put": {"tags": ["catalog"], "summary": "Update an activity rule", "security": [{"BearerAuth": []}],
                "parameters": [{"name": "id", "in": "path", "type": "string", "required": true}],
                "responses": {"200": {"description": "rule"}, "400": {"description": "field errors"}, "404": {"description": "not found"}}},
            "delete": {"tags": ["catalog"], "summary": "Delete an activity rule", "security": [{"BearerAuth": []}],
                "parameters": [{"name": "id", "in": "path", "type": "string", "required": true}],
                "responses": {"200": {"description": "deleted"}, "404": {"description": "not found"}}}
        },
        "/activities/search/{query}": {
            "get": {"tags": ["catalog"], "summary": "Search rules by name or keyword, most similar first", "security": [{"BearerAuth": []}],
                "parameters": [{"name": "query", "in": "path", "type": "string", "required": true}],
                "responses": {"200": {"description": "rules"}}}
        },
        "/score/preview": {
            "post": {"tags": ["scoring"], "summary": "Extract, classify and score text without saving", "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "entities, keyword, rule and pointsCalculation"}}}
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/v1",
	Schemes:          []string{},
	Title:            "Activity Points API",
	Description:      "Certificate upload, scoring and review for student activity points",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
