// Package docs registers the OpenAPI document served under /swagger.
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
        "/": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Dashboard",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.DashboardResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/middleware.ErrorResponse"}}
                }
            }
        },
        "/healthz": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.HealthResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/dto.HealthResponse"}}
                }
            }
        },
        "/register": {
            "post": {
                "consumes": ["application/json", "application/x-www-form-urlencoded"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Register",
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/dto.RegisterRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.MessageResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/middleware.ErrorResponse"}},
                    "409": {"description": "User already exists", "schema": {"$ref": "#/definitions/middleware.ErrorResponse"}}
                }
            }
        },
        "/login": {
            "post": {
                "consumes": ["application/json", "application/x-www-form-urlencoded"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Login",
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/dto.LoginRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.LoginResponse"}},
                    "401": {"description": "Invalid credentials", "schema": {"$ref": "#/definitions/middleware.ErrorResponse"}}
                }
            }
        },
        "/logout": {
            "post": {
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Logout",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.MessageResponse"}}}
            }
        },
        "/quiz": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "tags": ["quiz"],
                "summary": "Start a quiz",
                "parameters": [
                    {"type": "string", "name": "subject", "in": "query", "required": true},
                    {"type": "string", "name": "level", "in": "query", "required": true},
                    {"type": "integer", "default": 10, "name": "limit", "in": "query"},
                    {"type": "string", "default": "new", "enum": ["new", "all"], "name": "mode", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.QuizResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/middleware.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/middleware.ErrorResponse"}}
                }
            },
            "post": {
                "security": [{"ApiKeyAuth": []}],
                "consumes": ["application/json", "application/x-www-form-urlencoded"],
                "produces": ["application/json"],
                "tags": ["quiz"],
                "summary": "Submit a quiz",
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/dto.SubmitRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ResultResponse"}},
                    "400": {"description": "Invalid submission", "schema": {"$ref": "#/definitions/middleware.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/middleware.ErrorResponse"}}
                }
            }
        },
        "/reset-progress": {
            "post": {
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Reset progress",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ResetResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/middleware.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "dto.RegisterRequest": {
            "type": "object",
            "required": ["email", "password", "username"],
            "properties": {
                "username": {"type": "string", "maxLength": 80, "minLength": 3},
                "email": {"type": "string", "maxLength": 120},
                "password": {"type": "string", "minLength": 6}
            }
        },
        "dto.LoginRequest": {
            "type": "object",
            "required": ["password"],
            "properties": {
                "identifier": {"type": "string"},
                "username_or_email": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "dto.UserResponse": {
            "type": "object",
            "properties": {"id": {"type": "string"}, "username": {"type": "string"}, "email": {"type": "string"}}
        },
        "dto.LoginResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "token": {"type": "string"},
                "user": {"$ref": "#/definitions/dto.UserResponse"}
            }
        },
        "dto.MessageResponse": {
            "type": "object",
            "properties": {"message": {"type": "string"}, "redirect": {"type": "string"}}
        },
        "dto.QuestionResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "number": {"type": "integer"},
                "question_text": {"type": "string"},
                "options": {"type": "object", "additionalProperties": {"type": "string"}}
            }
        },
        "dto.QuizResponse": {
            "type": "object",
            "properties": {
                "subject": {"type": "string"},
                "level": {"type": "string"},
                "mode": {"type": "string"},
                "question_ids": {"type": "string"},
                "questions": {"type": "array", "items": {"$ref": "#/definitions/dto.QuestionResponse"}},
                "message": {"type": "string"},
                "redirect": {"type": "string"}
            }
        },
        "dto.SubmitRequest": {
            "type": "object",
            "required": ["level", "subject"],
            "properties": {
                "subject": {"type": "string"},
                "level": {"type": "string"},
                "question_ids": {"type": "string"},
                "answers": {"type": "object", "additionalProperties": {"type": "string"}}
            }
        },
        "dto.AnswerResult": {
            "type": "object",
            "properties": {
                "question_id": {"type": "string"},
                "number": {"type": "integer"},
                "question_text": {"type": "string"},
                "chosen_option": {"type": "string"},
                "correct_option": {"type": "string"},
                "is_correct": {"type": "boolean"},
                "explanation": {"type": "string"}
            }
        },
        "dto.ResultResponse": {
            "type": "object",
            "properties": {
                "attempt_id": {"type": "string"},
                "subject": {"type": "string"},
                "level": {"type": "string"},
                "score": {"type": "integer"},
                "total": {"type": "integer"},
                "results": {"type": "array", "items": {"$ref": "#/definitions/dto.AnswerResult"}}
            }
        },
        "dto.AttemptResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "subject": {"type": "string"},
                "level": {"type": "string"},
                "score": {"type": "integer"},
                "total_questions": {"type": "integer"},
                "created_at": {"type": "string"}
            }
        },
        "dto.DashboardResponse": {
            "type": "object",
            "properties": {
                "username": {"type": "string"},
                "attempts": {"type": "array", "items": {"$ref": "#/definitions/dto.AttemptResponse"}},
                "subject_levels": {"type": "object", "additionalProperties": {"type": "array", "items": {"type": "string"}}}
            }
        },
        "dto.ResetResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "attempts_deleted": {"type": "integer"},
                "redirect": {"type": "string"}
            }
        },
        "dto.HealthResponse": {
            "type": "object",
            "properties": {"status": {"type": "string"}, "database": {"type": "string"}, "cache": {"type": "string"}}
        },
        "middleware.ErrorResponse": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"},
                "redirect": {"type": "string"},
                "details": {"type": "object", "additionalProperties": true}
            }
        }
    },
    "securityDefinitions": {
        "ApiKeyAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8090",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "MCQ Quiz API",
	Description:      "Multi-user multiple choice quiz service.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
