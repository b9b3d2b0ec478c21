// Package docs registers the OpenAPI document served at /swagger/*any.
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
        "/api/v1/tasks": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Tasks"],
                "summary": "List tasks",
                "parameters": [
                    {"type": "boolean", "description": "Include tasks whose due date has passed", "name": "include_past", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.listResp"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Tasks"],
                "summary": "Create a manual task",
                "parameters": [
                    {"description": "Task data", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.createReq"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.listResp"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/api/v1/tasks/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Tasks"],
                "summary": "Get a manual task",
                "parameters": [{"type": "string", "description": "Task ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.detailResp"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            },
            "patch": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Tasks"],
                "summary": "Update a manual task",
                "parameters": [
                    {"type": "string", "description": "Task ID", "name": "id", "in": "path", "required": true},
                    {"description": "Fields to update", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.updateReq"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.detailResp"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/api/v1/tasks/{id}/estimate": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Tasks"],
                "summary": "Estimate a task",
                "parameters": [{"type": "string", "description": "Task ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.estimateResp"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/api/v1/canvas": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Canvas"],
                "summary": "List external assignments",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/http.listResp"}}}
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Canvas"],
                "summary": "Replace external assignments",
                "parameters": [
                    {"description": "External records", "name": "body", "in": "body", "required": true, "schema": {"type": "array", "items": {"$ref": "#/definitions/model.RawTask"}}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.listResp"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/api/v1/summary": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Planner"],
                "summary": "Progress summary",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/http.summaryResp"}}}
            }
        },
        "/api/v1/schedule": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Planner"],
                "summary": "Full schedule",
                "parameters": [{"type": "string", "description": "Estimate source (heuristic or pert)", "name": "source", "in": "query"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.scheduleResp"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/api/v1/schedule/export": {
            "post": {
                "produces": ["application/json"],
                "tags": ["Planner"],
                "summary": "Export schedule to Google Calendar",
                "parameters": [{"type": "string", "description": "Estimate source (heuristic or pert)", "name": "source", "in": "query"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.exportResp"}},
                    "503": {"description": "Calendar not configured", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/api/v1/motivation": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Planner"],
                "summary": "Motivation message",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/http.motivationResp"}}}
            }
        },
        "/health": {
            "get": {"produces": ["application/json"], "tags": ["Health"], "summary": "Health Check", "responses": {"200": {"description": "API is healthy"}}}
        },
        "/ready": {
            "get": {"produces": ["application/json"], "tags": ["Health"], "summary": "Readiness Check", "responses": {"200": {"description": "API is ready"}, "503": {"description": "Keyword rules missing"}}}
        },
        "/live": {
            "get": {"produces": ["application/json"], "tags": ["Health"], "summary": "Liveness Check", "responses": {"200": {"description": "API is alive"}}}
        }
    },
    "definitions": {
        "response.Resp": {
            "type": "object",
            "properties": {
                "error_code": {"type": "integer"},
                "message": {"type": "string"},
                "data": {},
                "errors": {}
            }
        },
        "model.RawTask": {
            "type": "object",
            "properties": {
                "id": {},
                "title": {"type": "string"},
                "name": {"type": "string"},
                "description": {"type": "string"},
                "due_date": {},
                "category": {"type": "string"},
                "priority": {},
                "completed": {},
                "points": {},
                "points_possible": {},
                "group_weight": {},
                "estimated_minutes": {},
                "origin": {"type": "string"},
                "html_url": {"type": "string"}
            }
        },
        "http.createReq": {
            "type": "object",
            "properties": {
                "title": {"type": "string"},
                "description": {"type": "string"},
                "due_date": {"type": "string", "example": "in 3 days"},
                "category": {"type": "string", "enum": ["Assignments", "Career", "Health", "Fun", "General"]},
                "priority": {"description": "1 (highest) to 5, numbers or numeric strings; anything else resolves to 3"},
                "completed": {"type": "boolean"},
                "points": {"type": "number"},
                "points_possible": {"type": "number"},
                "estimated_minutes": {"type": "integer"}
            }
        },
        "http.updateReq": {
            "type": "object",
            "properties": {
                "title": {"type": "string"},
                "description": {"type": "string"},
                "due_date": {"type": "string"},
                "category": {"type": "string"},
                "priority": {"description": "1 (highest) to 5, numbers or numeric strings; anything else resolves to 3"},
                "completed": {"type": "boolean"},
                "estimated_minutes": {"type": "integer"}
            }
        },
        "http.taskResp": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "title": {"type": "string"},
                "description": {"type": "string"},
                "category": {"type": "string"},
                "priority": {"type": "integer"},
                "due_date": {"type": "string"},
                "completed": {"type": "boolean"},
                "origin": {"type": "string", "example": "manual"},
                "points": {"type": "number"},
                "points_possible": {"type": "number"},
                "group_weight": {"type": "number"},
                "estimated_minutes": {"type": "integer"},
                "html_url": {"type": "string"}
            }
        },
        "http.listResp": {
            "type": "object",
            "properties": {
                "tasks": {"type": "array", "items": {"$ref": "#/definitions/http.taskResp"}},
                "total": {"type": "integer"}
            }
        },
        "http.detailResp": {
            "type": "object",
            "properties": {"task": {"$ref": "#/definitions/http.taskResp"}}
        },
        "planner.PERTEstimate": {
            "type": "object",
            "properties": {
                "optimistic": {"type": "number"},
                "most_likely": {"type": "number"},
                "pessimistic": {"type": "number"},
                "expected": {"type": "number"},
                "stddev": {"type": "number"}
            }
        },
        "planner.FocusScore": {
            "type": "object",
            "properties": {"earned": {"type": "integer"}, "total": {"type": "integer"}}
        },
        "http.estimateResp": {
            "type": "object",
            "properties": {
                "task": {"$ref": "#/definitions/http.taskResp"},
                "estimated_minutes": {"type": "integer"},
                "pert": {"$ref": "#/definitions/planner.PERTEstimate"}
            }
        },
        "http.blockResp": {
            "type": "object",
            "properties": {
                "type": {"type": "string", "enum": ["work", "break"]},
                "task_id": {"type": "string"},
                "title": {"type": "string"},
                "category": {"type": "string"},
                "start": {"type": "string", "format": "date-time"},
                "end": {"type": "string", "format": "date-time"},
                "minutes": {"type": "integer"}
            }
        },
        "http.categoryStatsResp": {
            "type": "object",
            "properties": {"total": {"type": "integer"}, "next_two_days": {"type": "integer"}}
        },
        "http.summaryResp": {
            "type": "object",
            "properties": {
                "tasks_total": {"type": "integer"},
                "tasks_completed": {"type": "integer"},
                "focus_points_total": {"type": "integer"},
                "focus_points_earned": {"type": "integer"},
                "focus_weighted": {"$ref": "#/definitions/planner.FocusScore"},
                "per_category": {"type": "object", "additionalProperties": {"$ref": "#/definitions/http.categoryStatsResp"}},
                "schedule": {"type": "array", "items": {"$ref": "#/definitions/http.blockResp"}}
            }
        },
        "http.scheduleResp": {
            "type": "object",
            "properties": {
                "source": {"type": "string"},
                "work_minutes": {"type": "integer"},
                "days": {"type": "integer"},
                "blocks": {"type": "array", "items": {"$ref": "#/definitions/http.blockResp"}}
            }
        },
        "http.exportedBlockResp": {
            "type": "object",
            "properties": {
                "task_id": {"type": "string"},
                "title": {"type": "string"},
                "start": {"type": "string", "format": "date-time"},
                "end": {"type": "string", "format": "date-time"},
                "event_id": {"type": "string"},
                "link": {"type": "string"}
            }
        },
        "http.exportResp": {
            "type": "object",
            "properties": {
                "created": {"type": "array", "items": {"$ref": "#/definitions/http.exportedBlockResp"}},
                "skipped": {"type": "integer"},
                "failed": {"type": "integer"}
            }
        },
        "http.motivationResp": {
            "type": "object",
            "properties": {"message": {"type": "string"}}
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1",
	Host:             "localhost:8080",
	BasePath:         "",
	Schemes:          []string{"http"},
	Title:            "Task Planner API",
	Description:      "Ranks manual and Canvas tasks, estimates their duration and lays them out into work/break schedules.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
