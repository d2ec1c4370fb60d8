// Package docs provides the OpenAPI document served at /swagger/doc.json.
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
        "/api/studio/v1/campaigns": {
            "get": {
                "produces": ["application/json"],
                "tags": ["campaigns"],
                "summary": "List campaigns",
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["campaigns"],
                "summary": "Create a campaign from an offer, avatar and ad format",
                "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}
            }
        },
        "/api/studio/v1/campaigns/{campaign_id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["campaigns"],
                "summary": "Get full campaign state with child collections",
                "parameters": [{"type": "string", "name": "campaign_id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        },
        "/api/studio/v1/campaigns/{campaign_id}/phase": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["campaigns"],
                "summary": "Advance the campaign phase",
                "parameters": [{"type": "string", "name": "campaign_id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "409": {"description": "Phase violation"}}
            }
        },
        "/api/studio/v1/operations": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["operations"],
                "summary": "Dispatch a named pipeline operation",
                "responses": {"200": {"description": "OK"}, "400": {"description": "Unknown operation"}}
            }
        },
        "/webhooks/generation": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["webhooks"],
                "summary": "Provider generation task callback",
                "responses": {"200": {"description": "Accepted"}, "404": {"description": "Unknown task"}}
            }
        }
    }
}`

var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "AdForge API",
	Description:      "Workflow orchestration engine for AI video ad production.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
