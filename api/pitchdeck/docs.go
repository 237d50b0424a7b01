// Package pitchdeck holds the swagger document served under /swagger/.
package pitchdeck

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "AussieBroadWAN Team",
            "url": "https://github.com/aussiebroadwan/pitchdeck"
        },
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/": {
            "get": {
                "description": "Answers 200 while the process is serving.",
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Root health",
                "responses": {
                    "200": {"description": "success, message, timestamp", "schema": {"$ref": "#/definitions/pitchsdk.HealthResponse"}}
                }
            }
        },
        "/api/health": {
            "get": {
                "description": "Always answers 200 while the process is serving.",
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "API health",
                "responses": {
                    "200": {"description": "success, message, timestamp", "schema": {"$ref": "#/definitions/pitchsdk.HealthResponse"}}
                }
            }
        },
        "/livez": {
            "get": {
                "description": "Returns uptime and version. Always 200 while the service is running.",
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Liveness probe",
                "responses": {
                    "200": {"description": "status, uptime, version", "schema": {"$ref": "#/definitions/pitchsdk.ProbeResponse"}}
                }
            }
        },
        "/readyz": {
            "get": {
                "description": "Checks the database connection and the token signer.",
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Readiness probe",
                "responses": {
                    "200": {"description": "status, uptime, version, checks", "schema": {"$ref": "#/definitions/pitchsdk.ProbeResponse"}},
                    "503": {"description": "service not ready", "schema": {"$ref": "#/definitions/pitchsdk.ProbeResponse"}}
                }
            }
        },
        "/auth/signup": {
            "post": {
                "description": "Creates an account and returns a session token. Role defaults to founder.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Auth"],
                "summary": "Sign up",
                "parameters": [
                    {"description": "Account details", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/pitchsdk.SignupRequest"}}
                ],
                "responses": {
                    "201": {"description": "Account created", "schema": {"$ref": "#/definitions/pitchsdk.AuthResponse"}},
                    "400": {"description": "Validation failed", "schema": {"$ref": "#/definitions/pitchsdk.ErrorResponse"}},
                    "409": {"description": "Email already registered", "schema": {"$ref": "#/definitions/pitchsdk.ErrorResponse"}},
                    "429": {"description": "Rate limited", "schema": {"$ref": "#/definitions/pitchsdk.ErrorResponse"}}
                }
            }
        },
        "/auth/signup/investor": {
            "post": {
                "description": "Creates an investor account with optional investment preferences.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Auth"],
                "summary": "Sign up as investor",
                "parameters": [
                    {"description": "Investor details", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/pitchsdk.InvestorSignupRequest"}}
                ],
                "responses": {
                    "201": {"description": "Account created", "schema": {"$ref": "#/definitions/pitchsdk.AuthResponse"}},
                    "400": {"description": "Validation failed", "schema": {"$ref": "#/definitions/pitchsdk.ErrorResponse"}},
                    "409": {"description": "Email already registered", "schema": {"$ref": "#/definitions/pitchsdk.ErrorResponse"}}
                }
            }
        },
        "/auth/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Auth"],
                "summary": "Log in",
                "parameters": [
                    {"description": "Credentials", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/pitchsdk.LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "Logged in", "schema": {"$ref": "#/definitions/pitchsdk.AuthResponse"}},
                    "400": {"description": "Validation failed", "schema": {"$ref": "#/definitions/pitchsdk.ErrorResponse"}},
                    "401": {"description": "Invalid email or password", "schema": {"$ref": "#/definitions/pitchsdk.ErrorResponse"}}
                }
            }
        },
        "/auth/me": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Auth"],
                "summary": "Current user",
                "responses": {
                    "200": {"description": "Current user", "schema": {"$ref": "#/definitions/pitchsdk.MeResponse"}},
                    "401": {"description": "Missing, invalid or revoked token", "schema": {"$ref": "#/definitions/pitchsdk.ErrorResponse"}},
                    "404": {"description": "User no longer exists", "schema": {"$ref": "#/definitions/pitchsdk.ErrorResponse"}}
                }
            }
        },
        "/auth/profile": {
            "put": {
                "security": [{"BearerAuth": []}],
                "description": "Only the fields present in the body change. When the role changes a new token is returned in data.token.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Auth"],
                "summary": "Update profile",
                "parameters": [
                    {"description": "Fields to change", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/pitchsdk.UpdateProfileRequest"}}
                ],
                "responses": {
                    "200": {"description": "Updated user", "schema": {"$ref": "#/definitions/pitchsdk.AuthResponse"}},
                    "400": {"description": "Validation failed", "schema": {"$ref": "#/definitions/pitchsdk.ErrorResponse"}},
                    "401": {"description": "Missing, invalid or revoked token", "schema": {"$ref": "#/definitions/pitchsdk.ErrorResponse"}}
                }
            }
        },
        "/auth/logout": {
            "post": {
                "description": "Revokes the bearer token when one is presented. The client must also discard it.",
                "produces": ["application/json"],
                "tags": ["Auth"],
                "summary": "Log out",
                "responses": {
                    "200": {"description": "Logged out", "schema": {"$ref": "#/definitions/pitchsdk.ErrorResponse"}}
                }
            }
        },
        "/auth/google": {
            "get": {
                "tags": ["Auth"],
                "summary": "Sign in with Google",
                "responses": {
                    "302": {"description": "Found"},
                    "503": {"description": "Google OAuth is not configured", "schema": {"$ref": "#/definitions/pitchsdk.ErrorResponse"}}
                }
            }
        },
        "/auth/google/callback": {
            "get": {
                "tags": ["Auth"],
                "summary": "Google sign-in callback",
                "parameters": [
                    {"type": "string", "description": "State issued by /auth/google", "name": "state", "in": "query", "required": true},
                    {"type": "string", "description": "Authorization code", "name": "code", "in": "query", "required": true}
                ],
                "responses": {
                    "302": {"description": "Found"},
                    "503": {"description": "Google OAuth is not configured", "schema": {"$ref": "#/definitions/pitchsdk.ErrorResponse"}}
                }
            }
        },
        "/auth/error": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Auth"],
                "summary": "Sign-in failure",
                "responses": {
                    "400": {"description": "Authentication failed", "schema": {"$ref": "#/definitions/pitchsdk.ErrorResponse"}}
                }
            }
        },
        "/api/investor/pitches": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Investor"],
                "summary": "Browse pitches",
                "parameters": [
                    {"type": "string", "description": "Exact industry match", "name": "industry", "in": "query"},
                    {"type": "string", "description": "Exact stage match", "name": "stage", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "Pitches", "schema": {"$ref": "#/definitions/pitchsdk.PitchListResponse"}},
                    "401": {"description": "Missing, invalid or revoked token", "schema": {"$ref": "#/definitions/pitchsdk.ErrorResponse"}},
                    "403": {"description": "Access denied", "schema": {"$ref": "#/definitions/pitchsdk.ErrorResponse"}}
                }
            }
        },
        "/api/investor/interest/{id}": {
            "post": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Investor"],
                "summary": "Mark interest",
                "parameters": [
                    {"type": "string", "description": "Pitch id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "Interest recorded", "schema": {"$ref": "#/definitions/pitchsdk.InterestResponse"}},
                    "403": {"description": "Access denied", "schema": {"$ref": "#/definitions/pitchsdk.ErrorResponse"}},
                    "404": {"description": "Pitch not found", "schema": {"$ref": "#/definitions/pitchsdk.ErrorResponse"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Investor"],
                "summary": "Remove interest",
                "parameters": [
                    {"type": "string", "description": "Pitch id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "Interest removed", "schema": {"$ref": "#/definitions/pitchsdk.ErrorResponse"}},
                    "403": {"description": "Access denied", "schema": {"$ref": "#/definitions/pitchsdk.ErrorResponse"}}
                }
            }
        },
        "/api/investor/interests": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Investor"],
                "summary": "My interests",
                "responses": {
                    "200": {"description": "Pitches in the order interest was recorded", "schema": {"$ref": "#/definitions/pitchsdk.PitchListResponse"}},
                    "403": {"description": "Access denied", "schema": {"$ref": "#/definitions/pitchsdk.ErrorResponse"}}
                }
            }
        },
        "/api/startups": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Startups"],
                "summary": "List pitches",
                "parameters": [
                    {"type": "string", "description": "Exact industry match", "name": "industry", "in": "query"},
                    {"type": "string", "description": "Exact stage match", "name": "stage", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "Pitches", "schema": {"$ref": "#/definitions/pitchsdk.PitchListResponse"}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Startups"],
                "summary": "Submit a pitch",
                "parameters": [
                    {"description": "Pitch", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/pitchsdk.PitchRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created pitch", "schema": {"$ref": "#/definitions/pitchsdk.PitchResponse"}},
                    "400": {"description": "Validation failed", "schema": {"$ref": "#/definitions/pitchsdk.ErrorResponse"}},
                    "403": {"description": "Access denied", "schema": {"$ref": "#/definitions/pitchsdk.ErrorResponse"}},
                    "409": {"description": "Duplicate pitch name", "schema": {"$ref": "#/definitions/pitchsdk.ErrorResponse"}}
                }
            }
        },
        "/api/startups/mine": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Startups"],
                "summary": "My pitches",
                "responses": {
                    "200": {"description": "Pitches", "schema": {"$ref": "#/definitions/pitchsdk.PitchListResponse"}},
                    "403": {"description": "Access denied", "schema": {"$ref": "#/definitions/pitchsdk.ErrorResponse"}}
                }
            }
        },
        "/api/startups/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Startups"],
                "summary": "Get a pitch",
                "parameters": [
                    {"type": "string", "description": "Pitch id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "Pitch", "schema": {"$ref": "#/definitions/pitchsdk.PitchResponse"}},
                    "404": {"description": "Pitch not found", "schema": {"$ref": "#/definitions/pitchsdk.ErrorResponse"}}
                }
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Startups"],
                "summary": "Update a pitch",
                "parameters": [
                    {"type": "string", "description": "Pitch id", "name": "id", "in": "path", "required": true},
                    {"description": "Pitch", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/pitchsdk.PitchRequest"}}
                ],
                "responses": {
                    "200": {"description": "Updated pitch", "schema": {"$ref": "#/definitions/pitchsdk.PitchResponse"}},
                    "403": {"description": "Not the owner", "schema": {"$ref": "#/definitions/pitchsdk.ErrorResponse"}},
                    "404": {"description": "Pitch not found", "schema": {"$ref": "#/definitions/pitchsdk.ErrorResponse"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Startups"],
                "summary": "Delete a pitch",
                "parameters": [
                    {"type": "string", "description": "Pitch id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "Deleted", "schema": {"$ref": "#/definitions/pitchsdk.ErrorResponse"}},
                    "403": {"description": "Not the owner", "schema": {"$ref": "#/definitions/pitchsdk.ErrorResponse"}},
                    "404": {"description": "Pitch not found", "schema": {"$ref": "#/definitions/pitchsdk.ErrorResponse"}}
                }
            }
        },
        "/api/startups/{id}/interests": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Startups"],
                "summary": "Pitch interest",
                "parameters": [
                    {"type": "string", "description": "Pitch id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "Interested investors", "schema": {"$ref": "#/definitions/pitchsdk.PitchInterestsResponse"}},
                    "403": {"description": "Not the owner", "schema": {"$ref": "#/definitions/pitchsdk.ErrorResponse"}},
                    "404": {"description": "Pitch not found", "schema": {"$ref": "#/definitions/pitchsdk.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "pitchsdk.ErrorResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "message": {"type": "string"},
                "errors": {"type": "object", "additionalProperties": {"type": "string"}},
                "stack": {"type": "string"}
            }
        },
        "pitchsdk.HealthResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "message": {"type": "string"},
                "timestamp": {"type": "string"}
            }
        },
        "pitchsdk.ProbeChecks": {
            "type": "object",
            "properties": {
                "database": {"type": "string"},
                "signer": {"type": "string"}
            }
        },
        "pitchsdk.ProbeResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "uptime": {"type": "string"},
                "version": {"type": "string"},
                "checks": {"$ref": "#/definitions/pitchsdk.ProbeChecks"}
            }
        },
        "pitchsdk.Profile": {
            "type": "object",
            "properties": {
                "avatar": {"type": "string"},
                "bio": {"type": "string"},
                "location": {"type": "string"},
                "website": {"type": "string"},
                "linkedin": {"type": "string"},
                "twitter": {"type": "string"}
            }
        },
        "pitchsdk.InvestmentPreferences": {
            "type": "object",
            "properties": {
                "industries": {"type": "array", "items": {"type": "string"}},
                "stages": {"type": "array", "items": {"type": "string"}},
                "minInvestment": {"type": "number"},
                "maxInvestment": {"type": "number"}
            }
        },
        "pitchsdk.User": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "email": {"type": "string"},
                "role": {"type": "string", "enum": ["founder", "investor", "community"]},
                "profile": {"$ref": "#/definitions/pitchsdk.Profile"},
                "isVerified": {"type": "boolean"},
                "isActive": {"type": "boolean"},
                "hasGoogle": {"type": "boolean"},
                "investmentPreferences": {"$ref": "#/definitions/pitchsdk.InvestmentPreferences"},
                "interestedPitches": {"type": "array", "items": {"type": "string"}},
                "createdAt": {"type": "string"},
                "updatedAt": {"type": "string"}
            }
        },
        "pitchsdk.UserSummary": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "email": {"type": "string"},
                "role": {"type": "string"},
                "profile": {"$ref": "#/definitions/pitchsdk.Profile"}
            }
        },
        "pitchsdk.AuthData": {
            "type": "object",
            "properties": {
                "token": {"type": "string"},
                "expiresAt": {"type": "string"},
                "user": {"$ref": "#/definitions/pitchsdk.User"}
            }
        },
        "pitchsdk.AuthResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "message": {"type": "string"},
                "data": {"$ref": "#/definitions/pitchsdk.AuthData"}
            }
        },
        "pitchsdk.MeResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "data": {"type": "object", "properties": {"user": {"$ref": "#/definitions/pitchsdk.User"}}}
            }
        },
        "pitchsdk.Pitch": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "description": {"type": "string"},
                "industry": {"type": "string"},
                "stage": {"type": "string"},
                "fundingGoal": {"type": "number"},
                "website": {"type": "string"},
                "founder": {"$ref": "#/definitions/pitchsdk.UserSummary"},
                "createdAt": {"type": "string"},
                "updatedAt": {"type": "string"}
            }
        },
        "pitchsdk.PitchResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "message": {"type": "string"},
                "data": {"$ref": "#/definitions/pitchsdk.Pitch"}
            }
        },
        "pitchsdk.PitchListResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "data": {"type": "array", "items": {"$ref": "#/definitions/pitchsdk.Pitch"}}
            }
        },
        "pitchsdk.PitchInterestsResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "data": {
                    "type": "object",
                    "properties": {
                        "pitchId": {"type": "string"},
                        "count": {"type": "integer"},
                        "investors": {"type": "array", "items": {"$ref": "#/definitions/pitchsdk.UserSummary"}}
                    }
                }
            }
        },
        "pitchsdk.InterestResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "message": {"type": "string"},
                "data": {
                    "type": "object",
                    "properties": {
                        "pitchId": {"type": "string"},
                        "added": {"type": "boolean"}
                    }
                }
            }
        },
        "pitchsdk.SignupRequest": {
            "type": "object",
            "required": ["email", "name", "password"],
            "properties": {
                "name": {"type": "string", "minLength": 2, "maxLength": 50},
                "email": {"type": "string"},
                "password": {"type": "string", "minLength": 6, "maxLength": 72},
                "role": {"type": "string", "enum": ["founder", "investor", "community"]}
            }
        },
        "pitchsdk.PreferencesRequest": {
            "type": "object",
            "properties": {
                "industries": {"type": "array", "items": {"type": "string"}},
                "stages": {"type": "array", "items": {"type": "string", "enum": ["Pre-Seed", "Seed", "Series A", "Series B", "Series C", "Growth", "IPO"]}},
                "minInvestment": {"type": "number", "minimum": 0},
                "maxInvestment": {"type": "number", "minimum": 0}
            }
        },
        "pitchsdk.InvestorSignupRequest": {
            "type": "object",
            "required": ["email", "name", "password"],
            "properties": {
                "name": {"type": "string", "minLength": 2, "maxLength": 50},
                "email": {"type": "string"},
                "password": {"type": "string", "minLength": 6, "maxLength": 72},
                "investmentPreferences": {"$ref": "#/definitions/pitchsdk.PreferencesRequest"}
            }
        },
        "pitchsdk.LoginRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "pitchsdk.UpdateProfileRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string", "minLength": 2, "maxLength": 50},
                "role": {"type": "string"},
                "avatar": {"type": "string"},
                "bio": {"type": "string", "maxLength": 500},
                "location": {"type": "string", "maxLength": 100},
                "website": {"type": "string"},
                "linkedin": {"type": "string"},
                "twitter": {"type": "string", "maxLength": 100},
                "investmentPreferences": {"$ref": "#/definitions/pitchsdk.PreferencesRequest"}
            }
        },
        "pitchsdk.PitchRequest": {
            "type": "object",
            "required": ["description", "industry", "name", "stage"],
            "properties": {
                "name": {"type": "string", "minLength": 2, "maxLength": 100},
                "description": {"type": "string", "maxLength": 5000},
                "industry": {"type": "string", "maxLength": 100},
                "stage": {"type": "string", "enum": ["Pre-Seed", "Seed", "Series A", "Series B", "Series C", "Growth", "IPO"]},
                "fundingGoal": {"type": "number", "minimum": 0},
                "website": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Session token. Format: \"Bearer {token}\".",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "0.1.0",
	Host:             "localhost:5099",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "Pitchdeck API",
	Description:      "Startup pitch marketplace. Founders submit pitches, investors browse them and mark interest.\n\nSession tokens are HS256 signed JWTs carrying the user id and role.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
