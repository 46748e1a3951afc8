// Package docs registers the OpenAPI document served at /swagger/.
// Regenerate with: swag init -g cmd/wallet/main.go
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
        "/wallet": {
            "delete": {
                "description": "Locks and deletes the stored wallet. Only the mnemonic backup can restore it.",
                "produces": ["application/json"],
                "tags": ["wallet"],
                "summary": "Reset wallet",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.StatusResponse"}}
                }
            }
        },
        "/wallet/address": {
            "get": {
                "description": "Returns the unlocked account address with a QR code (base64 PNG)",
                "produces": ["application/json"],
                "tags": ["wallet"],
                "summary": "Get wallet address",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.AddressResponse"}},
                    "423": {"description": "Locked", "schema": {"$ref": "#/definitions/model.ErrorResponse"}}
                }
            }
        },
        "/wallet/balance": {
            "get": {
                "description": "Gets SOL balance of the unlocked account with its USD value",
                "produces": ["application/json"],
                "tags": ["wallet"],
                "summary": "Get wallet balance",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.BalanceResponse"}},
                    "423": {"description": "Locked", "schema": {"$ref": "#/definitions/model.ErrorResponse"}}
                }
            }
        },
        "/wallet/create": {
            "post": {
                "description": "Generates a mnemonic for a new wallet. Nothing is stored until the backup is verified.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["wallet"],
                "summary": "Start wallet creation",
                "parameters": [
                    {"description": "New password", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/model.CreateRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.CreateResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/model.ErrorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/model.ErrorResponse"}}
                }
            }
        },
        "/wallet/create/verify": {
            "post": {
                "description": "Checks the words at verifyPositions, then seals and stores the mnemonic and unlocks the wallet",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["wallet"],
                "summary": "Confirm mnemonic backup",
                "parameters": [
                    {"description": "Words at the requested positions, in order", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/model.VerifyRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.WalletResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/model.ErrorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/model.ErrorResponse"}}
                }
            }
        },
        "/wallet/lock": {
            "post": {
                "produces": ["application/json"],
                "tags": ["wallet"],
                "summary": "Lock wallet",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.StatusResponse"}}
                }
            }
        },
        "/wallet/send": {
            "post": {
                "description": "Sends a SOL transaction to the specified address",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["wallet"],
                "summary": "Send SOL",
                "parameters": [
                    {"description": "Payment data", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/model.PayRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.PayResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/model.ErrorResponse"}},
                    "423": {"description": "Locked", "schema": {"$ref": "#/definitions/model.ErrorResponse"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/model.ErrorResponse"}}
                }
            }
        },
        "/wallet/transactions": {
            "get": {
                "description": "Gets the most recent transaction signatures of the unlocked account, newest first",
                "produces": ["application/json"],
                "tags": ["wallet"],
                "summary": "Get wallet transactions",
                "parameters": [
                    {"type": "integer", "description": "Number of transactions (1-100, default 20)", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.TransactionsResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/model.ErrorResponse"}},
                    "423": {"description": "Locked", "schema": {"$ref": "#/definitions/model.ErrorResponse"}}
                }
            }
        },
        "/wallet/unlock": {
            "post": {
                "description": "Decrypts the stored mnemonic and derives the account keypair",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["wallet"],
                "summary": "Unlock wallet",
                "parameters": [
                    {"description": "Password and account index", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/model.UnlockRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.WalletResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/model.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/model.ErrorResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/model.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "model.AddressResponse": {
            "type": "object",
            "properties": {
                "accountIndex": {"type": "integer"},
                "address": {"type": "string"},
                "qrCode": {"type": "string"}
            }
        },
        "model.BalanceResponse": {
            "type": "object",
            "properties": {
                "address": {"type": "string"},
                "lamports": {"type": "integer"},
                "sol": {"type": "string"},
                "usd": {"type": "string"},
                "usdRate": {"type": "string"}
            }
        },
        "model.CreateRequest": {
            "type": "object",
            "properties": {
                "confirmPassword": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "model.CreateResponse": {
            "type": "object",
            "properties": {
                "mnemonic": {"type": "array", "items": {"type": "string"}},
                "verifyPositions": {"type": "array", "items": {"type": "integer"}}
            }
        },
        "model.ErrorResponse": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "error": {"type": "string"}
            }
        },
        "model.PayRequest": {
            "type": "object",
            "properties": {
                "amount": {"type": "string"},
                "toAddress": {"type": "string"}
            }
        },
        "model.PayResponse": {
            "type": "object",
            "properties": {
                "txId": {"type": "string"}
            }
        },
        "model.StatusResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "success": {"type": "boolean"}
            }
        },
        "model.Transaction": {
            "type": "object",
            "properties": {
                "memo": {"type": "string"},
                "slot": {"type": "integer"},
                "status": {"type": "string"},
                "timestamp": {"type": "string"},
                "txId": {"type": "string"}
            }
        },
        "model.TransactionsResponse": {
            "type": "object",
            "properties": {
                "address": {"type": "string"},
                "transactions": {"type": "array", "items": {"$ref": "#/definitions/model.Transaction"}}
            }
        },
        "model.UnlockRequest": {
            "type": "object",
            "properties": {
                "accountIndex": {"type": "integer"},
                "password": {"type": "string"}
            }
        },
        "model.VerifyRequest": {
            "type": "object",
            "properties": {
                "accountIndex": {"type": "integer"},
                "words": {"type": "array", "items": {"type": "string"}}
            }
        },
        "model.WalletResponse": {
            "type": "object",
            "properties": {
                "accountIndex": {"type": "integer"},
                "address": {"type": "string"}
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
	Title:            "Seed Wallet API",
	Description:      "Local Solana wallet: mnemonic backup, password-sealed storage and SOL transfers.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
