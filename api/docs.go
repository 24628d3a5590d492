// Package api registers the OpenAPI document served under /docs.
//
// The document follows the swag annotations on the handlers in
// internal/controllers/v1 and internal/router. Keep both in sync.
package api

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
                "description": "Entrypoint for the API, listing all endpoints",
                "tags": [
                    "General"
                ],
                "summary": "API root",
                "responses": {
                    "200": {
                        "description": ""
                    }
                },
                "produces": [
                    "application/json"
                ]
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "General"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": ""
                    }
                },
                "produces": [
                    "application/json"
                ]
            }
        },
        "/version": {
            "get": {
                "description": "Returns the software version of the API",
                "tags": [
                    "General"
                ],
                "summary": "API version",
                "responses": {
                    "200": {
                        "description": ""
                    }
                },
                "produces": [
                    "application/json"
                ]
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "General"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": ""
                    }
                },
                "produces": [
                    "application/json"
                ]
            }
        },
        "/v1": {
            "get": {
                "description": "Returns general information about the v1 API",
                "tags": [
                    "v1"
                ],
                "summary": "v1 API",
                "responses": {
                    "200": {
                        "description": ""
                    }
                },
                "produces": [
                    "application/json"
                ]
            },
            "delete": {
                "description": "Permanently deletes all resources",
                "tags": [
                    "v1"
                ],
                "summary": "Delete everything",
                "responses": {
                    "204": {
                        "description": ""
                    }
                },
                "produces": [
                    "application/json"
                ]
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "v1"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": ""
                    }
                },
                "produces": [
                    "application/json"
                ]
            }
        },
        "/v1/pockets": {
            "get": {
                "description": "Returns a list of pockets",
                "tags": [
                    "Pockets"
                ],
                "summary": "Get pockets",
                "responses": {
                    "200": {
                        "description": ""
                    }
                },
                "produces": [
                    "application/json"
                ]
            },
            "post": {
                "description": "Creates new pockets",
                "tags": [
                    "Pockets"
                ],
                "summary": "Create pockets",
                "responses": {
                    "201": {
                        "description": ""
                    }
                },
                "produces": [
                    "application/json"
                ]
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Pockets"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": ""
                    }
                },
                "produces": [
                    "application/json"
                ]
            }
        },
        "/v1/pockets/{id}": {
            "get": {
                "description": "Returns a specific pocket",
                "tags": [
                    "Pockets"
                ],
                "summary": "Get pocket",
                "responses": {
                    "200": {
                        "description": ""
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "produces": [
                    "application/json"
                ]
            },
            "patch": {
                "description": "Updates an existing pocket. Only values to be updated need to be specified.",
                "tags": [
                    "Pockets"
                ],
                "summary": "Update pocket",
                "responses": {
                    "200": {
                        "description": ""
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "produces": [
                    "application/json"
                ]
            },
            "delete": {
                "description": "Deletes a pocket",
                "tags": [
                    "Pockets"
                ],
                "summary": "Delete pocket",
                "responses": {
                    "204": {
                        "description": ""
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "produces": [
                    "application/json"
                ]
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Pockets"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": ""
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "produces": [
                    "application/json"
                ]
            }
        },
        "/v1/categories": {
            "get": {
                "description": "Returns a list of categories",
                "tags": [
                    "Categories"
                ],
                "summary": "Get categories",
                "responses": {
                    "200": {
                        "description": ""
                    }
                },
                "produces": [
                    "application/json"
                ]
            },
            "post": {
                "description": "Creates new categories",
                "tags": [
                    "Categories"
                ],
                "summary": "Create categories",
                "responses": {
                    "201": {
                        "description": ""
                    }
                },
                "produces": [
                    "application/json"
                ]
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Categories"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": ""
                    }
                },
                "produces": [
                    "application/json"
                ]
            }
        },
        "/v1/categories/{id}": {
            "get": {
                "description": "Returns a specific category",
                "tags": [
                    "Categories"
                ],
                "summary": "Get category",
                "responses": {
                    "200": {
                        "description": ""
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "produces": [
                    "application/json"
                ]
            },
            "patch": {
                "description": "Updates an existing category. Only values to be updated need to be specified.",
                "tags": [
                    "Categories"
                ],
                "summary": "Update category",
                "responses": {
                    "200": {
                        "description": ""
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "produces": [
                    "application/json"
                ]
            },
            "delete": {
                "description": "Deletes a category",
                "tags": [
                    "Categories"
                ],
                "summary": "Delete category",
                "responses": {
                    "204": {
                        "description": ""
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "produces": [
                    "application/json"
                ]
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Categories"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": ""
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "produces": [
                    "application/json"
                ]
            }
        },
        "/v1/transactions": {
            "get": {
                "description": "Returns a list of transactions",
                "tags": [
                    "Transactions"
                ],
                "summary": "Get transactions",
                "responses": {
                    "200": {
                        "description": ""
                    }
                },
                "produces": [
                    "application/json"
                ]
            },
            "post": {
                "description": "Creates new transactions",
                "tags": [
                    "Transactions"
                ],
                "summary": "Create transactions",
                "responses": {
                    "201": {
                        "description": ""
                    }
                },
                "produces": [
                    "application/json"
                ]
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Transactions"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": ""
                    }
                },
                "produces": [
                    "application/json"
                ]
            }
        },
        "/v1/transactions/{id}": {
            "get": {
                "description": "Returns a specific transaction",
                "tags": [
                    "Transactions"
                ],
                "summary": "Get transaction",
                "responses": {
                    "200": {
                        "description": ""
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "produces": [
                    "application/json"
                ]
            },
            "patch": {
                "description": "Updates an existing transaction. Only values to be updated need to be specified.",
                "tags": [
                    "Transactions"
                ],
                "summary": "Update transaction",
                "responses": {
                    "200": {
                        "description": ""
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "produces": [
                    "application/json"
                ]
            },
            "delete": {
                "description": "Deletes a transaction",
                "tags": [
                    "Transactions"
                ],
                "summary": "Delete transaction",
                "responses": {
                    "204": {
                        "description": ""
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "produces": [
                    "application/json"
                ]
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Transactions"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": ""
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "produces": [
                    "application/json"
                ]
            }
        },
        "/v1/allocation-rules": {
            "get": {
                "description": "Returns a list of allocation rules",
                "tags": [
                    "Allocation Rules"
                ],
                "summary": "Get allocation rules",
                "responses": {
                    "200": {
                        "description": ""
                    }
                },
                "produces": [
                    "application/json"
                ]
            },
            "post": {
                "description": "Creates new allocation rules",
                "tags": [
                    "Allocation Rules"
                ],
                "summary": "Create allocation rules",
                "responses": {
                    "201": {
                        "description": ""
                    }
                },
                "produces": [
                    "application/json"
                ]
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Allocation Rules"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": ""
                    }
                },
                "produces": [
                    "application/json"
                ]
            }
        },
        "/v1/allocation-rules/{id}": {
            "get": {
                "description": "Returns a specific allocation rule",
                "tags": [
                    "Allocation Rules"
                ],
                "summary": "Get allocation rule",
                "responses": {
                    "200": {
                        "description": ""
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "produces": [
                    "application/json"
                ]
            },
            "patch": {
                "description": "Updates an existing allocation rule. Only values to be updated need to be specified.",
                "tags": [
                    "Allocation Rules"
                ],
                "summary": "Update allocation rule",
                "responses": {
                    "200": {
                        "description": ""
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "produces": [
                    "application/json"
                ]
            },
            "delete": {
                "description": "Deletes a allocation rule",
                "tags": [
                    "Allocation Rules"
                ],
                "summary": "Delete allocation rule",
                "responses": {
                    "204": {
                        "description": ""
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "produces": [
                    "application/json"
                ]
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Allocation Rules"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": ""
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "produces": [
                    "application/json"
                ]
            }
        },
        "/v1/goals": {
            "get": {
                "description": "Returns a list of goals",
                "tags": [
                    "Goals"
                ],
                "summary": "Get goals",
                "responses": {
                    "200": {
                        "description": ""
                    }
                },
                "produces": [
                    "application/json"
                ]
            },
            "post": {
                "description": "Creates new goals",
                "tags": [
                    "Goals"
                ],
                "summary": "Create goals",
                "responses": {
                    "201": {
                        "description": ""
                    }
                },
                "produces": [
                    "application/json"
                ]
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Goals"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": ""
                    }
                },
                "produces": [
                    "application/json"
                ]
            }
        },
        "/v1/goals/{id}": {
            "get": {
                "description": "Returns a specific goal",
                "tags": [
                    "Goals"
                ],
                "summary": "Get goal",
                "responses": {
                    "200": {
                        "description": ""
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "produces": [
                    "application/json"
                ]
            },
            "patch": {
                "description": "Updates an existing goal. Only values to be updated need to be specified.",
                "tags": [
                    "Goals"
                ],
                "summary": "Update goal",
                "responses": {
                    "200": {
                        "description": ""
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "produces": [
                    "application/json"
                ]
            },
            "delete": {
                "description": "Deletes a goal",
                "tags": [
                    "Goals"
                ],
                "summary": "Delete goal",
                "responses": {
                    "204": {
                        "description": ""
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "produces": [
                    "application/json"
                ]
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Goals"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": ""
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "produces": [
                    "application/json"
                ]
            }
        },
        "/v1/liabilities": {
            "get": {
                "description": "Returns a list of liabilities",
                "tags": [
                    "Liabilities"
                ],
                "summary": "Get liabilities",
                "responses": {
                    "200": {
                        "description": ""
                    }
                },
                "produces": [
                    "application/json"
                ]
            },
            "post": {
                "description": "Creates new liabilities",
                "tags": [
                    "Liabilities"
                ],
                "summary": "Create liabilities",
                "responses": {
                    "201": {
                        "description": ""
                    }
                },
                "produces": [
                    "application/json"
                ]
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Liabilities"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": ""
                    }
                },
                "produces": [
                    "application/json"
                ]
            }
        },
        "/v1/liabilities/{id}": {
            "get": {
                "description": "Returns a specific liability",
                "tags": [
                    "Liabilities"
                ],
                "summary": "Get liability",
                "responses": {
                    "200": {
                        "description": ""
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "produces": [
                    "application/json"
                ]
            },
            "patch": {
                "description": "Updates an existing liability. Only values to be updated need to be specified.",
                "tags": [
                    "Liabilities"
                ],
                "summary": "Update liability",
                "responses": {
                    "200": {
                        "description": ""
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "produces": [
                    "application/json"
                ]
            },
            "delete": {
                "description": "Deletes a liability",
                "tags": [
                    "Liabilities"
                ],
                "summary": "Delete liability",
                "responses": {
                    "204": {
                        "description": ""
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "produces": [
                    "application/json"
                ]
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Liabilities"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": ""
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "produces": [
                    "application/json"
                ]
            }
        },
        "/v1/allocations": {
            "post": {
                "description": "Books an income into the free-cash pocket and transfers the allocated amounts to the target pockets.",
                "tags": [
                    "Allocations"
                ],
                "summary": "Apply allocation",
                "responses": {
                    "201": {
                        "description": ""
                    }
                },
                "produces": [
                    "application/json"
                ]
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Allocations"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": ""
                    }
                },
                "produces": [
                    "application/json"
                ]
            }
        },
        "/v1/allocations/preview": {
            "post": {
                "description": "Distributes an income over the pockets according to the allocation rules without saving anything.",
                "tags": [
                    "Allocations"
                ],
                "summary": "Preview allocation",
                "responses": {
                    "200": {
                        "description": ""
                    }
                },
                "produces": [
                    "application/json"
                ]
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Allocations"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": ""
                    }
                },
                "produces": [
                    "application/json"
                ]
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "",
	Host:             "",
	BasePath:         "",
	Schemes:          []string{},
	Title:            "",
	Description:      "",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
