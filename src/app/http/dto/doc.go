// Package dto contains Data Transfer Objects for HTTP requests and responses.
//
// Request bodies use camelCase keys. Each request type converts itself into
// the input the use case expects.
//
// Naming convention:
//   - Request types: <Action><Resource>Request (e.g., CreateOrderRequest)
//   - Response types: <Resource>Response (e.g., CreatedResponse)
package dto
