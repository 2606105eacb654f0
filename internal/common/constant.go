// Package common contains shared constants and sentinel errors used across
// gatekeeper components.
package common

// AuthorizationHeaderName is the gRPC metadata key carrying the bearer token.
const AuthorizationHeaderName = "authorization"

// BearerPrefix precedes the token in AuthorizationHeaderName values.
const BearerPrefix = "Bearer "

// Well-known roles. The role set is open: any non-empty string is storable,
// only these carry meaning to the authorization gate.
const (
	RoleUser       = "USER"
	RoleAdmin      = "ADMIN"
	RoleSuperAdmin = "SUPERADMIN"
)
