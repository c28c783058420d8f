package model

import "time"

// User represents a row in the `usuarios` table. Agency staff log in with
// email + password and carry a role used for route authorization.
//
// Fields:
//  ID           – usuarios.id_usuario, primary key.
//  Nombre       – usuarios.nombre, display name of the agent.
//  Email        – usuarios.email, unique login identifier.
//  PasswordHash – usuarios.password, bcrypt hash.
//  Role         – usuarios.rol (e.g. "agente" or "admin").
type User struct {
	ID           uint64 // usuarios.id_usuario
	Nombre       string // usuarios.nombre
	Email        string // usuarios.email
	PasswordHash string // usuarios.password
	Role         string // usuarios.rol
}

// RefreshToken models an entry in the `refresh_tokens` table. Only the
// SHA-256 hash of the token value is stored, never the raw string.
//
// Fields:
//  ID        – primary key identifier.
//  UserID    – owner of the token.
//  TokenHash – SHA-256 hex digest of the token value.
//  ExpiresAt – expiration timestamp of the token.
//  RevokedAt – when the token was revoked (null if still active).
//  CreatedAt – timestamp of creation.
type RefreshToken struct {
	ID        uint64     // refresh_tokens.id
	UserID    uint64     // refresh_tokens.user_id
	TokenHash string     // refresh_tokens.token_hash
	ExpiresAt time.Time  // refresh_tokens.expires_at
	RevokedAt *time.Time // refresh_tokens.revoked_at (nullable)
	CreatedAt time.Time  // refresh_tokens.created_at
}
