package model

import "time"

// User represents an application user record as stored in the
// `users` table. Each field corresponds to a column in the
// database. Accounts are created only through registration and
// are never updated or deleted by the API, so the struct carries
// no JSON tags; handlers build their own response payloads and
// must never serialize PasswordHash.
//
// Fields:
//  ID                  – primary key identifier of the user.
//  Email               – unique email address.
//  PasswordHash        – bcrypt hashed password.
//  FirstName           – optional given name.
//  LastName            – optional family name.
//  ProfileThumbnailURL – optional avatar URL.
//  CreatedAt           – timestamp of creation.
//  UpdatedAt           – timestamp of last update.
type User struct {
	ID                  uint64    // users.id
	Email               string    // users.email
	PasswordHash        string    // users.password_hash
	FirstName           string    // users.first_name
	LastName            string    // users.last_name
	ProfileThumbnailURL string    // users.profile_thumbnail_url
	CreatedAt           time.Time // users.created_at
	UpdatedAt           time.Time // users.updated_at
}
