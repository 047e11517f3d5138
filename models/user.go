// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// User represents an account entity used for authentication.
// It is stored as a document in the "users" collection.
// PasswordHash must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the store-assigned identifier of the user document.
	// It is not exposed via JSON.
	UserID int64 `json:"-"`

	// Username is the unique login of the user.
	Username string `json:"username"`

	// Email is the contact address supplied at signup.
	Email string `json:"email"`

	// Password carries the plain-text password of a signup or login
	// request. It is never persisted and never serialized back.
	Password string `json:"password,omitempty"`

	// PasswordHash is the bcrypt hash of the password.
	// Excluded from JSON; persisted only through [UserDocument].
	PasswordHash string `json:"-"`
}

// UserDocument is the persisted shape of a user in the "users" collection.
type UserDocument struct {
	Username     string `json:"username"`
	Email        string `json:"email"`
	PasswordHash string `json:"password_hash"`
}

// PublicUser is the representation of an authenticated caller that is safe
// to hand to request handlers: it never carries the password hash.
type PublicUser struct {
	UserID   int64  `json:"-"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Document converts u into its persisted shape.
func (u User) Document() UserDocument {
	return UserDocument{
		Username:     u.Username,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
	}
}

// Public strips credentials from u.
func (u User) Public() PublicUser {
	return PublicUser{
		UserID:   u.UserID,
		Username: u.Username,
		Email:    u.Email,
	}
}
