// Wellspring - Personal Wellness Journal and Habit Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wellspring

package models

import (
	"time"
)

// User represents a registered account.
//
// Email is stored lowercased and is unique case-insensitively. PasswordHash
// carries the bcrypt hash of the user's password and is excluded from JSON
// serialization so it can never leak through an API response; the storage
// layer persists it through its own record type at the persistence boundary.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// UserPatch is a partial update to a User. Nil fields are left untouched.
// Email is deliberately not patchable; it is the account's stable identity.
type UserPatch struct {
	Name         *string
	PasswordHash *string
}

// Apply returns a copy of u with the non-nil patch fields applied.
func (p UserPatch) Apply(u User) User {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.PasswordHash != nil {
		u.PasswordHash = *p.PasswordHash
	}
	return u
}
