// Wellspring - Personal Wellness Journal and Habit Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wellspring

// Package auth provides first-party authentication: bcrypt password
// hashing, stateless HS256 bearer tokens, and the identity service
// (register, login, current user).
//
// Tokens carry only the user ID in the subject claim plus the registered
// time claims. There is no server-side session state and no revocation;
// a token is valid until it expires (default 7 days).
//
// Login failures are deliberately indistinguishable: unknown email and
// wrong password both return ErrInvalidCredentials, and the unknown-email
// path still burns one bcrypt comparison so response timing does not
// reveal whether an account exists.
package auth
