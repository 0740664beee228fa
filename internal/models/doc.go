// Wellspring - Personal Wellness Journal and Habit Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wellspring

/*
Package models defines the data structures shared across the Wellspring
application: the five persisted entities (User, JournalEntry, Task, Goal,
Habit), the patch types used for partial updates, the standard API response
envelope, and the derived analytics payloads.

# Entities

Every entity is owned by exactly one user and carries an opaque string
identifier assigned by the storage layer. Cross-entity references
(Task.GoalID) are soft: no cascading deletes.

# Patches

Partial updates never mutate records in place. Each entity has a patch type
whose fields are all pointers; a nil field leaves the target untouched, and
Apply returns a new value. This keeps update semantics explicit and makes the
set of mutable fields a closed, compile-checked list.

# JSON conventions

Domain payloads use camelCase JSON tags to match the web client contract
(moodScore, hasEntry, completedTasks). The response envelope keeps its own
stable shape; see APIResponse.
*/
package models
