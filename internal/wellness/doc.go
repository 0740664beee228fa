// Wellspring - Personal Wellness Journal and Habit Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wellspring

/*
Package wellness implements the domain operations over journal entries,
tasks, goals, and habits.

Every operation is context-aware and scoped to a single user; the storage
layer guarantees that a user can never read or mutate another user's
documents. The service owns the rules that sit above plain CRUD:

  - Completing a task (the false-to-true transition, and only that
    transition) stamps the completion time and writes one synthetic
    journal entry so the analytics layer can count it.
  - Completing a habit is limited to once per UTC calendar day and
    recomputes the streak by walking completion dates backward.
  - Goal progress is client-authoritative but clamped to 0-100, and
    reaching the completed status stamps the completion time.
  - Journal entries recorded here are genuine entries; the synthetic
    task-completion records are produced only by the task flow.

Input field validation (required fields, enum membership) happens at the
API boundary; the service still guards the invariants that would corrupt
stored data if violated.
*/
package wellness
