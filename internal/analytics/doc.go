// Wellspring - Personal Wellness Journal and Habit Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wellspring

/*
Package analytics derives read-only views from a user's stored data: the
session/mood/streak stats block, the mood trend series, upcoming tasks, the
rule-based insight list, the dashboard aggregate, and the data export.

Everything here is a pure read; no method writes to the store. Synthetic
task-completion journal entries (transcription prefixed "TASK_COMPLETED:")
count toward the completed-tasks total and nothing else: they are excluded
from session counts, average mood, day streaks, trend points, and the
recent-entries list.

Insight generation is deterministic. The rules read a Snapshot assembled
from one instant's data and are evaluated in a fixed order, so identical
inputs always produce the identical insight list (at most four items).

Responses from this package are cached by the API layer (internal/cache)
and invalidated per user on mutation; the service itself is stateless.
*/
package analytics
