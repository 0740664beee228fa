// Wellspring - Personal Wellness Journal and Habit Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wellspring

package models

import (
	"time"
)

// GoalCategory classifies a goal for filtering and insight generation.
type GoalCategory string

// Goal categories.
const (
	CategoryHealth        GoalCategory = "health"
	CategoryCareer        GoalCategory = "career"
	CategoryPersonal      GoalCategory = "personal"
	CategoryFinancial     GoalCategory = "financial"
	CategoryRelationships GoalCategory = "relationships"
	CategoryLearning      GoalCategory = "learning"
	CategoryOther         GoalCategory = "other"
)

// Valid reports whether c is a known category.
func (c GoalCategory) Valid() bool {
	switch c {
	case CategoryHealth, CategoryCareer, CategoryPersonal, CategoryFinancial,
		CategoryRelationships, CategoryLearning, CategoryOther:
		return true
	}
	return false
}

// GoalStatus is the lifecycle state of a goal.
type GoalStatus string

// Goal lifecycle states. Goals are created active and transition to
// completed or abandoned.
const (
	GoalActive    GoalStatus = "active"
	GoalCompleted GoalStatus = "completed"
	GoalAbandoned GoalStatus = "abandoned"
)

// Valid reports whether s is a known status.
func (s GoalStatus) Valid() bool {
	switch s {
	case GoalActive, GoalCompleted, GoalAbandoned:
		return true
	}
	return false
}

// Milestone is one step toward a goal.
type Milestone struct {
	Title       string     `json:"title"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completedAt"`
}

// Goal represents a long-term objective with an ordered milestone list.
//
// Progress is client-authoritative: callers recompute and submit it alongside
// milestone updates (round(100 * completed / total) when milestones exist).
// The server validates the 0-100 range but does not recompute the ratio.
type Goal struct {
	ID          string       `json:"id"`
	UserID      string       `json:"userId"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Category    GoalCategory `json:"category"`
	TargetDate  *time.Time   `json:"targetDate"`
	Milestones  []Milestone  `json:"milestones"`
	Progress    int          `json:"progress"`
	Status      GoalStatus   `json:"status"`
	CompletedAt *time.Time   `json:"completedAt"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}

// GoalPatch is a partial update to a Goal. Nil fields are left untouched.
// Milestones is a pointer to a slice so an explicit empty list (clear all)
// is distinguishable from an absent field.
type GoalPatch struct {
	Title       *string       `json:"title"`
	Description *string       `json:"description"`
	Category    *GoalCategory `json:"category"`
	TargetDate  *time.Time    `json:"targetDate"`
	Milestones  *[]Milestone  `json:"milestones"`
	Progress    *int          `json:"progress"`
	Status      *GoalStatus   `json:"status"`
}

// Apply returns a copy of g with the non-nil patch fields applied.
// The milestone slice is copied, never aliased to the patch.
func (p GoalPatch) Apply(g Goal) Goal {
	if p.Title != nil {
		g.Title = *p.Title
	}
	if p.Description != nil {
		g.Description = *p.Description
	}
	if p.Category != nil {
		g.Category = *p.Category
	}
	if p.TargetDate != nil {
		target := *p.TargetDate
		g.TargetDate = &target
	}
	if p.Milestones != nil {
		ms := make([]Milestone, len(*p.Milestones))
		copy(ms, *p.Milestones)
		g.Milestones = ms
	}
	if p.Progress != nil {
		g.Progress = *p.Progress
	}
	if p.Status != nil {
		g.Status = *p.Status
	}
	return g
}
