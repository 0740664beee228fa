// Wellspring - Personal Wellness Journal and Habit Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wellspring

package ai

import "testing"

func TestMatcherScore(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		wantPos int
		wantNeg int
	}{
		{
			name:    "single positive word",
			text:    "I felt happy this morning",
			wantPos: 1,
			wantNeg: 0,
		},
		{
			name:    "single negative word",
			text:    "work left me exhausted",
			wantPos: 0,
			wantNeg: 1,
		},
		{
			name:    "mixed sentiment",
			text:    "happy about the launch but tired from the push",
			wantPos: 1,
			wantNeg: 1,
		},
		{
			name:    "case insensitive",
			text:    "HAPPY! Really HAPPY.",
			wantPos: 2,
			wantNeg: 0,
		},
		{
			name:    "repeated occurrences each count",
			text:    "sad, sad, and sad again",
			wantPos: 0,
			wantNeg: 3,
		},
		{
			name:    "multi-word phrase",
			text:    "completely burned out after the release",
			wantPos: 0,
			wantNeg: 1,
		},
		{
			name:    "embedded word does not count",
			text:    "the crusade continued all week",
			wantPos: 0,
			wantNeg: 0,
		},
		{
			name:    "suffix glued to word does not count",
			text:    "a wave of sadness",
			wantPos: 0,
			wantNeg: 0,
		},
		{
			name:    "longer pattern wins over its prefix",
			text:    "today I felt stressed",
			wantPos: 0,
			wantNeg: 1,
		},
		{
			name:    "punctuation counts as boundary",
			text:    "anxious, stressed.",
			wantPos: 0,
			wantNeg: 2,
		},
		{
			name:    "apostrophe phrase",
			text:    "I can't sleep anymore",
			wantPos: 0,
			wantNeg: 1,
		},
		{
			name:    "empty text",
			text:    "",
			wantPos: 0,
			wantNeg: 0,
		},
		{
			name:    "no lexicon words",
			text:    "went to the store and bought bread",
			wantPos: 0,
			wantNeg: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotPos, gotNeg := sentimentLexicon.score(tt.text)
			if gotPos != tt.wantPos || gotNeg != tt.wantNeg {
				t.Errorf("score(%q) = (%d, %d), want (%d, %d)",
					tt.text, gotPos, gotNeg, tt.wantPos, tt.wantNeg)
			}
		})
	}
}

func TestMatcherIgnoresEmptyPatterns(t *testing.T) {
	m := newWordMatcher()
	m.add("", 1)
	m.add("   ", 1)
	m.add("fine", 1)
	m.build()

	pos, neg := m.score("fine, just fine")
	if pos != 2 || neg != 0 {
		t.Errorf("score = (%d, %d), want (2, 0)", pos, neg)
	}
}

func TestMatcherOverlappingPatterns(t *testing.T) {
	// "low" ends inside "slow down" territory: overlapping patterns must
	// each be found when bounded, and only then.
	m := newWordMatcher()
	m.add("low", -1)
	m.add("slow", -1)
	m.build()

	pos, neg := m.score("a slow low week")
	if pos != 0 || neg != 2 {
		t.Errorf("score = (%d, %d), want (0, 2)", pos, neg)
	}
}

func TestWordBounded(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		start int
		end   int
		want  bool
	}{
		{name: "whole string", text: "sad", start: 0, end: 3, want: true},
		{name: "leading letter", text: "asad", start: 1, end: 4, want: false},
		{name: "trailing letter", text: "sadx", start: 0, end: 3, want: false},
		{name: "digit boundary", text: "sad1", start: 0, end: 3, want: false},
		{name: "space boundaries", text: " sad ", start: 1, end: 4, want: true},
		{name: "punctuation boundaries", text: "(sad)", start: 1, end: 4, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := wordBounded(tt.text, tt.start, tt.end); got != tt.want {
				t.Errorf("wordBounded(%q, %d, %d) = %v, want %v",
					tt.text, tt.start, tt.end, got, tt.want)
			}
		})
	}
}
