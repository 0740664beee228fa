// Wellspring - Personal Wellness Journal and Habit Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wellspring

package ai

import (
	"strings"
	"unicode/utf8"
)

// wordMatcher is a compact Aho-Corasick automaton over a fixed set of
// lowercase patterns, each carrying a sentiment weight. All patterns in a
// transcription are found in a single left-to-right pass regardless of how
// many the lexicons hold.
//
// The automaton is built once during package init and never mutated again,
// so searches need no locking.
type wordMatcher struct {
	root     *matchNode
	patterns []lexiconPattern
}

type lexiconPattern struct {
	text   string
	weight int
}

// matchNode is a single trie node. The failure link points at the node
// representing the longest proper suffix of this node's path that is also
// a prefix of some pattern; output holds the indexes of every pattern that
// ends here, including those inherited along the failure chain.
type matchNode struct {
	children map[rune]*matchNode
	failure  *matchNode
	output   []int
}

func newMatchNode() *matchNode {
	return &matchNode{children: make(map[rune]*matchNode)}
}

func newWordMatcher() *wordMatcher {
	return &wordMatcher{root: newMatchNode()}
}

func (m *wordMatcher) add(text string, weight int) {
	text = strings.ToLower(strings.TrimSpace(text))
	if text == "" {
		return
	}
	m.patterns = append(m.patterns, lexiconPattern{text: text, weight: weight})
}

// build constructs the trie and wires failure links breadth-first. Call
// once, after every pattern has been added.
func (m *wordMatcher) build() *wordMatcher {
	for i, p := range m.patterns {
		m.insert(p.text, i)
	}
	m.linkFailures()
	return m
}

func (m *wordMatcher) insert(text string, index int) {
	node := m.root
	for _, ch := range text {
		next, ok := node.children[ch]
		if !ok {
			next = newMatchNode()
			node.children[ch] = next
		}
		node = next
	}
	node.output = append(node.output, index)
}

func (m *wordMatcher) linkFailures() {
	queue := make([]*matchNode, 0, len(m.root.children))
	for _, child := range m.root.children {
		child.failure = m.root
		queue = append(queue, child)
	}

	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]

		for ch, child := range node.children {
			queue = append(queue, child)

			// Follow failure links to find the longest proper suffix
			fail := node.failure
			for fail != nil && fail.children[ch] == nil {
				fail = fail.failure
			}

			if fail == nil {
				child.failure = m.root
			} else {
				child.failure = fail.children[ch]
				// Merge output from the failure link
				child.output = append(child.output, child.failure.output...)
			}
		}
	}
}

// score sums the weights of word-bounded pattern occurrences in text and
// returns the positive and negative totals separately. The automaton finds
// candidate spans; spans glued to adjacent letters or digits are discarded,
// so "sad" inside "crusade" does not count.
func (m *wordMatcher) score(text string) (positives, negatives int) {
	lower := strings.ToLower(text)
	node := m.root

	for i, ch := range lower {
		for node != m.root && node.children[ch] == nil {
			node = node.failure
		}
		if next, ok := node.children[ch]; ok {
			node = next
		}
		if len(node.output) == 0 {
			continue
		}

		end := i + utf8.RuneLen(ch)
		for _, idx := range node.output {
			p := m.patterns[idx]
			start := end - len(p.text)
			if !wordBounded(lower, start, end) {
				continue
			}
			if p.weight > 0 {
				positives += p.weight
			} else {
				negatives -= p.weight
			}
		}
	}
	return positives, negatives
}

// wordBounded reports whether the span [start, end) sits on word
// boundaries within text.
func wordBounded(text string, start, end int) bool {
	if start > 0 && isWordByte(text[start-1]) {
		return false
	}
	if end < len(text) && isWordByte(text[end]) {
		return false
	}
	return true
}

// isWordByte treats ASCII letters and digits as word characters. The
// lexicons are plain ASCII, so byte-level boundary checks suffice.
func isWordByte(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}
