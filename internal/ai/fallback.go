// Wellspring - Personal Wellness Journal and Habit Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wellspring

package ai

// Fixed lexicons for the deterministic fallback analyzer. Multi-word
// phrases are matched as a unit, and every entry counts once per
// word-bounded occurrence.
var positiveLexicon = []string{
	"happy", "glad", "joy", "joyful", "grateful", "gratitude", "thankful",
	"excited", "calm", "peaceful", "relaxed", "proud", "accomplished",
	"energized", "hopeful", "optimistic", "confident", "motivated",
	"content", "refreshed", "loved", "great", "wonderful", "amazing",
	"good day", "slept well",
}

var negativeLexicon = []string{
	"sad", "tired", "exhausted", "drained", "anxious", "anxiety",
	"stressed", "stress", "angry", "frustrated", "overwhelmed", "worried",
	"lonely", "depressed", "afraid", "scared", "hopeless", "miserable",
	"upset", "guilty", "restless", "burned out", "burnt out", "bad day",
	"can't sleep", "cant sleep",
}

// sentimentLexicon is the compiled automaton over both lexicons,
// positive entries weighted +1 and negative entries -1.
var sentimentLexicon = buildSentimentLexicon()

func buildSentimentLexicon() *wordMatcher {
	m := newWordMatcher()
	for _, word := range positiveLexicon {
		m.add(word, 1)
	}
	for _, word := range negativeLexicon {
		m.add(word, -1)
	}
	return m.build()
}

// fallbackScript is the canned response content for one polarity bucket.
type fallbackScript struct {
	summary     string
	suggestions []string
	consolation string
	motivation  string
	nugget      string
}

var fallbackScripts = map[string]fallbackScript{
	"positive": {
		summary: "Your words carry real energy today. Whatever you are doing seems to be working for you.",
		suggestions: []string{
			"Write down one thing that made today good so you can revisit it later.",
			"Use the momentum on a task you have been putting off.",
		},
		motivation: "Good days are worth noticing on purpose. You just did.",
		nugget:     "Savoring, the practice of deliberately dwelling on positive moments, has been shown to extend their mood benefits well beyond the moment itself.",
	},
	"negative": {
		summary: "Today reads heavy, and putting it into words still took effort. That effort counts.",
		suggestions: []string{
			"Pick the single smallest task on your list and let the rest wait.",
			"Step away from screens for ten minutes. A short walk or a glass of water can reset the next hour.",
		},
		consolation: "Rough days pass, even when they do not feel like it from the inside.",
		nugget:      "Naming an emotion in writing tends to lower its intensity, a process psychologists call affect labeling.",
	},
	"neutral": {
		summary: "A steady day. Recording the ordinary ones keeps the overall picture honest.",
		suggestions: []string{
			"Note one thing you want tomorrow to include.",
			"Review your open tasks and pick a single priority for the morning.",
		},
		nugget: "Journaling consistency matters more than length. A few honest sentences beat a skipped day.",
	},
}

// Fallback produces a deterministic analysis from the transcription alone.
// It scores the text against the sentiment lexicons, derives a mood from
// the balance, and answers with the script for the dominant polarity. It
// cannot fail, which is what makes it a safe floor under the upstream.
func Fallback(transcription string) Analysis {
	positives, negatives := sentimentLexicon.score(transcription)

	script := fallbackScripts[polarity(positives, negatives)]
	return Analysis{
		Summary:         script.summary,
		Suggestions:     append([]string(nil), script.suggestions...),
		MoodScore:       clampMood(moodBaseline + positives - negatives),
		Consolation:     script.consolation,
		Motivation:      script.motivation,
		KnowledgeNugget: script.nugget,
	}
}

func polarity(positives, negatives int) string {
	switch {
	case positives > negatives:
		return "positive"
	case negatives > positives:
		return "negative"
	default:
		return "neutral"
	}
}
