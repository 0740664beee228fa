// Wellspring - Personal Wellness Journal and Habit Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wellspring

/*
Package ai analyzes journal transcriptions, with a remote text-generation
upstream layered over a deterministic in-process fallback.

# Overview

The package exposes a single Client whose Analyze method always produces an
Analysis. When a chat-completions upstream is configured (AI_ENABLED plus an
API key), Analyze tries it first behind a circuit breaker and an outbound
rate limiter; on any failure it answers from the fallback instead of
returning an error. Journaling must keep working when the upstream is down,
misconfigured, or absent, so the error surface of the analyze path is
deliberately empty.

# Upstream Path

The upstream call is a chat-completions-style JSON POST. The model is asked
to reply with a single JSON object matching the Analysis shape; the reply is
stripped of markdown code fences, decoded, and normalized (mood score
clamped to [1,10], missing mood defaulting to the neutral baseline). A
sony/gobreaker circuit breaker opens after consecutive failures so a dead
upstream stops costing a timeout per journal entry, and a golang.org/x/time/rate
limiter caps outbound request volume.

# Fallback Path

The fallback scores the transcription against fixed positive and negative
word lexicons compiled into an Aho-Corasick automaton with word-boundary
filtering, derives a mood score from the balance, and answers with a short
canned script keyed by polarity. It is pure, deterministic, and cannot fail.

# Speech

Speak proxies audio from an optional text-to-speech upstream. Unlike
Analyze, it surfaces its fallback: without an upstream (or when the call
fails) the result carries Fallback=true and the client is expected to
synthesize speech locally.
*/
package ai
