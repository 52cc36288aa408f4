// Package model defines shared data structures.
package model

import (
	"strings"
	"time"
)

// PartOfSpeech classifies a word returned by the lexical service.
type PartOfSpeech int

const (
	Unknown PartOfSpeech = iota
	Noun
	Adjective
)

func (p PartOfSpeech) String() string {
	switch p {
	case Noun:
		return "noun"
	case Adjective:
		return "adjective"
	default:
		return "unknown"
	}
}

// PartOfSpeechFromTags derives the classification from the first tag only.
func PartOfSpeechFromTags(tags []string) PartOfSpeech {
	if len(tags) == 0 {
		return Unknown
	}
	switch tags[0] {
	case "n":
		return Noun
	case "adj":
		return Adjective
	default:
		return Unknown
	}
}

// Word is a single lexical result with its syllable count.
type Word struct {
	Text         string
	PartOfSpeech PartOfSpeech
	Syllables    int
}

// Line is one haiku line: zero or more adjectives followed by a noun.
type Line struct {
	Target int
	Words  []Word
}

// Syllables returns the total syllable count of the line.
func (l Line) Syllables() int {
	total := 0
	for _, w := range l.Words {
		total += w.Syllables
	}
	return total
}

func (l Line) String() string {
	parts := make([]string, 0, len(l.Words))
	for _, w := range l.Words {
		parts = append(parts, w.Text)
	}
	return strings.Join(parts, " ")
}

// Haiku holds the three generated lines.
type Haiku struct {
	Lines []Line
}

func (h Haiku) String() string {
	lines := make([]string, 0, len(h.Lines))
	for _, l := range h.Lines {
		lines = append(lines, l.String())
	}
	return strings.Join(lines, "\n")
}

// Config defines generation and lookup settings.
type Config struct {
	NounsPath      string
	AdjectivesPath string
	Endpoint       string
	Timeout        time.Duration
	// MaxAttempts caps noun resampling per line. Zero means unbounded.
	MaxAttempts int
	Seed        int64
	Count       int
	Verbose     bool
	Style       bool
}
