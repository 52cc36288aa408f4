package datamuse

import (
	"slices"

	"github.com/verte-zerg/haiku/internal/model"
)

// apiWord is a single entry of the /words response.
type apiWord struct {
	Word         string   `json:"word"`
	NumSyllables int      `json:"numSyllables"`
	Tags         []string `json:"tags"`
}

func (w apiWord) hasTag(tag string) bool {
	return slices.Contains(w.Tags, tag)
}

func (w apiWord) toWord() model.Word {
	return model.Word{
		Text:         w.Word,
		PartOfSpeech: model.PartOfSpeechFromTags(w.Tags),
		Syllables:    w.NumSyllables,
	}
}

// filterTagged keeps entries carrying tag anywhere in their tag list, preserving order.
func filterTagged(entries []apiWord, tag string) []model.Word {
	words := make([]model.Word, 0, len(entries))
	for _, e := range entries {
		if !e.hasTag(tag) {
			continue
		}
		words = append(words, e.toWord())
	}
	return words
}
