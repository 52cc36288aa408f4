package wordlist

import (
	_ "embed"
	"fmt"
	"strings"
)

//go:embed data/nouns.txt
var defaultNouns string

//go:embed data/adjectives.txt
var defaultAdjectives string

// Seeds holds the read-only candidate lists the generator samples from.
type Seeds struct {
	Nouns      []string
	Adjectives []string
}

// DefaultSeeds returns the seed lists bundled with the binary.
func DefaultSeeds() (Seeds, error) {
	nouns, err := ReadWords(strings.NewReader(defaultNouns))
	if err != nil {
		return Seeds{}, fmt.Errorf("failed to parse bundled nouns: %w", err)
	}
	adjectives, err := ReadWords(strings.NewReader(defaultAdjectives))
	if err != nil {
		return Seeds{}, fmt.Errorf("failed to parse bundled adjectives: %w", err)
	}
	return Seeds{Nouns: nouns, Adjectives: adjectives}, nil
}

// LoadSeeds reads seed lists from disk. An empty path keeps the bundled list.
func LoadSeeds(nounsPath, adjectivesPath string) (Seeds, error) {
	seeds, err := DefaultSeeds()
	if err != nil {
		return Seeds{}, err
	}
	if nounsPath != "" {
		seeds.Nouns, err = LoadWords(nounsPath)
		if err != nil {
			return Seeds{}, fmt.Errorf("failed to load nouns from %s: %w", nounsPath, err)
		}
	}
	if adjectivesPath != "" {
		seeds.Adjectives, err = LoadWords(adjectivesPath)
		if err != nil {
			return Seeds{}, fmt.Errorf("failed to load adjectives from %s: %w", adjectivesPath, err)
		}
	}
	return seeds, nil
}
