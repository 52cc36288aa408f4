// Package generator builds haiku lines from a lexical service.
package generator

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/verte-zerg/haiku/internal/model"
)

// Syllable targets for the three lines.
var haikuTargets = [...]int{5, 7, 5}

// Lexicon is the subset of the lexical service the generator needs.
type Lexicon interface {
	// LookupNoun returns the noun spelled exactly as text, or model.ErrNoMatch.
	LookupNoun(ctx context.Context, text string) (model.Word, error)
	// RelatedAdjectives returns adjectives for noun, most relevant first.
	RelatedAdjectives(ctx context.Context, noun model.Word) ([]model.Word, error)
}

// Generator produces haiku from seed nouns.
type Generator struct {
	lexicon     Lexicon
	nouns       []string
	rnd         *rand.Rand
	maxAttempts int
	log         *zap.Logger
}

// Option customizes a Generator.
type Option func(*Generator)

// WithSeed makes noun sampling reproducible.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.rnd = rand.New(rand.NewSource(seed))
	}
}

// WithMaxAttempts caps noun draws per line. Zero leaves it unbounded.
func WithMaxAttempts(n int) Option {
	return func(g *Generator) {
		g.maxAttempts = n
	}
}

// WithLogger attaches a logger.
func WithLogger(logger *zap.Logger) Option {
	return func(g *Generator) {
		g.log = logger
	}
}

// New returns a Generator seeded with the current time.
func New(lexicon Lexicon, nouns []string, opts ...Option) (*Generator, error) {
	if lexicon == nil {
		return nil, fmt.Errorf("lexicon is required")
	}
	if len(nouns) == 0 {
		return nil, fmt.Errorf("noun list is empty")
	}
	g := &Generator{
		lexicon: lexicon,
		nouns:   nouns,
		rnd:     rand.New(rand.NewSource(time.Now().UnixNano())),
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.maxAttempts < 0 {
		return nil, fmt.Errorf("max attempts must be >= 0")
	}
	g.log = g.log.With(zap.String("component", "generator"))
	return g, nil
}

// Haiku builds three independent lines with targets 5, 7 and 5.
func (g *Generator) Haiku(ctx context.Context) (model.Haiku, error) {
	log := g.log.With(zap.String("haiku_id", uuid.NewString()))
	haiku := model.Haiku{Lines: make([]model.Line, 0, len(haikuTargets))}
	for _, target := range haikuTargets {
		line, err := g.line(ctx, log, target)
		if err != nil {
			return model.Haiku{}, err
		}
		haiku.Lines = append(haiku.Lines, line)
	}
	log.Debug("haiku ready")
	return haiku, nil
}

// Line builds a single line of at most target syllables.
func (g *Generator) Line(ctx context.Context, target int) (model.Line, error) {
	return g.line(ctx, g.log, target)
}

func (g *Generator) line(ctx context.Context, log *zap.Logger, target int) (model.Line, error) {
	if target <= 0 {
		return model.Line{}, fmt.Errorf("syllable target must be > 0, got %d", target)
	}
	noun, err := g.noun(ctx, log, target)
	if err != nil {
		return model.Line{}, err
	}

	line := model.Line{Target: target}
	budget := target - noun.Syllables
	if budget > 0 {
		candidates, err := g.lexicon.RelatedAdjectives(ctx, noun)
		if err != nil {
			return model.Line{}, fmt.Errorf("failed to fetch adjectives for %q: %w", noun.Text, err)
		}
		line.Words = Pack(budget, candidates)
	}
	line.Words = append(line.Words, noun)

	log.Debug("line built",
		zap.Int("target", target),
		zap.Int("syllables", line.Syllables()),
		zap.String("line", line.String()),
	)
	return line, nil
}

// Noun draws random seed nouns until one exists as a noun and fits ceiling.
// Service failures other than a spelling mismatch end the search immediately.
func (g *Generator) Noun(ctx context.Context, ceiling int) (model.Word, error) {
	return g.noun(ctx, g.log, ceiling)
}

func (g *Generator) noun(ctx context.Context, log *zap.Logger, ceiling int) (model.Word, error) {
	for attempt := 1; g.maxAttempts == 0 || attempt <= g.maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return model.Word{}, err
		}
		text := g.nouns[g.rnd.Intn(len(g.nouns))]
		word, err := g.lexicon.LookupNoun(ctx, text)
		if errors.Is(err, model.ErrNoMatch) {
			log.Debug("noun rejected", zap.String("noun", text), zap.String("reason", "no exact match"))
			continue
		}
		if err != nil {
			return model.Word{}, fmt.Errorf("failed to look up noun %q: %w", text, err)
		}
		if word.Syllables > ceiling {
			log.Debug("noun rejected",
				zap.String("noun", text),
				zap.Int("syllables", word.Syllables),
				zap.Int("ceiling", ceiling),
			)
			continue
		}
		return word, nil
	}
	return model.Word{}, fmt.Errorf("no noun within %d syllables after %d attempts: %w", ceiling, g.maxAttempts, model.ErrAttemptsExhausted)
}

// Pack accepts candidates in order while they fit the remaining budget and
// stops once it reaches zero. Candidates that do not fit are skipped for good.
func Pack(budget int, candidates []model.Word) []model.Word {
	var accepted []model.Word
	for _, c := range candidates {
		if budget == 0 {
			break
		}
		if c.Syllables > budget {
			continue
		}
		accepted = append(accepted, c)
		budget -= c.Syllables
	}
	return accepted
}
