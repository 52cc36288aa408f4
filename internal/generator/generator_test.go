package generator

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/haiku/internal/model"
)

type lookupResult struct {
	word model.Word
	err  error
}

// scriptedLexicon answers noun lookups in order, ignoring the sampled text.
type scriptedLexicon struct {
	nouns          []lookupResult
	adjectives     map[string][]model.Word
	adjectiveErr   error
	nounCalls      int
	adjectiveCalls int
}

func (s *scriptedLexicon) LookupNoun(_ context.Context, _ string) (model.Word, error) {
	if s.nounCalls >= len(s.nouns) {
		return model.Word{}, errors.New("script exhausted")
	}
	r := s.nouns[s.nounCalls]
	s.nounCalls++
	return r.word, r.err
}

func (s *scriptedLexicon) RelatedAdjectives(_ context.Context, noun model.Word) ([]model.Word, error) {
	s.adjectiveCalls++
	if s.adjectiveErr != nil {
		return nil, s.adjectiveErr
	}
	return s.adjectives[noun.Text], nil
}

func noun(text string, syllables int) model.Word {
	return model.Word{Text: text, PartOfSpeech: model.Noun, Syllables: syllables}
}

func adj(text string, syllables int) model.Word {
	return model.Word{Text: text, PartOfSpeech: model.Adjective, Syllables: syllables}
}

func newTestGenerator(t *testing.T, lex Lexicon, opts ...Option) *Generator {
	t.Helper()
	opts = append([]Option{WithSeed(1)}, opts...)
	g, err := New(lex, []string{"river", "moon", "frog"}, opts...)
	require.NoError(t, err)
	return g
}

func TestLineMistyOldRiver(t *testing.T) {
	lex := &scriptedLexicon{
		nouns: []lookupResult{{word: noun("river", 2)}},
		adjectives: map[string][]model.Word{
			"river": {adj("misty", 2), adj("old", 1), adj("golden", 2)},
		},
	}
	g := newTestGenerator(t, lex)

	line, err := g.Line(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, "misty old river", line.String())
	assert.Equal(t, 5, line.Syllables())
}

func TestLineNounFillsBudget(t *testing.T) {
	lex := &scriptedLexicon{nouns: []lookupResult{{word: noun("butterfly", 3)}}}
	g := newTestGenerator(t, lex)

	line, err := g.Line(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, "butterfly", line.String())
	assert.Zero(t, lex.adjectiveCalls)
}

func TestLineResamplesOversizedNoun(t *testing.T) {
	lex := &scriptedLexicon{
		nouns: []lookupResult{
			{word: noun("caterpillar", 4)},
			{word: noun("hippopotamus", 5)},
			{word: noun("moon", 1)},
		},
		adjectives: map[string][]model.Word{"moon": {adj("pale", 1), adj("silver", 2)}},
	}
	g := newTestGenerator(t, lex)

	line, err := g.Line(context.Background(), 4)
	require.NoError(t, err)
	assert.Equal(t, 3, lex.nounCalls)
	assert.Equal(t, "pale silver moon", line.String())
}

func TestLineResamplesOnNoMatch(t *testing.T) {
	lex := &scriptedLexicon{
		nouns: []lookupResult{
			{err: model.ErrNoMatch},
			{err: model.ErrNoMatch},
			{word: noun("frog", 1)},
		},
		adjectives: map[string][]model.Word{"frog": {adj("old", 1)}},
	}
	g := newTestGenerator(t, lex)

	line, err := g.Line(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, "old frog", line.String())
	assert.Equal(t, 3, lex.nounCalls)
}

func TestNounFatalErrorNotRetried(t *testing.T) {
	lex := &scriptedLexicon{
		nouns: []lookupResult{
			{err: model.ErrUnexpectedStatus},
			{word: noun("frog", 1)},
		},
	}
	g := newTestGenerator(t, lex)

	_, err := g.Noun(context.Background(), 5)
	require.ErrorIs(t, err, model.ErrUnexpectedStatus)
	assert.Equal(t, 1, lex.nounCalls)
}

func TestLineAdjectiveFailureIsFatal(t *testing.T) {
	lex := &scriptedLexicon{
		nouns: []lookupResult{
			{word: noun("river", 2)},
			{word: noun("moon", 1)},
		},
		adjectiveErr: model.ErrNoResults,
	}
	g := newTestGenerator(t, lex)

	_, err := g.Line(context.Background(), 5)
	require.ErrorIs(t, err, model.ErrNoResults)
	assert.Equal(t, 1, lex.nounCalls)
	assert.Equal(t, 1, lex.adjectiveCalls)
}

func TestNounAttemptsExhausted(t *testing.T) {
	lex := &scriptedLexicon{
		nouns: []lookupResult{
			{err: model.ErrNoMatch},
			{word: noun("caterpillar", 4)},
			{word: noun("moon", 1)},
		},
	}
	g := newTestGenerator(t, lex, WithMaxAttempts(2))

	_, err := g.Noun(context.Background(), 3)
	require.ErrorIs(t, err, model.ErrAttemptsExhausted)
	assert.Equal(t, 2, lex.nounCalls)
}

func TestNounStopsOnCancelledContext(t *testing.T) {
	lex := &scriptedLexicon{nouns: []lookupResult{{word: noun("moon", 1)}}}
	g := newTestGenerator(t, lex)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := g.Noun(ctx, 5)
	require.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, lex.nounCalls)
}

func TestHaikuTargets(t *testing.T) {
	lex := &scriptedLexicon{
		nouns: []lookupResult{
			{word: noun("river", 2)},
			{word: noun("mountain", 2)},
			{word: noun("moon", 1)},
		},
		adjectives: map[string][]model.Word{
			"river":    {adj("misty", 2), adj("old", 1)},
			"mountain": {adj("distant", 2), adj("ancient", 2), adj("cold", 1)},
			"moon":     {adj("autumn", 2), adj("pale", 1), adj("bright", 1)},
		},
	}
	g := newTestGenerator(t, lex)

	haiku, err := g.Haiku(context.Background())
	require.NoError(t, err)
	require.Len(t, haiku.Lines, 3)

	targets := []int{5, 7, 5}
	for i, line := range haiku.Lines {
		assert.Equal(t, targets[i], line.Target)
		assert.LessOrEqual(t, line.Syllables(), line.Target)
		last := line.Words[len(line.Words)-1]
		assert.Equal(t, model.Noun, last.PartOfSpeech, "noun must end the line")
		for _, w := range line.Words[:len(line.Words)-1] {
			assert.Equal(t, model.Adjective, w.PartOfSpeech)
		}
	}

	text := haiku.String()
	assert.Equal(t, 2, strings.Count(text, "\n"))
	assert.Equal(t, "misty old river\ndistant ancient cold mountain\nautumn pale bright moon", text)
}

func TestPackFirstFitInOrder(t *testing.T) {
	tests := []struct {
		name       string
		budget     int
		candidates []model.Word
		want       []string
	}{
		{
			name:       "stops at zero",
			budget:     3,
			candidates: []model.Word{adj("misty", 2), adj("old", 1), adj("golden", 2)},
			want:       []string{"misty", "old"},
		},
		{
			name:       "skips oversized without revisiting",
			budget:     3,
			candidates: []model.Word{adj("solitary", 4), adj("red", 1), adj("ancient", 2), adj("cold", 1)},
			want:       []string{"red", "ancient"},
		},
		{
			name:       "underfills rather than optimizing",
			budget:     4,
			candidates: []model.Word{adj("ancient", 2), adj("beautiful", 3), adj("red", 1)},
			want:       []string{"ancient", "red"},
		},
		{
			name:       "nothing fits",
			budget:     1,
			candidates: []model.Word{adj("misty", 2), adj("golden", 2)},
			want:       []string{},
		},
		{
			name:       "zero budget",
			budget:     0,
			candidates: []model.Word{adj("old", 1)},
			want:       []string{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Pack(tt.budget, tt.candidates)
			texts := make([]string, 0, len(got))
			total := 0
			for _, w := range got {
				texts = append(texts, w.Text)
				total += w.Syllables
			}
			assert.Equal(t, tt.want, texts)
			assert.LessOrEqual(t, total, tt.budget)

			again := Pack(tt.budget, tt.candidates)
			assert.Equal(t, got, again)
		})
	}
}

func TestNewValidates(t *testing.T) {
	_, err := New(nil, []string{"river"})
	require.Error(t, err)

	_, err = New(&scriptedLexicon{}, nil)
	require.Error(t, err)

	_, err = New(&scriptedLexicon{}, []string{"river"}, WithMaxAttempts(-1))
	require.Error(t, err)
}
