package scorer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/teatak/wordseg/lexicon"
)

func TestSequence(t *testing.T) {
	lex := lexicon.Build([]string{"this", "is", "insane"}, "this is a test", "this is")

	tests := []struct {
		name   string
		tokens []string
		want   float64
	}{
		{"empty", nil, 0},
		// 1000/3 + 3*10 known + this(2)+is(2)
		{"all known", []string{"this", "is", "insane"}, 1000.0/3 + 30 + 4},
		// 1000/2 - 10 single + 0 known
		{"unknown", []string{"x", "yz"}, 500 - 10},
		// "a" is known from training: 1000 - 10 + 10 + 1
		{"single known", []string{"a"}, 1000 - 10 + 10 + 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Sequence(tt.tokens, lex), 1e-9)
		})
	}
}

func TestSequence_PrefersFewerLongerTokens(t *testing.T) {
	lex := lexicon.Build([]string{"in", "sane", "insane"})
	assert.Greater(t, Sequence([]string{"insane"}, lex), Sequence([]string{"in", "sane"}, lex))
}

func TestContextual(t *testing.T) {
	lex := lexicon.Build(nil, "hello world", "hello world", "hello there")

	tests := []struct {
		name      string
		candidate string
		prev      string
		hasPrev   bool
		useBigram bool
		want      float64
	}{
		{"no context", "world", "", false, true, 2 + 100},
		{"bigram", "world", "hello", true, true, 2 + 100 + 20},
		{"bigram disabled", "world", "hello", true, false, 2 + 100},
		{"unseen pair", "there", "world", true, true, 1 + 100},
		{"unknown single", "x", "hello", true, true, -50},
		{"unknown multi", "xy", "", false, true, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Contextual(tt.candidate, tt.prev, tt.hasPrev, lex, tt.useBigram)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}
