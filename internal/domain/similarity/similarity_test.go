package similarity_test

import (
	"testing"

	"github.com/javeriapervaiz-debug/BrandAudit-sub002/internal/domain/similarity"
	"github.com/stretchr/testify/assert"
)

func TestScore_Identical(t *testing.T) {
	for _, s := range []string{"a", "GitHub", "acme corp", "ünïcode"} {
		assert.Equal(t, 1.0, similarity.Score(s, s), s)
	}
}

func TestScore_CaseInsensitive(t *testing.T) {
	assert.Equal(t, 1.0, similarity.Score("GitHub", "github"))
}

func TestScore_Substring(t *testing.T) {
	assert.Equal(t, 0.8, similarity.Score("git", "github"))
	assert.Equal(t, 0.8, similarity.Score("GitHub Inc", "hub"))
}

func TestScore_Empty(t *testing.T) {
	assert.Equal(t, 0.0, similarity.Score("", "anything"))
	assert.Equal(t, 0.0, similarity.Score("anything", ""))
	assert.Equal(t, 0.0, similarity.Score("", ""))
}

func TestScore_EditDistance(t *testing.T) {
	// kitten -> sitting is 3 edits over 7 runes
	assert.InDelta(t, 4.0/7.0, similarity.Score("kitten", "sitting"), 1e-9)
	assert.Equal(t, 0.0, similarity.Score("abc", "xyz"))
}

func TestScore_Symmetric(t *testing.T) {
	pairs := [][2]string{{"kitten", "sitting"}, {"stripe", "strype"}, {"acme", "apex"}}
	for _, p := range pairs {
		assert.Equal(t, similarity.Score(p[0], p[1]), similarity.Score(p[1], p[0]), "%v", p)
	}
}

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"kitten", "sitting", 3},
		{"flaw", "lawn", 2},
		{"café", "cafe", 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, similarity.Levenshtein(tt.a, tt.b), "%q -> %q", tt.a, tt.b)
	}
}
