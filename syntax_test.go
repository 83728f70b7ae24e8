package warp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatch(t *testing.T) {
	cases := []struct {
		name, pattern, expr string
		ok                  bool
		bindings            map[string]string
	}{
		{"literal", "f[1]", "f[1]", true, nil},
		{"literal-mismatch", "f[1]", "f[2]", false, nil},
		{"blank", "f[x_]", "f[a]", true, map[string]string{"x": "a"}},
		{"blank-arity", "f[x_]", "f[a, b]", false, nil},
		{"typed", "f[x_Integer]", "f[21]", true, map[string]string{"x": "21"}},
		{"typed-mismatch", "f[x_Integer]", "f[\"x\"]", false, nil},
		{"head", "f[x_g]", "f[g[1]]", true, map[string]string{"x": "g[1]"}},
		{"head-mismatch", "f[x_g]", "f[h[1]]", false, nil},
		{"repeated", "f[x_, x_]", "f[a, a]", true, map[string]string{"x": "a"}},
		{"repeated-mismatch", "f[x_, x_]", "f[a, b]", false, nil},
		{"sequence", "f[x__]", "f[a, b]", true, map[string]string{"x": "Sequence[a, b]"}},
		{"sequence-empty", "f[x__]", "f[]", false, nil},
		{"null-sequence-empty", "f[x___]", "f[]", true, map[string]string{"x": "Sequence[]"}},
		{"sequence-shortest", "f[x__, y__]", "f[a, b, c]", true, map[string]string{"x": "Sequence[a]", "y": "Sequence[b, c]"}},
		{"sequence-typed", "f[x__Integer]", "f[1, 2, a]", false, nil},
		{"sequence-tail", "f[x___, y_]", "f[a, b, c]", true, map[string]string{"x": "Sequence[a, b]", "y": "c"}},
		{"test", "f[x_?EvenQ]", "f[2]", true, map[string]string{"x": "2"}},
		{"test-mismatch", "f[x_?EvenQ]", "f[3]", false, nil},
		{"alternatives", "f[Alternatives[1, 2]]", "f[2]", true, nil},
		{"alternatives-mismatch", "f[Alternatives[1, 2]]", "f[3]", false, nil},
		{"named-alternatives", "f[Pattern[x, Alternatives[a, b]]]", "f[b]", true, map[string]string{"x": "b"}},
		{"hold-pattern", "HoldPattern[f[x_]]", "f[1]", true, map[string]string{"x": "1"}},
		{"compound-head", "f[x_][y_]", "f[1][2]", true, map[string]string{"x": "1", "y": "2"}},
		{"nested", "f[g[x_], x_]", "f[g[1], 1]", true, map[string]string{"x": "1"}},
		{"atom", "x_Symbol", "a", true, map[string]string{"x": "a"}},
		{"atom-compound", "x_Symbol", "a[]", false, nil},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p, err := CompilePattern(MustParse(c.pattern), NewDefinitions())
			require.NoError(t, err)

			b, ok := StructuralMatcher{}.Match(p, MustParse(c.expr))
			require.Equal(t, c.ok, ok)
			if !ok {
				return
			}

			assert.Len(t, b, len(c.bindings))
			for name, expected := range c.bindings {
				v := b.Get(name)
				if assert.NotNil(t, v, name) {
					assert.Equal(t, expected, EncodeToString(v))
				}
			}
		})
	}
}

func TestCompilePatternErrors(t *testing.T) {
	cases := []struct {
		name, pattern string
		err           error
	}{
		{"unknown-test", "f[x_?NoSuchQ]", ErrUnknownGuard},
		{"pattern-arity", "f[Pattern[x]]", ErrInvalidPattern},
		{"pattern-name", "f[Pattern[1, Blank[]]]", ErrInvalidPattern},
		{"blank-head", "f[Blank[1]]", ErrInvalidPattern},
		{"sequence-head", "x__[a]", ErrInvalidPattern},
		{"sequence-alternative", "f[Alternatives[x__, y_]]", ErrInvalidPattern},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := CompilePattern(MustParse(c.pattern), NewDefinitions())
			assert.ErrorIs(t, err, c.err)

			var perr *PatternError
			assert.ErrorAs(t, err, &perr)
		})
	}
}

func TestSubstitute(t *testing.T) {
	cases := []struct{ name, pattern, expr, template, expected string }{
		{"single", "f[x_]", "f[1]", "g[x, x]", "g[1, 1]"},
		{"splice", "f[x___]", "f[1, 2]", "g[0, x, 3]", "g[0, 1, 2, 3]"},
		{"splice-empty", "f[x___]", "f[]", "g[x]", "g[]"},
		{"head", "f[h_[x_]]", "f[k[1]]", "h[x][x]", "k[1][1]"},
		{"unbound", "f[x_]", "f[1]", "g[y]", "g[y]"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p, err := CompilePattern(MustParse(c.pattern), NewDefinitions())
			require.NoError(t, err)
			b, ok := StructuralMatcher{}.Match(p, MustParse(c.expr))
			require.True(t, ok)

			assert.Equal(t, c.expected, EncodeToString(Substitute(MustParse(c.template), b)))
		})
	}
}
