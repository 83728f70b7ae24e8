package warp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		name, sym, pattern string
		pos                Position
	}{
		{"own", "Foo", "Foo", OwnValue},
		{"down", "Foo", "Foo[x_]", DownValue},
		{"down-held", "Foo", "HoldPattern[Foo[x_]]", DownValue},
		{"sub", "Foo", "Foo[x_][y_]", SubValue},
		{"sub-nested", "Foo", "Foo[1][2][3]", SubValue},
		{"up", "Foo", "Set[Foo, x_]", UpValue},
		{"up-head", "Foo", "g[Foo[x_], y_]", UpValue},
		{"up-named", "Foo", "g[Pattern[x, Foo]]", UpValue},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			pos, err := Classify(Intern(c.sym), MustParse(c.pattern))
			require.NoError(t, err)
			assert.Equal(t, c.pos, pos)
		})
	}

	for _, p := range []string{"Bar[x_]", "Bar", "g[h[Foo]]", "1"} {
		t.Run("reject-"+p, func(t *testing.T) {
			_, err := Classify(Intern("Foo"), MustParse(p))
			assert.ErrorIs(t, err, ErrInvalidPattern)
		})
	}
}

func TestRegister(t *testing.T) {
	defs := NewDefinitions()
	foo := Intern("Foo")

	r1, err := defs.RegisterString(foo, "Foo[x_]", value(NewInt(1)))
	require.NoError(t, err)
	r2, err := defs.RegisterString(foo, "Foo[x_]", value(NewInt(2)))
	require.NoError(t, err)
	_, err = defs.RegisterString(foo, "Set[Foo, x_]", value(NewInt(3)))
	require.NoError(t, err)

	rules := defs.Rules(foo, DownValue)
	require.Len(t, rules, 2)
	assert.Same(t, r1, rules[0])
	assert.Same(t, r2, rules[1])
	assert.Len(t, defs.Rules(foo, UpValue), 1)
	assert.Empty(t, defs.Rules(foo, OwnValue))

	// Snapshots do not alias the store.
	rules[0] = nil
	assert.Same(t, r1, defs.Rules(foo, DownValue)[0])

	_, err = defs.RegisterString(foo, "Foo[x_?NoSuchQ]", value(NewInt(4)))
	assert.ErrorIs(t, err, ErrUnknownGuard)
	_, err = defs.RegisterString(foo, "Bar[x_]", value(NewInt(5)))
	assert.ErrorIs(t, err, ErrInvalidPattern)
	_, err = defs.RegisterString(foo, "Foo[x_", value(NewInt(6)))
	assert.True(t, IsIncomplete(err))
	assert.Len(t, defs.Rules(foo, DownValue), 2)
}

func TestRegisterGuard(t *testing.T) {
	defs := NewDefinitions()
	small := Intern("SmallQ")
	defs.RegisterGuard(small, func(e Expr) bool {
		n, ok := e.(Integer)
		return ok && n.Sign() >= 0 && n.i.IsInt64() && n.i.Int64() < 10
	})
	register(t, defs, "Foo", "Foo[x_?SmallQ]", value(String("small")))

	s := NewSession(defs)
	testEval(t, s, "Foo[3]", `"small"`)
	testEval(t, s, "Foo[30]", "Foo[30]")
}

func TestDefineReplaces(t *testing.T) {
	defs := NewDefinitions()
	foo := Intern("Foo")

	define := func(pattern string, v int64) {
		r, err := defs.NewRule(foo, MustParse(pattern), value(NewInt(v)))
		require.NoError(t, err)
		require.NoError(t, defs.Define(r))
	}
	define("Foo[x_]", 1)
	define("Foo[1]", 2)
	define("Foo[x_]", 3)

	rules := defs.Rules(foo, DownValue)
	require.Len(t, rules, 2)
	assert.Equal(t, "Foo[Pattern[x, Blank[]]]", rules[0].Pattern.String())
	testEval(t, NewSession(defs), "Foo[1]", "3")

	assert.True(t, defs.RemoveRule(foo, DownValue, MustParse("Foo[x_]")))
	assert.False(t, defs.RemoveRule(foo, DownValue, MustParse("Foo[x_]")))
	testEval(t, NewSession(defs), "Foo[1]", "2")
}

func TestAttributes(t *testing.T) {
	defs := NewDefinitions()
	foo := Intern("Foo")

	assert.Equal(t, NoAttributes, defs.Attributes(foo))
	assert.False(t, defs.Defined(foo))

	require.NoError(t, defs.SetAttributes(foo, HoldAll|Orderless))
	require.NoError(t, defs.SetAttributes(foo, Flat))
	assert.Equal(t, Flat|HoldAll|Orderless, defs.Attributes(foo))
	assert.Equal(t, "List[Flat, HoldAll, Orderless]", defs.Attributes(foo).String())

	require.NoError(t, defs.ClearAttributes(foo, HoldAll))
	assert.Equal(t, Flat|Orderless, defs.Attributes(foo))

	require.NoError(t, defs.SetAttributes(foo, Locked))
	assert.ErrorIs(t, defs.SetAttributes(foo, HoldAll), ErrLocked)
	assert.ErrorIs(t, defs.ClearAttributes(foo, Locked), ErrLocked)
	assert.Equal(t, Flat|Locked|Orderless, defs.Attributes(foo))
}

func TestClear(t *testing.T) {
	defs := NewDefinitions()
	foo := Intern("Foo")
	register(t, defs, "Foo", "Foo[x_Integer]", doubles)
	register(t, defs, "Foo", "Foo", value(NewInt(1)))
	require.NoError(t, defs.SetAttributes(foo, HoldAll|Protected))
	require.NoError(t, defs.SetMessage(foo, "tag", "text"))

	defs.Clear(foo)
	assert.Equal(t, NoAttributes, defs.Attributes(foo))
	for pos := OwnValue; pos < positionCount; pos++ {
		assert.Empty(t, defs.Rules(foo, pos), pos.String())
	}

	result := testEval(t, NewSession(defs), "Foo[21]", "Foo[21]")
	assert.Empty(t, result.Messages)
	testEval(t, NewSession(defs), "Foo", "Foo")

	text, ok := defs.MessageTemplate(foo, "tag")
	assert.True(t, ok)
	assert.Equal(t, "text", text)

	// ClearValues keeps attributes.
	register(t, defs, "Foo", "Foo[x_Integer]", doubles)
	require.NoError(t, defs.SetAttributes(foo, Listable))
	defs.ClearValues(foo)
	assert.Equal(t, Listable, defs.Attributes(foo))
	assert.Empty(t, defs.Rules(foo, DownValue))
}

func TestCorruptedStore(t *testing.T) {
	defs := NewDefinitions()
	foo := Intern("Corrupt")
	require.NoError(t, defs.SetAttributes(foo, HoldAll))

	rogue := &Symbol{name: foo.name, short: foo.short}
	err := defs.SetAttributes(rogue, HoldAll)
	assert.ErrorIs(t, err, ErrCorrupted)

	_, err = defs.Register(rogue, rogue, value(NewInt(1)))
	assert.ErrorIs(t, err, ErrCorrupted)

	var internal *InternalError
	if assert.ErrorAs(t, err, &internal) {
		assert.Same(t, rogue, internal.Symbol)
	}
}

func TestMessageTemplates(t *testing.T) {
	defs := NewDefinitions()
	foo := Intern("Foo")
	require.NoError(t, defs.SetMessage(foo, "argx", "custom `1`"))
	require.NoError(t, defs.SetMessage(SymbolGeneral, "general", "general `1`"))

	cases := []struct {
		name, tag, text string
		ok              bool
	}{
		{"own", "argx", "custom `1`", true},
		{"general-store", "general", "general `1`", true},
		{"general-builtin", "wrsym", "Symbol `1` is Protected.", true},
		{"missing", "nothing", "", false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			text, ok := defs.MessageTemplate(foo, c.tag)
			assert.Equal(t, c.ok, ok)
			assert.Equal(t, c.text, text)
		})
	}
}

func TestSymbols(t *testing.T) {
	defs := NewDefinitions()
	for _, name := range []string{"c", "a", "b"} {
		require.NoError(t, defs.SetAttributes(Intern(name), NoAttributes))
	}
	var names []string
	for _, sym := range defs.Symbols() {
		names = append(names, sym.Name())
	}
	assert.Equal(t, []string{"Global`a", "Global`b", "Global`c"}, names)
}

func TestMemoryInUse(t *testing.T) {
	defs := NewDefinitions()
	empty := defs.MemoryInUse()
	assert.Positive(t, empty)

	for _, p := range []string{"Foo[x_Integer]", "Foo[x_String]", "Foo[1]"} {
		register(t, defs, "Foo", p, value(NewInt(1)))
	}
	full := defs.MemoryInUse()
	assert.Greater(t, full, empty)

	var g errgroup.Group
	sizes := make([]int64, 16)
	for i := range sizes {
		i := i
		g.Go(func() error {
			sizes[i] = defs.MemoryInUse()
			return nil
		})
	}
	require.NoError(t, g.Wait())
	for _, size := range sizes {
		assert.Equal(t, full, size)
	}
}
