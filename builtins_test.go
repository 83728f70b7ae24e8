package warp

import (
	"math/bits"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBuiltinSession(t *testing.T, opts ...BuiltinOption) *Session {
	defs, err := NewBuiltinDefinitions(opts...)
	require.NoError(t, err)
	return NewSession(defs)
}

type evalCase struct {
	expr, expected string
	messages       []string
}

// testEvalSequence evaluates each case in order in the same session.
func testEvalSequence(t *testing.T, s *Session, cases []evalCase) {
	for _, c := range cases {
		result, err := s.EvaluateString(c.expr)
		require.NoError(t, err, c.expr)
		assert.Equal(t, c.expected, EncodeToString(result.Expr), c.expr)
		assert.Equal(t, Stable, result.State, c.expr)

		messages := make([]string, len(result.Messages))
		for i, m := range result.Messages {
			messages[i] = m.String()
		}
		if len(c.messages) == 0 {
			assert.Empty(t, messages, c.expr)
		} else {
			assert.Equal(t, c.messages, messages, c.expr)
		}
	}
}

func TestAssignment(t *testing.T) {
	testEvalSequence(t, newBuiltinSession(t), []evalCase{
		{"Set[x, 5]", "5", nil},
		{"x", "5", nil},
		{"Set[x, 6]", "6", nil},
		{"x", "6", nil},
		{"OwnValues[x]", "List[RuleDelayed[HoldPattern[x], 6]]", nil},
		{"SetDelayed[f[n_], Plus[n, 1]]", "Null", nil},
		{"f[2]", "3", nil},
		{"f[x]", "7", nil},
		{"DownValues[f]", "List[RuleDelayed[HoldPattern[f[Pattern[n, Blank[]]]], Plus[n, 1]]]", nil},
		{"SetDelayed[g[n_][m_], List[n, m]]", "Null", nil},
		{"g[1][2]", "List[1, 2]", nil},
		{"SubValues[g]", "List[RuleDelayed[HoldPattern[g[Pattern[n, Blank[]]][Pattern[m, Blank[]]]], List[n, m]]]", nil},
		{"Unset[x]", "Null", nil},
		{"x", "x", nil},
		{"Unset[x]", "$Failed", []string{"Unset::norep: Assignment on x for x not found."}},
		{"Set[Plus, 1]", "1", []string{"Set::wrsym: Symbol Plus is Protected."}},
		{"Set[1, 2]", "2", []string{"Set::setraw: Cannot assign to raw object 1."}},
		{"CompoundExpression[Set[y, 2], Plus[y, 1]]", "3", nil},
		{"CompoundExpression[]", "Null", nil},
	})
}

func TestAttributeBuiltins(t *testing.T) {
	testEvalSequence(t, newBuiltinSession(t), []evalCase{
		{"Attributes[Plus]", "List[Flat, Listable, NumericFunction, OneIdentity, Orderless, Protected]", nil},
		{`Attributes["Hold"]`, "List[HoldAll, Protected]", nil},
		{"SetAttributes[g, HoldAll]", "Null", nil},
		{"Attributes[g]", "List[HoldAll]", nil},
		{"SetAttributes[g, List[Flat, Orderless]]", "Null", nil},
		{"Attributes[g]", "List[Flat, HoldAll, Orderless]", nil},
		{"SetAttributes[g, Bogus]", "$Failed", []string{"SetAttributes::attnf: Bogus is not a known attribute."}},
		{"ClearAttributes[g, HoldAll]", "Null", nil},
		{"Attributes[g]", "List[Flat, Orderless]", nil},
		{"g[b, a, g[c]]", "g[a, b, c]", nil},
		{"SetAttributes[List, HoldAll]", "$Failed", []string{"SetAttributes::locked: Symbol List is locked."}},
		{"Attributes[$MaxLengthIntStringConversion]", "List[Constant]", nil},
	})
}

func TestClearBuiltins(t *testing.T) {
	testEvalSequence(t, newBuiltinSession(t), []evalCase{
		{"SetAttributes[h, Listable]", "Null", nil},
		{"Set[h[1], 2]", "2", nil},
		{"h[1]", "2", nil},
		{"Clear[h]", "Null", nil},
		{"h[1]", "h[1]", nil},
		{"Attributes[h]", "List[Listable]", nil},
		{"Set[h[1], 2]", "2", nil},
		{`ClearAll["h"]`, "Null", nil},
		{"h[1]", "h[1]", nil},
		{"Attributes[h]", "List[]", nil},
		{"Clear[Plus]", "Null", []string{"Clear::wrsym: Symbol Plus is Protected."}},
		{"Clear[1]", "Null", []string{"Clear::sym: Argument 1 at position 1 is expected to be a symbol."}},
		{"Plus[1, 2]", "3", nil},
	})
}

func TestStructuralBuiltins(t *testing.T) {
	s := newBuiltinSession(t)
	cases := []struct{ name, expr, expected string }{
		{"sameq", "SameQ[f[1], f[1]]", "True"},
		{"sameq-exact", "SameQ[1, 1.]", "False"},
		{"sameq-empty", "SameQ[]", "True"},
		{"head", "Head[f[1]]", "f"},
		{"head-integer", "Head[1]", "Integer"},
		{"head-string", `Head["s"]`, "String"},
		{"length", "Length[f[1, 2]]", "2"},
		{"length-atom", "Length[a]", "0"},
		{"hold", "Hold[Plus[1, 2]]", "Hold[Plus[1, 2]]"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			testEval(t, s, c.expr, c.expected)
		})
	}
}

func TestNumerics(t *testing.T) {
	s := newBuiltinSession(t)
	cases := []struct{ name, expr, expected string }{
		{"plus", "Plus[1, 2]", "3"},
		{"plus-real", "Plus[1, 2.5]", "3.5"},
		{"plus-empty", "Plus[]", "0"},
		{"plus-one", "Plus[a]", "a"},
		{"plus-zero", "Plus[0, a]", "a"},
		{"plus-symbolic", "Plus[b, 1, a, 2]", "Plus[3, a, b]"},
		{"plus-flat", "Plus[1, Plus[a, 2]]", "Plus[3, a]"},
		{"plus-listable", "Plus[List[1, 2], 10]", "List[11, 12]"},
		{"times", "Times[2, 3, a]", "Times[6, a]"},
		{"times-one", "Times[1, a]", "a"},
		{"times-empty", "Times[]", "1"},
		{"times-big", "Times[4294967296, 4294967296]", "18446744073709551616"},
		{"times-real", "Times[2, 0.5]", "1."},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			testEval(t, s, c.expr, c.expected)
		})
	}
}

func TestStrings(t *testing.T) {
	s := newBuiltinSession(t)
	cases := []struct{ name, expr, expected string }{
		{"tostring", `ToString[f[1, "a"]]`, `"f[1, \"a\"]"`},
		{"tostring-string", `ToString["a"]`, `"a"`},
		{"length", `StringLength["héllo"]`, "5"},
		{"length-listable", `StringLength[List["a", "bc"]]`, "List[1, 2]"},
		{"join", `StringJoin["a", "b", "c"]`, `"abc"`},
		{"join-list", `StringJoin[List["a", "b"]]`, `"ab"`},
		{"join-empty", `StringJoin[]`, `""`},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			testEval(t, s, c.expr, c.expected)
		})
	}
}

func TestMaxLengthIntStringConversion(t *testing.T) {
	big641 := "1" + strings.Repeat("0", 640)
	big700 := "1" + strings.Repeat("0", 700)

	testEvalSequence(t, newBuiltinSession(t), []evalCase{
		{"$MaxLengthIntStringConversion", "4300", nil},
		{"Set[$MaxLengthIntStringConversion, 10]", "4300", []string{
			"$MaxLengthIntStringConversion::inv: 10 is not 0 or an Integer value >640.",
		}},
		{`Set[$MaxLengthIntStringConversion, "x"]`, "4300", []string{
			"$MaxLengthIntStringConversion::inv: x is not 0 or an Integer value >640.",
		}},
		{"$MaxLengthIntStringConversion", "4300", nil},
		{"SetDelayed[$MaxLengthIntStringConversion, 1000]", "1000", nil},
		{"$MaxLengthIntStringConversion", "1000", nil},
		{"Set[$MaxLengthIntStringConversion, 640]", "640", nil},
		{"StringLength[ToString[" + big641[:640] + "]]", "640", nil},
		{"StringLength[ToString[" + big641 + "]]", "647", nil},
		{"Set[$MaxLengthIntStringConversion, 0]", "0", nil},
		{"StringLength[ToString[" + big700 + "]]", "701", nil},
	})

	// Each store has its own setting.
	testEvalSequence(t, newBuiltinSession(t), []evalCase{
		{"$MaxLengthIntStringConversion", "4300", nil},
	})
}

func TestToStringAbbreviation(t *testing.T) {
	digits1135 := "1" + strings.Repeat("0", 1133) + "7"
	digits5001 := "1" + strings.Repeat("0", 5000)

	cases := []struct {
		name     string
		limit    string
		number   string
		length   string
		contains string
	}{
		{"default", "", digits5001, "4309", " <<701>> "},
		{"650", "650", digits1135, "659", " <<485>> "},
		{"negative", "650", "-" + digits1135, "660", " <<485>> "},
		{"unlimited", "0", digits1135, "1135", ""},
		{"short", "650", "123", "3", ""},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := newBuiltinSession(t)
			if c.limit != "" {
				testEval(t, s, "Set[$MaxLengthIntStringConversion, "+c.limit+"]", c.limit)
			}
			testEval(t, s, "StringLength[ToString["+c.number+"]]", c.length)

			result, err := s.EvaluateString("ToString[" + c.number + "]")
			require.NoError(t, err)
			assert.Empty(t, result.Messages)
			str, ok := result.Expr.(String)
			require.True(t, ok)
			if c.contains == "" {
				assert.Equal(t, c.number, string(str))
				return
			}
			assert.Contains(t, string(str), c.contains)
			assert.True(t, strings.HasSuffix(string(str), c.number[len(c.number)-10:]))
		})
	}

	result, err := newBuiltinSession(t).EvaluateString("ToString[f[" + digits5001 + ", 2]]")
	require.NoError(t, err)
	assert.Regexp(t, `^"f\[10+ <<701>> 0+, 2\]"$`, EncodeToString(result.Expr))
}

func TestMaxLengthMessageDetails(t *testing.T) {
	result, err := newBuiltinSession(t).EvaluateString("Set[$MaxLengthIntStringConversion, 10]")
	require.NoError(t, err)
	require.Len(t, result.Messages, 1)

	m := result.Messages[0]
	assert.Equal(t, "$MaxLengthIntStringConversion", m.Symbol.Short())
	assert.Equal(t, "inv", m.Tag)
	assert.Equal(t, "10 is not 0 or an Integer value >640.", m.Text)
}

func TestEnvironment(t *testing.T) {
	t.Setenv("WARP_TEST_VAR", "value")
	os.Unsetenv("WARP_TEST_MISSING")

	s := newBuiltinSession(t)
	cases := []struct{ name, expr, expected string }{
		{"set", `Environment["WARP_TEST_VAR"]`, `"value"`},
		{"unset", `Environment["WARP_TEST_MISSING"]`, "$Failed"},
		{"get", `GetEnvironment["WARP_TEST_VAR"]`, `Rule["WARP_TEST_VAR", "value"]`},
		{"get-unset", `GetEnvironment["WARP_TEST_MISSING"]`, `Rule["WARP_TEST_MISSING", None]`},
		{"get-list", `GetEnvironment[List["WARP_TEST_VAR", "WARP_TEST_MISSING"]]`, `List[Rule["WARP_TEST_VAR", "value"], Rule["WARP_TEST_MISSING", None]]`},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			testEval(t, s, c.expr, c.expected)
		})
	}

	result, err := s.EvaluateString("GetEnvironment[]")
	require.NoError(t, err)
	all, ok := hasHead(result.Expr, SymbolList)
	require.True(t, ok)
	assert.Contains(t, EncodeToString(all), `Rule["WARP_TEST_VAR", "value"]`)
}

func TestCommandLine(t *testing.T) {
	s := newBuiltinSession(t, WithCommandLine([]string{"warp", "script.m", "--", "a", "b"}))
	testEval(t, s, "$CommandLine", `List["warp", "script.m", "--", "a", "b"]`)
	testEval(t, s, "$ScriptCommandLine", `List["script.m", "a", "b"]`)

	s = newBuiltinSession(t, WithCommandLine([]string{"warp"}))
	testEval(t, s, "$ScriptCommandLine", "List[]")
}

func TestSystemInformation(t *testing.T) {
	s := newBuiltinSession(t)
	cases := []struct{ name, expr, expected string }{
		{"machine", "$Machine", `"` + runtime.GOOS + `"`},
		{"system-id", "$SystemID", `"` + runtime.GOOS + "-" + runtime.GOARCH + `"`},
		{"process-id", "$ProcessID", NewInt(int64(os.Getpid())).String()},
		{"parent-process-id", "$ParentProcessID", NewInt(int64(os.Getppid())).String()},
		{"word-length", "$SystemWordLength", NewInt(bits.UintSize).String()},
		{"version-number", "$VersionNumber", "10."},
		{"warp-version", "WarpVersion", `"` + Version.String() + `"`},
		{"packages", "$Packages", "List[\"ImportExport`\", \"XML`\", \"Internal`\", \"System`\", \"Global`\"]"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			testEval(t, s, c.expr, c.expected)
		})
	}

	for _, expr := range []string{"$MachineName", "$ProcessorType", "$UserName", "$Version"} {
		t.Run(expr, func(t *testing.T) {
			result, err := s.EvaluateString(expr)
			require.NoError(t, err)
			assert.IsType(t, String(""), result.Expr)
		})
	}

	result, err := s.EvaluateString("$Version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(result.Expr.(String)), "warp "+Version.String()))

	for _, expr := range []string{"$SystemMemory", "MemoryAvailable[]", "MemoryInUse[]", "Share[]", "Share[a]"} {
		t.Run(expr, func(t *testing.T) {
			result, err := s.EvaluateString(expr)
			require.NoError(t, err)
			assert.IsType(t, Integer{}, result.Expr)
		})
	}

	result, err = s.EvaluateString("MemoryInUse[]")
	require.NoError(t, err)
	assert.Positive(t, result.Expr.(Integer).Sign())

	testEval(t, s, "Share[1]", "Share[1]")
	testEval(t, s, "Set[$ProcessID, 1]", "1")
}

func TestRun(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh is not available")
	}

	s := newBuiltinSession(t)
	testEval(t, s, `Run["true"]`, "0")
	testEval(t, s, `Run["exit 3"]`, "3")
	testEval(t, s, "Run[1]", "Run[1]")
}

func TestListBuiltins(t *testing.T) {
	s := newBuiltinSession(t)
	cases := []struct{ name, expr, expected string }{
		{"first", "First[List[1, 2, 3]]", "1"},
		{"last", "Last[f[1, 2, 3]]", "3"},
		{"rest", "Rest[List[1, 2, 3]]", "List[2, 3]"},
		{"most", "Most[List[1, 2, 3]]", "List[1, 2]"},
		{"append", "Append[List[1], 2]", "List[1, 2]"},
		{"join", "Join[List[1], List[2, 3], List[]]", "List[1, 2, 3]"},
		{"reverse", "Reverse[f[1, 2, 3]]", "f[3, 2, 1]"},
		{"part", "Part[List[a, b, c], 2]", "b"},
		{"part-negative", "Part[List[a, b, c], -1]", "c"},
		{"part-head", "Part[f[a], 0]", "f"},
		{"map", "Map[g, List[1, 2]]", "List[g[1], g[2]]"},
		{"map-atom", "Map[g, 1]", "1"},
		{"apply", "Apply[Plus, List[1, 2, 3]]", "6"},
		{"not", "Not[True]", "False"},
		{"not-not", "Not[Not[a]]", "a"},
		{"trueq", "TrueQ[a]", "False"},
		{"contains", `StringContainsQ["hello", "ell"]`, "True"},
		{"replace", `StringReplace["a-b-c", Rule["-", "+"]]`, `"a+b+c"`},
		{"replace-list", `StringReplace["ab", List[Rule["a", "b"], Rule["b", "a"]]]`, `"ba"`},
		{"trim", `StringTrim["  x  "]`, `"x"`},
		{"trim-affix", `StringTrim["--x--", "--"]`, `"x"`},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			testEval(t, s, c.expr, c.expected)
		})
	}

	testEvalSequence(t, s, []evalCase{
		{"First[List[]]", "First[List[]]", []string{"First::nofirst: List[] has zero length and no first element."}},
		{"Part[List[a], 3]", "Part[List[a], 3]", []string{"Part::partw: Part 3 of List[a] does not exist."}},
		{"Append[1, 2]", "Append[1, 2]", []string{"Append::normal: Nonatomic expression expected at position 1 in Append[1, 2]."}},
	})
}
