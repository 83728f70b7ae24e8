package warp

import (
	"errors"
	"fmt"
	"math/bits"
	"os"
	"os/exec"
	"os/user"
	"runtime"
	"runtime/debug"
	"sort"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Version is the version of this module.
var Version = semver.MustParse("0.4.0")

// languageVersion is the version of the language the builtins follow.
var languageVersion = semver.MustParse("10.0.0")

var (
	symbolMaxLength         = system("$MaxLengthIntStringConversion")
	symbolCommandLine       = system("$CommandLine")
	symbolScriptCommandLine = system("$ScriptCommandLine")
	symbolMachine           = system("$Machine")
	symbolMachineName       = system("$MachineName")
	symbolProcessID         = system("$ProcessID")
	symbolParentProcessID   = system("$ParentProcessID")
	symbolProcessorType     = system("$ProcessorType")
	symbolSystemID          = system("$SystemID")
	symbolSystemWordLength  = system("$SystemWordLength")
	symbolUserName          = system("$UserName")
	symbolVersion           = system("$Version")
	symbolVersionNumber     = system("$VersionNumber")
	symbolWarpVersion       = system("WarpVersion")
	symbolSystemMemory      = system("$SystemMemory")
	symbolEnvironment       = system("Environment")
	symbolGetEnvironment    = system("GetEnvironment")
	symbolMemoryAvailable   = system("MemoryAvailable")
	symbolMemoryInUse       = system("MemoryInUse")
	symbolShare             = system("Share")
	symbolRun               = system("Run")
)

func systemBuiltins(sys *systemState) []builtin {
	return []builtin{
		{
			symbol:     symbolMaxLength,
			attributes: Constant,
			messages: map[string]string{
				"inv": "`1` is not 0 or an Integer value >640.",
			},
			rules: []nativeRule{
				{"$MaxLengthIntStringConversion", func(ev *Evaluation, b Bindings) (Expr, error) {
					return NewInt(sys.maxLength.Load()), nil
				}},
				{"Set[$MaxLengthIntStringConversion, expr_]", sys.setMaxLength},
				{"SetDelayed[$MaxLengthIntStringConversion, expr_]", sys.setMaxLength},
			},
		},
		predefined(symbolCommandLine, func(*Evaluation) (Expr, error) {
			return stringList(sys.args), nil
		}),
		predefined(symbolScriptCommandLine, func(*Evaluation) (Expr, error) {
			return stringList(scriptCommandLine(sys.args)), nil
		}),
		predefined(symbolMachine, func(*Evaluation) (Expr, error) {
			return String(runtime.GOOS), nil
		}),
		predefined(symbolSystemID, func(*Evaluation) (Expr, error) {
			return String(runtime.GOOS + "-" + runtime.GOARCH), nil
		}),
		predefined(symbolMachineName, func(*Evaluation) (Expr, error) {
			return String(machineName()), nil
		}),
		predefined(symbolProcessorType, func(*Evaluation) (Expr, error) {
			return String(processorType()), nil
		}),
		predefined(symbolProcessID, func(*Evaluation) (Expr, error) {
			return NewInt(int64(os.Getpid())), nil
		}),
		predefined(symbolParentProcessID, func(*Evaluation) (Expr, error) {
			return NewInt(int64(os.Getppid())), nil
		}),
		predefined(symbolSystemWordLength, func(*Evaluation) (Expr, error) {
			return NewInt(bits.UintSize), nil
		}),
		predefined(symbolUserName, func(*Evaluation) (Expr, error) {
			return String(userName()), nil
		}),
		predefined(symbolVersion, func(*Evaluation) (Expr, error) {
			return String(fmt.Sprintf("warp %v (%v %v/%v)", Version, runtime.Version(), runtime.GOOS, runtime.GOARCH)), nil
		}),
		predefined(symbolVersionNumber, func(*Evaluation) (Expr, error) {
			return Real(float64(languageVersion.Major()) + float64(languageVersion.Minor())/10), nil
		}),
		predefined(symbolWarpVersion, func(*Evaluation) (Expr, error) {
			return String(Version.String()), nil
		}),
		predefined(SymbolPackages, func(*Evaluation) (Expr, error) {
			return stringList([]string{"ImportExport`", "XML`", "Internal`", systemContext, globalContext}), nil
		}),
		predefined(symbolSystemMemory, func(*Evaluation) (Expr, error) {
			total, _ := systemMemory()
			return NewInt(total), nil
		}),
		{
			symbol:     symbolMemoryAvailable,
			attributes: Protected,
			rules: []nativeRule{
				{"MemoryAvailable[]", func(ev *Evaluation, b Bindings) (Expr, error) {
					_, available := systemMemory()
					return NewInt(available), nil
				}},
			},
		},
		{
			symbol:     symbolMemoryInUse,
			attributes: Protected,
			rules: []nativeRule{
				{"MemoryInUse[]", func(ev *Evaluation, b Bindings) (Expr, error) {
					return NewInt(ev.defs.MemoryInUse()), nil
				}},
			},
		},
		{
			symbol:     symbolShare,
			attributes: Protected,
			rules: []nativeRule{
				{"Share[]", share},
				{"Share[s_Symbol]", share},
			},
		},
		{
			symbol:     symbolEnvironment,
			attributes: Protected,
			rules: []nativeRule{
				{"Environment[var_String]", func(ev *Evaluation, b Bindings) (Expr, error) {
					v, ok := os.LookupEnv(string(b.Get("var").(String)))
					if !ok {
						return SymbolFailed, nil
					}
					return String(v), nil
				}},
			},
		},
		{
			symbol:     symbolGetEnvironment,
			attributes: Protected,
			rules: []nativeRule{
				{"GetEnvironment[var_String]", func(ev *Evaluation, b Bindings) (Expr, error) {
					return environmentRule(b.Get("var").(String)), nil
				}},
				{"GetEnvironment[{vars___String}]", func(ev *Evaluation, b Bindings) (Expr, error) {
					vars := b.Sequence("vars")
					rules := make([]Expr, len(vars))
					for i, v := range vars {
						rules[i] = environmentRule(v.(String))
					}
					return NewList(rules...), nil
				}},
				{"GetEnvironment[]", func(ev *Evaluation, b Bindings) (Expr, error) {
					env := os.Environ()
					sort.Strings(env)
					rules := make([]Expr, 0, len(env))
					for _, kv := range env {
						k, v, _ := strings.Cut(kv, "=")
						rules = append(rules, NewExpr(SymbolRule, String(k), String(v)))
					}
					return NewList(rules...), nil
				}},
			},
		},
		{
			symbol:     symbolRun,
			attributes: Protected,
			messages: map[string]string{
				"fail": "Could not run `1`: `2`.",
			},
			rules: []nativeRule{
				{"Run[cmd_String]", run},
			},
		},
	}
}

// predefined returns a builtin whose own value is computed on each
// reference.
func predefined(sym *Symbol, f func(ev *Evaluation) (Expr, error)) builtin {
	return builtin{
		symbol:     sym,
		attributes: Protected,
		rules: []nativeRule{
			{sym.Short(), func(ev *Evaluation, _ Bindings) (Expr, error) {
				return f(ev)
			}},
		},
	}
}

// setMaxLength accepts 0 or an integer of at least 640. Any other value is
// reported and leaves the setting unchanged.
func (sys *systemState) setMaxLength(ev *Evaluation, b Bindings) (Expr, error) {
	expr := b.Get("expr")
	if n, ok := expr.(Integer); ok {
		if v, ok := n.Int64(); ok && (v == 0 || v >= 640) {
			sys.maxLength.Store(v)
			return NewInt(v), nil
		}
	}
	return nil, FailWith(NewInt(sys.maxLength.Load()), symbolMaxLength, "inv", expr)
}

func stringList(ss []string) *Compound {
	elements := make([]Expr, len(ss))
	for i, s := range ss {
		elements[i] = String(s)
	}
	return NewList(elements...)
}

// scriptCommandLine returns the script name and the arguments that follow
// "--", or nil if there is no "--".
func scriptCommandLine(args []string) []string {
	for i, arg := range args {
		if arg == "--" {
			script := ""
			if i > 0 {
				script = args[i-1]
			}
			return append([]string{script}, args[i+1:]...)
		}
	}
	return nil
}

func environmentRule(name String) Expr {
	if v, ok := os.LookupEnv(string(name)); ok {
		return NewExpr(SymbolRule, name, String(v))
	}
	return NewExpr(SymbolRule, name, SymbolNone)
}

func userName() string {
	if u, err := user.Current(); err == nil {
		return u.Username
	}
	return os.Getenv("USER")
}

// share forces a garbage collection and returns the number of heap bytes it
// released.
func share(ev *Evaluation, b Bindings) (Expr, error) {
	var before, after runtime.MemStats
	runtime.ReadMemStats(&before)
	runtime.GC()
	debug.FreeOSMemory()
	runtime.ReadMemStats(&after)

	freed := int64(before.HeapAlloc) - int64(after.HeapAlloc)
	if freed < 0 {
		freed = 0
	}
	return NewInt(freed), nil
}

func run(ev *Evaluation, b Bindings) (Expr, error) {
	cmd := exec.CommandContext(ev.Context(), "sh", "-c", string(b.Get("cmd").(String)))
	cmd.Stdin, cmd.Stdout, cmd.Stderr = os.Stdin, os.Stdout, os.Stderr

	err := cmd.Run()
	var exit *exec.ExitError
	switch {
	case err == nil:
		return NewInt(0), nil
	case errors.As(err, &exit):
		return NewInt(int64(exit.ExitCode())), nil
	default:
		return nil, Fail(symbolRun, "fail", b.Get("cmd"), String(err.Error()))
	}
}
