package warp

import (
	"io"
	"strconv"
	"strings"
	"unicode/utf8"
)

var (
	symbolStringContainsQ = system("StringContainsQ")
	symbolStringReplace   = system("StringReplace")
	symbolStringTrim      = system("StringTrim")
)

func stringBuiltins(sys *systemState) []builtin {
	return []builtin{
		{
			symbol:     SymbolToString,
			attributes: Protected,
			rules: []nativeRule{
				{"ToString[e_]", func(ev *Evaluation, b Bindings) (Expr, error) {
					e := b.Get("e")
					if s, ok := e.(String); ok {
						return s, nil
					}
					var sb strings.Builder
					if err := encodeAbbreviated(&sb, e, int(sys.maxLength.Load())); err != nil {
						return nil, err
					}
					return String(sb.String()), nil
				}},
			},
		},
		{
			symbol:     SymbolStringLength,
			attributes: Listable | Protected,
			rules: []nativeRule{
				{"StringLength[s_String]", func(ev *Evaluation, b Bindings) (Expr, error) {
					return NewInt(int64(utf8.RuneCountInString(string(b.Get("s").(String))))), nil
				}},
			},
		},
		{
			symbol:     SymbolStringJoin,
			attributes: Flat | OneIdentity | Protected,
			rules: []nativeRule{
				{"StringJoin[s___String]", func(ev *Evaluation, b Bindings) (Expr, error) {
					var sb strings.Builder
					for _, s := range b.Sequence("s") {
						sb.WriteString(string(s.(String)))
					}
					return String(sb.String()), nil
				}},
				{"StringJoin[{s___String}]", func(ev *Evaluation, b Bindings) (Expr, error) {
					var sb strings.Builder
					for _, s := range b.Sequence("s") {
						sb.WriteString(string(s.(String)))
					}
					return String(sb.String()), nil
				}},
			},
		},
		{
			symbol:     symbolStringContainsQ,
			attributes: Protected,
			rules: []nativeRule{
				{"StringContainsQ[s_String, sub_String]", func(ev *Evaluation, b Bindings) (Expr, error) {
					return Boolean(strings.Contains(string(b.Get("s").(String)), string(b.Get("sub").(String)))), nil
				}},
			},
		},
		{
			symbol:     symbolStringReplace,
			attributes: Protected,
			rules: []nativeRule{
				{"StringReplace[s_String, Rule[old_String, repl_String]]", func(ev *Evaluation, b Bindings) (Expr, error) {
					return String(strings.ReplaceAll(string(b.Get("s").(String)), string(b.Get("old").(String)), string(b.Get("repl").(String)))), nil
				}},
				{"StringReplace[s_String, {r___Rule}]", func(ev *Evaluation, b Bindings) (Expr, error) {
					var oldnew []string
					for _, r := range b.Sequence("r") {
						r := r.(*Compound)
						if r.Len() != 2 {
							return nil, nil
						}
						old, ok1 := r.elements[0].(String)
						repl, ok2 := r.elements[1].(String)
						if !ok1 || !ok2 {
							return nil, nil
						}
						oldnew = append(oldnew, string(old), string(repl))
					}
					return String(strings.NewReplacer(oldnew...).Replace(string(b.Get("s").(String)))), nil
				}},
			},
		},
		{
			symbol:     symbolStringTrim,
			attributes: Protected,
			rules: []nativeRule{
				{"StringTrim[s_String]", func(ev *Evaluation, b Bindings) (Expr, error) {
					return String(strings.TrimSpace(string(b.Get("s").(String)))), nil
				}},
				{"StringTrim[s_String, suffix_String]", func(ev *Evaluation, b Bindings) (Expr, error) {
					s, suffix := string(b.Get("s").(String)), string(b.Get("suffix").(String))
					return String(strings.TrimSuffix(strings.TrimPrefix(s, suffix), suffix)), nil
				}},
			},
		},
	}
}

// encodeAbbreviated writes the FullForm of e, shortening each integer with
// more than limit digits to its leading and trailing digits around a count
// of the omitted ones, e.g. 12 <<6>> 90. A limit of 0 writes every digit.
func encodeAbbreviated(w io.Writer, e Expr, limit int) error {
	switch e := e.(type) {
	case Integer:
		_, err := io.WriteString(w, abbreviateInteger(e, limit))
		return err
	case *Compound:
		if err := encodeAbbreviated(w, e.head, limit); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "["); err != nil {
			return err
		}
		for i, el := range e.elements {
			if i > 0 {
				if _, err := io.WriteString(w, ", "); err != nil {
					return err
				}
			}
			if err := encodeAbbreviated(w, el, limit); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "]")
		return err
	default:
		return Encode(w, e)
	}
}

func abbreviateInteger(n Integer, limit int) string {
	// A b-bit integer has at most floor(b*log10(2))+1 digits.
	if limit <= 0 || n.i.BitLen()*30103/100000 <= limit-1 {
		return n.i.String()
	}

	digits, sign := n.i.String(), ""
	if n.i.Sign() < 0 {
		digits, sign = digits[1:], "-"
	}
	if len(digits) <= limit {
		return sign + digits
	}
	half := limit / 2
	omitted := len(digits) - 2*half
	return sign + digits[:half] + " <<" + strconv.Itoa(omitted) + ">> " + digits[len(digits)-half:]
}
