package warp

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
)

// Message is a diagnostic emitted during evaluation. Messages never alter
// control flow.
type Message struct {
	Symbol *Symbol
	Tag    string
	Text   string
}

func (m Message) String() string {
	return fmt.Sprintf("%s::%s: %s", EncodeToString(m.Symbol), m.Tag, m.Text)
}

// MessageSink consumes messages. Emit may be called from several sessions at
// once.
type MessageSink interface {
	Emit(m Message)
}

// SinkFunc adapts a function to a MessageSink.
type SinkFunc func(m Message)

func (f SinkFunc) Emit(m Message) {
	f(m)
}

// MessageLog is a MessageSink that records messages in memory.
type MessageLog struct {
	m        sync.Mutex
	messages []Message
}

func (l *MessageLog) Emit(m Message) {
	l.m.Lock()
	defer l.m.Unlock()
	l.messages = append(l.messages, m)
}

// Messages returns a copy of the recorded messages.
func (l *MessageLog) Messages() []Message {
	l.m.Lock()
	defer l.m.Unlock()
	return append([]Message(nil), l.messages...)
}

// Reset discards the recorded messages.
func (l *MessageLog) Reset() {
	l.m.Lock()
	defer l.m.Unlock()
	l.messages = nil
}

var generalMessages = map[string]string{
	"abort":   "Evaluation was aborted.",
	"argx":    "`1` called with `2` arguments; 1 argument is expected.",
	"attnf":   "`1` is not a known attribute.",
	"itlim":   "Iteration limit of `1` exceeded.",
	"locked":  "Symbol `1` is locked.",
	"norep":   "Assignment on `2` for `1` not found.",
	"reclim":  "Recursion depth of `1` exceeded.",
	"setraw":  "Cannot assign to raw object `1`.",
	"sym":     "Argument `1` at position `2` is expected to be a symbol.",
	"tdlen":   "Objects of unequal length in `1` cannot be combined.",
	"timeout": "Evaluation exceeded the time limit of `1`.",
	"wrsym":   "Symbol `1` is Protected.",
}

// formatMessage replaces each `n` in template with the FullForm of the n-th
// argument. Strings are inserted without quotes.
func formatMessage(template string, args []Expr) string {
	var b strings.Builder
	for {
		i := strings.IndexByte(template, '`')
		if i == -1 {
			b.WriteString(template)
			return b.String()
		}
		j := strings.IndexByte(template[i+1:], '`')
		if j == -1 {
			b.WriteString(template)
			return b.String()
		}
		j += i + 1

		b.WriteString(template[:i])
		n, err := strconv.Atoi(template[i+1 : j])
		switch {
		case err != nil:
			b.WriteString(template[i : j+1])
		case n >= 1 && n <= len(args):
			if s, ok := args[n-1].(String); ok {
				b.WriteString(string(s))
			} else {
				b.WriteString(EncodeToString(args[n-1]))
			}
		}
		template = template[j+1:]
	}
}
