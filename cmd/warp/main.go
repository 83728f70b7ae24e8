package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/peterh/liner"

	"github.com/pgavlin/warp"
)

const historyFile = ".warp_history"

func main() {
	configPath := flag.String("config", "", "path to a YAML configuration file")
	watch := flag.Bool("watch", false, "re-evaluate the script whenever it changes")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [-config path] [-watch] [path to file [-- args...]]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	config := warp.DefaultConfig()
	if *configPath != "" {
		c, err := warp.LoadConfig(*configPath)
		if err != nil {
			log.Fatal(err)
		}
		config = c
	}

	logger, err := warp.NewLogger(os.Stderr, config)
	if err != nil {
		log.Fatal(err)
	}

	defs, err := warp.NewBuiltinDefinitions()
	if err != nil {
		log.Fatal(err)
	}
	defs.SetLogger(logger)

	session := warp.NewSession(defs,
		warp.WithConfig(config),
		warp.WithLogger(logger),
		warp.WithSink(warp.SinkFunc(func(m warp.Message) {
			fmt.Fprintln(os.Stderr, m)
		})))

	if flag.NArg() == 0 {
		if *watch {
			log.Fatal("-watch requires a file")
		}
		repl(session)
		return
	}

	path, ok := scriptPath(flag.Args())
	if !ok {
		flag.Usage()
		os.Exit(2)
	}
	if err := runFile(session, path); err != nil {
		if !*watch {
			log.Fatal(err)
		}
		fmt.Fprintln(os.Stderr, err)
	}
	if *watch {
		if err := watchFile(session, path); err != nil {
			log.Fatal(err)
		}
	}
}

// scriptPath returns the script named by the non-flag arguments. Arguments
// after a "--" that follows the script are left for $ScriptCommandLine.
func scriptPath(args []string) (string, bool) {
	switch {
	case len(args) == 1:
		return args[0], true
	case len(args) > 1 && args[1] == "--":
		return args[0], true
	default:
		return "", false
	}
}

func runFile(session *warp.Session, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	exprs, err := warp.ParseAll(f)
	if err != nil {
		return fmt.Errorf("error parsing input: %w", err)
	}
	for _, x := range exprs {
		if err := evaluate(session, x); err != nil {
			return err
		}
	}
	return nil
}

func evaluate(session *warp.Session, x warp.Expr) error {
	result, err := session.Evaluate(x)
	if err != nil {
		return err
	}
	if result.Expr != warp.Expr(warp.SymbolNull) {
		warp.Encode(os.Stdout, result.Expr)
		fmt.Printf("\n")
	}
	return nil
}

// watchFile re-runs the script at path each time it is written.
func watchFile(session *warp.Session, path string) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	// Watch the directory so that editors that replace the file are seen.
	if err := w.Add(filepath.Dir(path)); err != nil {
		return err
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	for {
		select {
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			name, err := filepath.Abs(ev.Name)
			if err != nil || name != abs || ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			fmt.Fprintf(os.Stderr, "--- %s changed\n", path)
			if err := runFile(session, path); err != nil {
				fmt.Fprintln(os.Stderr, err)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			return err
		}
	}
}

func repl(session *warp.Session) {
	fmt.Printf("warp %v\n", warp.Version)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	for {
		src, ok := readExpression(ln)
		if !ok {
			fmt.Println()
			return
		}
		if strings.TrimSpace(src) == "" {
			continue
		}
		ln.AppendHistory(strings.ReplaceAll(src, "\n", " "))

		exprs, err := warp.ParseAll(strings.NewReader(src))
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			continue
		}
		for _, x := range exprs {
			if err := evaluate(session, x); err != nil {
				fmt.Fprintln(os.Stderr, err)
				break
			}
		}
	}
}

// readExpression reads lines until they form complete expressions.
func readExpression(ln *liner.State) (string, bool) {
	var b strings.Builder
	for {
		prompt := "In: "
		if b.Len() > 0 {
			prompt = "... "
		}
		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
			return "", false
		}
		if err != nil {
			return "", true
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		src := b.String()
		if _, err := warp.ParseAll(strings.NewReader(src)); warp.IsIncomplete(err) {
			continue
		}
		return src, true
	}
}
