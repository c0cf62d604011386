package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"
)

// runPlainREPL reads expressions line by line. On a terminal it uses a
// liner prompt with persistent history; on anything else it degrades to
// plain reads so `echo "1 + 2" | golox` works. The -tokens/-ast modes
// apply only to the non-interactive path.
func runPlainREPL(cfg config, opts runOptions) int {
	if !stdinIsTerminal() {
		return runPipe(os.Stdin, opts, os.Stdout, os.Stderr)
	}

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	histPath := cfg.historyPath()
	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if histPath == "" {
			return
		}
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	for {
		line, err := ln.Prompt(cfg.REPL.Prompt)
		if errors.Is(err, io.EOF) {
			fmt.Println()
			return 0
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}

		input := strings.TrimSpace(line)
		if input == "" {
			continue
		}
		if input == ":quit" || input == ":q" {
			return 0
		}

		output, isErr := evaluateLine(line)
		switch {
		case isErr:
			fmt.Fprintln(os.Stderr, output)
		case output != "":
			fmt.Println(output)
		}
		ln.AppendHistory(line)
	}
}

// runPipe evaluates each nonblank line of stdin and reports the status
// of the last line that failed.
func runPipe(stdin io.Reader, opts runOptions, stdout, stderr io.Writer) int {
	status := 0
	sc := bufio.NewScanner(stdin)
	for sc.Scan() {
		if strings.TrimSpace(sc.Text()) == "" {
			continue
		}
		if code := runSource(sc.Text(), opts, stdout, stderr); code != 0 {
			status = code
		}
	}
	if err := sc.Err(); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	return status
}
