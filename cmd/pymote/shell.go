package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ergochat/readline"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	pymote "github.com/ManfredAabye/OpenSim-Pymote"
)

const (
	shellPrompt     = "pymote> "
	historyFileName = ".pymote_history"
	historySize     = 500
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Open an interactive console session",
	Long: `Opens an interactive session against the command bridge. Every line
is sent to the simulator as a console command; responses are printed as
they arrive.

Dot-commands are handled locally:
  .help   show this help
  .quit   leave the shell`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(cmd, runShell)
	},
}

func runShell(client *pymote.Client) error {
	le := newLineEditor()
	defer le.close()

	for {
		line, err := le.readLine(shellPrompt)
		if errors.Is(err, readline.ErrInterrupt) {
			// Ctrl-C discards the current line.
			continue
		}
		if err != nil {
			// Ctrl-D or end of piped input.
			fmt.Println()
			return nil
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		le.remember(line)

		switch line {
		case ".quit", ".exit":
			return nil
		case ".help":
			fmt.Println("Type a console command to send it to the simulator.")
			fmt.Println("Dot-commands: .help .quit")
			continue
		}

		res, err := client.Execute(line, nil)
		if err != nil {
			var connErr *pymote.ConnectionError
			if errors.As(err, &connErr) {
				// The transport is gone; nothing more to do here.
				return err
			}
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			continue
		}
		if res.OK() {
			if res.Output() != "" {
				fmt.Println(res.Output())
			}
		} else {
			fmt.Fprintf(os.Stderr, "Error: %s\n", res.ErrorText())
		}
	}
}

// lineEditor reads input lines in one of two modes. On a TTY it uses
// readline with persistent history; on piped input it falls back to a
// plain scanner so the shell stays scriptable.
type lineEditor struct {
	interactive bool
	rl          *readline.Instance
	scanner     *bufio.Scanner
}

func newLineEditor() *lineEditor {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return &lineEditor{scanner: bufio.NewScanner(os.Stdin)}
	}

	rl, err := readline.NewFromConfig(&readline.Config{
		Prompt:                 shellPrompt,
		HistoryFile:            historyPath(),
		HistoryLimit:           historySize,
		DisableAutoSaveHistory: true,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: readline init failed (%v), using basic input\n", err)
		return &lineEditor{scanner: bufio.NewScanner(os.Stdin)}
	}
	return &lineEditor{interactive: true, rl: rl}
}

func (le *lineEditor) readLine(prompt string) (string, error) {
	if le.interactive {
		le.rl.SetPrompt(prompt)
		return le.rl.Readline()
	}
	fmt.Print(prompt)
	if !le.scanner.Scan() {
		if err := le.scanner.Err(); err != nil {
			return "", err
		}
		return "", errors.New("end of input")
	}
	return le.scanner.Text(), nil
}

// remember adds a non-empty line to the history in interactive mode.
func (le *lineEditor) remember(line string) {
	if le.interactive {
		le.rl.SaveToHistory(line)
	}
}

func (le *lineEditor) close() {
	if le.interactive {
		le.rl.Close()
	}
}

func historyPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return historyFileName
	}
	return filepath.Join(home, historyFileName)
}
