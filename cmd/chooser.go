package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/mj1618/screencap/internal/window"
)

// selectRecord resolves the selection without prompting when possible: a
// lone candidate is taken as-is, and auto mode takes the sorted first,
// announcing the choice when other windows were skipped. ok=false means
// the caller must prompt.
func selectRecord(records []window.Record, auto bool, out io.Writer) (window.Record, bool) {
	if len(records) != 1 && !auto {
		return window.Record{}, false
	}
	selected := records[0]
	if len(records) > 1 {
		fmt.Fprintln(out, "\nAuto-selecting first window (use without --auto to choose):")
		fmt.Fprintf(out, "  %s: %s\n", selected.App, selected.DisplayTitle())
	}
	return selected, true
}

// chooseWindow presents the sorted candidates 1-based and blocks for a
// selection on stdin. Ctrl+C or end of input cancels the whole run cleanly.
func chooseWindow(records []window.Record) window.Record {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt)
	defer signal.Stop(sigCh)

	selected, ok := promptForWindow(records, os.Stdin, sigCh, os.Stdout)
	if !ok {
		fmt.Println("\nCancelled.")
		os.Exit(0)
	}
	return selected
}

// promptForWindow loops until a valid 1-based selection arrives on in.
// Empty input defaults to 1; invalid input re-prompts. Returns ok=false on
// interrupt or when the input stream ends.
func promptForWindow(records []window.Record, in io.Reader, interrupt <-chan os.Signal, out io.Writer) (window.Record, bool) {
	fmt.Fprintf(out, "\nFound %d windows:\n", len(records))
	for i, rec := range records {
		fmt.Fprintf(out, "%d. %s: %s\n", i+1, rec.App, rec.DisplayTitle())
	}

	lines := make(chan string)
	done := make(chan struct{})
	defer close(done)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-done:
				return
			}
		}
	}()

	for {
		fmt.Fprintf(out, "\nSelect window to capture (1-%d) [1]: ", len(records))

		select {
		case <-interrupt:
			return window.Record{}, false
		case line, open := <-lines:
			if !open {
				return window.Record{}, false
			}
			choice := strings.TrimSpace(line)
			if choice == "" {
				choice = "1"
			}
			n, err := strconv.Atoi(choice)
			if err != nil {
				fmt.Fprintln(out, "Please enter a valid number")
				continue
			}
			if n < 1 || n > len(records) {
				fmt.Fprintf(out, "Please enter a number between 1 and %d\n", len(records))
				continue
			}
			return records[n-1], true
		}
	}
}
