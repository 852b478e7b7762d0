// Package main implements the sharedcounter command.
//
// sharedcounter starts two goroutines that each increment a shared counter
// 100000 times under a mutex, waits for both, and prints the final value:
//
//	$ sharedcounter
//	200000
//
// If a worker fails the error goes to stderr, no value is printed, and the
// exit status is 1.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/kolkov/sharedcounter/counter"
)

// version is reported by the version command. Tests override it.
var version = counter.Version

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, counter.Run))
}

// run executes the command and returns the process exit status. runTask
// performs the counter task; main passes counter.Run.
//
//nolint:errcheck // Writes to stdout/stderr are best-effort.
func run(args []string, stdout, stderr io.Writer, runTask func() (int, error)) int {
	if len(args) > 0 {
		switch args[0] {
		case "version", "--version", "-v":
			if err := counter.ValidateVersion(version); err != nil {
				fmt.Fprintf(stderr, "Error: %v\n", err)
				return 1
			}
			info := counter.GetInfo()
			fmt.Fprintf(stdout, "sharedcounter version %s\n", version)
			fmt.Fprintf(stdout, "task: %d workers x %d iterations\n", info.Workers, info.Iterations)
			return 0
		case "help", "--help", "-h":
			printUsage(stdout)
			return 0
		default:
			fmt.Fprintf(stderr, "Unknown command: %s\n\n", args[0])
			printUsage(stderr)
			return 1
		}
	}

	n, err := runTask()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	fmt.Fprintln(stdout, n)
	return 0
}

//nolint:errcheck // Usage output is best-effort.
func printUsage(w io.Writer) {
	fmt.Fprint(w, `sharedcounter - mutex-protected shared counter

USAGE:
    sharedcounter [command]

With no command, two goroutines each increment a shared counter 100000
times under a mutex and the final value is printed.

COMMANDS:
    version    Show version information
    help       Show this help message
`)
}
