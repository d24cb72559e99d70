// Command weft is the forum CLI — a leaderless threaded discussion where
// every actor publishes an append-only slice and every reader folds all
// slices into the same view, in any order.
package main

import (
	"fmt"
	"os"
)

const version = "1.0.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "--help", "-h", "help":
		printUsage()
		return
	case "--version", "-v", "version":
		fmt.Println("weft", version)
		return
	}

	a, err := newApp()
	if err != nil {
		fatal("%v", err)
	}
	defer a.Close()

	switch os.Args[1] {
	// Setup
	case "init":
		os.Exit(a.cmdInit(os.Args[2:]))

	// Authoring
	case "post":
		os.Exit(a.cmdPost(os.Args[2:]))
	case "reply":
		os.Exit(a.cmdReply(os.Args[2:]))
	case "edit":
		os.Exit(a.cmdEdit(os.Args[2:]))
	case "redact":
		os.Exit(a.cmdRedact(os.Args[2:]))

	// Opinions
	case "react":
		os.Exit(a.cmdReact(os.Args[2:]))
	case "tag":
		os.Exit(a.cmdTag(os.Args[2:]))

	// Reading
	case "show":
		os.Exit(a.cmdShow(os.Args[2:]))
	case "actors":
		os.Exit(a.cmdActors(os.Args[2:]))

	default:
		fmt.Fprintf(os.Stderr, "weft: unknown command %q\n", os.Args[1])
		fmt.Fprintln(os.Stderr, "Run 'weft --help' for usage.")
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Print(`weft — leaderless threaded discussions over a shared database

Each actor owns an append-only slice of the forum; anyone can read every
slice and fold them into the same view, in any order, any number of times.
No coordinator, no merge conflicts.

Usage:
  weft <command> [flags]

Setup:
  init                        Mint a new actor identity

Authoring (writes your own slice only):
  post <title> <body>         Open a thread (--tags a,b for initial tags)
  reply <id> <body>           Reply to a message
  edit <id> <body>            Append a new content version to your message
  redact <id> <version>       Tombstone one content version of your message

Opinions (recorded in your slice, attributed to you on read):
  react <id> <reaction>       Set a reaction (--off to retract)
  tag <id> --add a,b          Vote tags up or down (--remove c,d)

Reading:
  show                        Fold every slice and print the threads
  actors                      List actors with published slices

Message IDs are actor/local, e.g. alice/65536. You can only edit and
redact your own messages; reactions and tags can target anyone's.

Environment:
  WEFT_DB       SQLite database path (default: weft.db)
  WEFT_ACTOR    Default actor ID (avoids passing --actor every time)
  WEFT_DEVICE   Default device number (default: 0)

All commands support --json for machine-readable output.
All commands support --actor <id> to override WEFT_ACTOR.

Exit codes:
  0  success
  1  error
`)
}

func fatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "weft: "+format+"\n", args...)
	os.Exit(1)
}
