package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
)

func (a *app) cmdEdit(args []string) int {
	flags := flag.NewFlagSet("edit", flag.ContinueOnError)
	actor := flags.String("actor", "", "author actor ID")
	device := flags.Int("device", -1, "device number (-1 = WEFT_DEVICE)")
	jsonOut := flags.Bool("json", false, "JSON output")
	if err := flags.Parse(args); err != nil {
		return 1
	}
	if flags.NArg() < 2 {
		fmt.Fprintln(os.Stderr, "usage: weft edit <id> <body> [--actor ID]")
		return 1
	}

	mid, err := parseMessageID(flags.Arg(0))
	if err != nil {
		a.log.Error("edit", "err", err)
		return 1
	}

	ws, err := a.open(*actor, *device)
	if err != nil {
		a.log.Error("edit", "err", err)
		return 1
	}
	// Only the owner's slice holds the message; editing someone else's is
	// structurally impossible, so catch the mistake before it becomes a
	// phantom message in the caller's own slice.
	if string(mid.Actor) != ws.actor {
		a.log.Error("edit", "err", fmt.Sprintf("%s belongs to %s, not you", formatMessageID(mid), mid.Actor))
		return 1
	}

	body := strings.Join(flags.Args()[1:], " ")
	version := ws.sess.Edit(mid.Local, body)

	if err := a.publish(ws); err != nil {
		a.log.Error("edit", "err", err)
		return 1
	}

	if *jsonOut {
		printJSON(map[string]interface{}{"id": formatMessageID(mid), "version": version})
	} else {
		fmt.Printf("edited %s at v%d\n", formatMessageID(mid), version)
	}
	return 0
}
