package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
)

func (a *app) cmdReply(args []string) int {
	flags := flag.NewFlagSet("reply", flag.ContinueOnError)
	actor := flags.String("actor", "", "author actor ID")
	device := flags.Int("device", -1, "device number (-1 = WEFT_DEVICE)")
	jsonOut := flags.Bool("json", false, "JSON output")
	if err := flags.Parse(args); err != nil {
		return 1
	}
	if flags.NArg() < 2 {
		fmt.Fprintln(os.Stderr, "usage: weft reply <id> <body> [--actor ID]")
		return 1
	}

	parent, err := parseMessageID(flags.Arg(0))
	if err != nil {
		a.log.Error("reply", "err", err)
		return 1
	}

	ws, err := a.open(*actor, *device)
	if err != nil {
		a.log.Error("reply", "err", err)
		return 1
	}

	body := strings.Join(flags.Args()[1:], " ")
	mid := ws.sess.Reply(parent, body)

	if err := a.publish(ws); err != nil {
		a.log.Error("reply", "err", err)
		return 1
	}

	if *jsonOut {
		printJSON(map[string]interface{}{
			"id": formatMessageID(mid), "parent": formatMessageID(parent),
		})
	} else {
		fmt.Printf("replied %s -> %s\n", formatMessageID(mid), formatMessageID(parent))
	}
	return 0
}
