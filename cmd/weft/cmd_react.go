package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/daviddao/weft/pkg/forum"
)

func (a *app) cmdReact(args []string) int {
	flags := flag.NewFlagSet("react", flag.ContinueOnError)
	actor := flags.String("actor", "", "reacting actor ID")
	device := flags.Int("device", -1, "device number (-1 = WEFT_DEVICE)")
	off := flags.Bool("off", false, "retract the reaction instead of setting it")
	jsonOut := flags.Bool("json", false, "JSON output")
	if err := flags.Parse(args); err != nil {
		return 1
	}
	if flags.NArg() < 2 {
		fmt.Fprintln(os.Stderr, "usage: weft react <id> <reaction> [--off] [--actor ID]")
		return 1
	}

	target, err := parseMessageID(flags.Arg(0))
	if err != nil {
		a.log.Error("react", "err", err)
		return 1
	}

	ws, err := a.open(*actor, *device)
	if err != nil {
		a.log.Error("react", "err", err)
		return 1
	}

	reaction := forum.Reaction(flags.Arg(1))
	// Idempotent: reacting the same way twice publishes the same slice.
	ws.sess.React(target, reaction, !*off)

	if err := a.publish(ws); err != nil {
		a.log.Error("react", "err", err)
		return 1
	}

	if *jsonOut {
		printJSON(map[string]interface{}{
			"id": formatMessageID(target), "reaction": string(reaction), "on": !*off,
		})
	} else if *off {
		fmt.Printf("retracted %s on %s\n", reaction, formatMessageID(target))
	} else {
		fmt.Printf("reacted %s on %s\n", reaction, formatMessageID(target))
	}
	return 0
}
