package main

import (
	"flag"
	"fmt"
	"os"
)

func (a *app) cmdTag(args []string) int {
	flags := flag.NewFlagSet("tag", flag.ContinueOnError)
	actor := flags.String("actor", "", "voting actor ID")
	device := flags.Int("device", -1, "device number (-1 = WEFT_DEVICE)")
	add := flags.String("add", "", "comma-separated tags to vote up")
	remove := flags.String("remove", "", "comma-separated tags to vote down")
	jsonOut := flags.Bool("json", false, "JSON output")
	if err := flags.Parse(args); err != nil {
		return 1
	}
	if flags.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "usage: weft tag <id> [--add a,b] [--remove c,d] [--actor ID]")
		return 1
	}

	addTags, removeTags := splitTags(*add), splitTags(*remove)
	if len(addTags) == 0 && len(removeTags) == 0 {
		fmt.Fprintln(os.Stderr, "weft: tag: nothing to do (pass --add and/or --remove)")
		return 1
	}

	target, err := parseMessageID(flags.Arg(0))
	if err != nil {
		a.log.Error("tag", "err", err)
		return 1
	}

	ws, err := a.open(*actor, *device)
	if err != nil {
		a.log.Error("tag", "err", err)
		return 1
	}

	ws.sess.AdjustTags(target, addTags, removeTags)

	if err := a.publish(ws); err != nil {
		a.log.Error("tag", "err", err)
		return 1
	}

	if *jsonOut {
		printJSON(map[string]interface{}{
			"id": formatMessageID(target), "added": len(addTags), "removed": len(removeTags),
		})
	} else {
		fmt.Printf("tagged %s (+%d -%d)\n", formatMessageID(target), len(addTags), len(removeTags))
	}
	return 0
}
