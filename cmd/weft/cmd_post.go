package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
)

func (a *app) cmdPost(args []string) int {
	flags := flag.NewFlagSet("post", flag.ContinueOnError)
	actor := flags.String("actor", "", "author actor ID")
	device := flags.Int("device", -1, "device number (-1 = WEFT_DEVICE)")
	tags := flags.String("tags", "", "comma-separated initial tags")
	jsonOut := flags.Bool("json", false, "JSON output")
	if err := flags.Parse(args); err != nil {
		return 1
	}
	if flags.NArg() < 2 {
		fmt.Fprintln(os.Stderr, "usage: weft post <title> <body> [--tags a,b] [--actor ID]")
		return 1
	}

	ws, err := a.open(*actor, *device)
	if err != nil {
		a.log.Error("post", "err", err)
		return 1
	}

	title := flags.Arg(0)
	body := strings.Join(flags.Args()[1:], " ")
	mid := ws.sess.NewThread(title, body, splitTags(*tags))

	if err := a.publish(ws); err != nil {
		a.log.Error("post", "err", err)
		return 1
	}

	if *jsonOut {
		printJSON(map[string]interface{}{"id": formatMessageID(mid), "title": title})
	} else {
		fmt.Printf("posted %s\n", formatMessageID(mid))
	}
	return 0
}
