package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
)

func (a *app) cmdRedact(args []string) int {
	flags := flag.NewFlagSet("redact", flag.ContinueOnError)
	actor := flags.String("actor", "", "author actor ID")
	device := flags.Int("device", -1, "device number (-1 = WEFT_DEVICE)")
	jsonOut := flags.Bool("json", false, "JSON output")
	if err := flags.Parse(args); err != nil {
		return 1
	}
	if flags.NArg() < 2 {
		fmt.Fprintln(os.Stderr, "usage: weft redact <id> <version> [--actor ID]")
		return 1
	}

	mid, err := parseMessageID(flags.Arg(0))
	if err != nil {
		a.log.Error("redact", "err", err)
		return 1
	}
	version, err := strconv.ParseUint(flags.Arg(1), 10, 64)
	if err != nil {
		a.log.Error("redact", "err", fmt.Errorf("bad version %q: %w", flags.Arg(1), err))
		return 1
	}

	ws, err := a.open(*actor, *device)
	if err != nil {
		a.log.Error("redact", "err", err)
		return 1
	}
	if string(mid.Actor) != ws.actor {
		a.log.Error("redact", "err", fmt.Sprintf("%s belongs to %s, not you", formatMessageID(mid), mid.Actor))
		return 1
	}

	// The tombstone is permanent: it dominates any live value for this
	// version, on every replica, forever.
	ws.sess.Redact(mid.Local, version)

	if err := a.publish(ws); err != nil {
		a.log.Error("redact", "err", err)
		return 1
	}

	if *jsonOut {
		printJSON(map[string]interface{}{"id": formatMessageID(mid), "version": version})
	} else {
		fmt.Printf("redacted %s v%d\n", formatMessageID(mid), version)
	}
	return 0
}
