package main

import (
	"flag"
	"fmt"
)

// cmdActors lists every actor with a published slice, plus the digest of
// their current snapshot. Two replicas showing the same digest for an
// actor hold identical bytes for that actor.
func (a *app) cmdActors(args []string) int {
	flags := flag.NewFlagSet("actors", flag.ContinueOnError)
	jsonOut := flags.Bool("json", false, "JSON output")
	if err := flags.Parse(args); err != nil {
		return 1
	}

	actors, err := a.store.ListActors()
	if err != nil {
		a.log.Error("actors", "err", err)
		return 1
	}

	type entry struct {
		Actor  string `json:"actor"`
		Digest string `json:"digest"`
	}
	entries := make([]entry, 0, len(actors))
	for _, id := range actors {
		digest, err := a.store.SliceDigest(id)
		if err != nil {
			a.log.Error("actors", "err", err)
			return 1
		}
		entries = append(entries, entry{Actor: id, Digest: digest})
	}

	if *jsonOut {
		printJSON(entries)
		return 0
	}
	if len(entries) == 0 {
		fmt.Println("no published slices")
		return 0
	}
	for _, e := range entries {
		short := e.Digest
		if len(short) > 12 {
			short = short[:12]
		}
		fmt.Printf("%-40s %s\n", e.Actor, short)
	}
	return 0
}
