package main

import (
	"flag"
	"os"

	"github.com/daviddao/weft/pkg/view"
)

// cmdShow folds every published slice into the materialized view and
// prints the report. By default it rebuilds from the slices and
// refreshes the view cache; --cached serves whatever the cache holds,
// which may lag behind recent publishes.
func (a *app) cmdShow(args []string) int {
	flags := flag.NewFlagSet("show", flag.ContinueOnError)
	cached := flags.Bool("cached", false, "serve the cached view without rebuilding")
	if err := flags.Parse(args); err != nil {
		return 1
	}

	var (
		d         view.Detailed
		err       error
		fromCache bool
	)
	if *cached {
		d, fromCache, err = view.Load(a.store)
	} else {
		d, err = view.Rebuild(a.store)
	}
	if err != nil {
		a.log.Error("show", "err", err)
		return 1
	}

	if !fromCache {
		// Cache refresh is best-effort; the view is already in hand.
		if data, encErr := view.EncodeDetailed(d); encErr == nil {
			if err := a.store.WriteCache(data); err != nil {
				a.log.Warn("show", "cache", err)
			}
		}
	}

	if err := view.Report(os.Stdout, d); err != nil {
		a.log.Error("show", "err", err)
		return 1
	}
	return 0
}
