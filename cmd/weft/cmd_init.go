package main

import (
	"flag"
	"fmt"

	"github.com/google/uuid"
)

// cmdInit mints a fresh actor identity. The identity is just a unique
// string — nothing registers it anywhere; an actor exists from the
// moment it first publishes a slice.
func (a *app) cmdInit(args []string) int {
	flags := flag.NewFlagSet("init", flag.ContinueOnError)
	jsonOut := flags.Bool("json", false, "JSON output")
	if err := flags.Parse(args); err != nil {
		return 1
	}

	actor := uuid.NewString()

	if *jsonOut {
		printJSON(map[string]interface{}{"actor": actor, "db": a.cfg.DB})
		return 0
	}
	fmt.Printf("minted actor %s\n\n", actor)
	fmt.Println("To use it by default:")
	fmt.Printf("  export WEFT_ACTOR=%s\n", actor)
	return 0
}
