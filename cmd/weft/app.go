package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/charmbracelet/log"

	"github.com/daviddao/weft/pkg/forum"
	"github.com/daviddao/weft/pkg/store"
)

// config is the environment-driven configuration. Flags override it
// per invocation.
type config struct {
	DB     string `env:"WEFT_DB" envDefault:"weft.db"`
	Actor  string `env:"WEFT_ACTOR"`
	Device uint16 `env:"WEFT_DEVICE" envDefault:"0"`
}

// app holds shared state for all CLI subcommands.
type app struct {
	store store.Substrate
	cfg   config
	log   *log.Logger
}

// newApp parses the environment and opens the database.
func newApp() (*app, error) {
	cfg, err := env.ParseAs[config]()
	if err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	s, err := store.New(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("cannot open database %q: %w", cfg.DB, err)
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
		Prefix:          "weft",
	})
	return &app{store: s, cfg: cfg, log: logger}, nil
}

// Close releases the database connection.
func (a *app) Close() { _ = a.store.Close() }

// resolveActor returns the actor ID from the flag (if non-empty), falling
// back to the WEFT_ACTOR environment variable.
func (a *app) resolveActor(flagVal string) (string, error) {
	if flagVal != "" {
		return flagVal, nil
	}
	if a.cfg.Actor != "" {
		return a.cfg.Actor, nil
	}
	return "", fmt.Errorf("no actor ID: pass --actor or set WEFT_ACTOR (run 'weft init' to mint one)")
}

// resolveDevice returns the device from the flag. The sentinel -1 means
// "keep the WEFT_DEVICE value".
func (a *app) resolveDevice(flagVal int) (forum.DeviceID, error) {
	if flagVal < 0 {
		return forum.DeviceID(a.cfg.Device), nil
	}
	if flagVal > int(^uint16(0)) {
		return 0, fmt.Errorf("device %d out of range (max %d)", flagVal, ^uint16(0))
	}
	return forum.DeviceID(flagVal), nil
}

// workspace is one actor's slice checked out for mutation from one
// device. Mutate through sess, then publish.
type workspace struct {
	actor string
	slice forum.Slice
	sess  *forum.Session
}

// open loads the actor's published slice (bottom if never published) and
// binds a session to it.
func (a *app) open(actorFlag string, deviceFlag int) (*workspace, error) {
	actor, err := a.resolveActor(actorFlag)
	if err != nil {
		return nil, err
	}
	device, err := a.resolveDevice(deviceFlag)
	if err != nil {
		return nil, err
	}

	ws := &workspace{actor: actor}
	payload, err := a.store.ReadSlice(actor)
	if err != nil {
		return nil, fmt.Errorf("read slice for %s: %w", actor, err)
	}
	if payload != nil {
		if ws.slice, err = forum.DecodeSlice(payload); err != nil {
			return nil, fmt.Errorf("decode slice for %s: %w", actor, err)
		}
	}
	ws.sess = forum.NewSession(&ws.slice, forum.ActorID(actor), device)
	return ws, nil
}

// publish writes the workspace's full slice back to the substrate.
// Always the complete snapshot, never a diff — republishing is always
// safe because readers join.
func (a *app) publish(ws *workspace) error {
	data, err := forum.EncodeSlice(ws.slice)
	if err != nil {
		return fmt.Errorf("encode slice for %s: %w", ws.actor, err)
	}
	if err := a.store.WriteSlice(ws.actor, data); err != nil {
		return fmt.Errorf("publish slice for %s: %w", ws.actor, err)
	}
	return nil
}

// parseMessageID parses the CLI message addressing form "actor/local".
func parseMessageID(s string) (forum.MessageID, error) {
	idx := strings.LastIndex(s, "/")
	if idx <= 0 || idx == len(s)-1 {
		return forum.MessageID{}, fmt.Errorf("bad message ID %q: want actor/local", s)
	}
	local, err := strconv.ParseUint(s[idx+1:], 10, 64)
	if err != nil {
		return forum.MessageID{}, fmt.Errorf("bad message ID %q: %w", s, err)
	}
	return forum.MessageID{Actor: forum.ActorID(s[:idx]), Local: forum.LocalID(local)}, nil
}

// formatMessageID renders the CLI addressing form "actor/local".
func formatMessageID(id forum.MessageID) string {
	return fmt.Sprintf("%s/%d", id.Actor, id.Local)
}

// splitTags splits a comma-separated tag list, dropping empty entries.
func splitTags(s string) []forum.Tag {
	if s == "" {
		return nil
	}
	var tags []forum.Tag
	for _, t := range strings.Split(s, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, forum.Tag(t))
		}
	}
	return tags
}

// printJSON writes v to stdout as indented JSON.
func printJSON(v interface{}) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}
