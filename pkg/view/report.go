package view

import (
	"fmt"
	"io"
	"sort"

	"github.com/daviddao/weft/pkg/forum"
)

// errWriter latches the first write error and drops everything after it,
// so the report body can print without checking every line.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(p []byte) (int, error) {
	if ew.err != nil {
		return 0, ew.err
	}
	n, err := ew.w.Write(p)
	ew.err = err
	return n, err
}

// Report writes a human-readable dump of the view: every thread with its
// titles and net tag scores, followed by a depth-first walk of the reply
// tree via backrefs showing author, depth and all non-redacted content
// versions. Read-only and deterministic — all iteration is over sorted
// keys. Debugging surface, not an API.
func Report(w io.Writer, d Detailed) error {
	ew := &errWriter{w: w}
	for _, author := range sortedKeys(d.Threads) {
		byID := d.Threads[author]
		ids := make([]forum.LocalID, 0, len(byID))
		for id := range byID {
			ids = append(ids, id)
		}
		sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

		for _, id := range ids {
			reportThread(ew, d, author, id, byID[id])
		}
	}
	return ew.err
}

func reportThread(w io.Writer, d Detailed, author forum.ActorID, id forum.LocalID, th Thread) {
	fmt.Fprintf(w, "thread %s/%d\n", author, id)
	titles := make([]string, 0, len(th.Titles.Value))
	for t := range th.Titles.Value {
		titles = append(titles, t)
	}
	sort.Strings(titles)
	for _, t := range titles {
		fmt.Fprintf(w, "  title: %s\n", t)
	}

	// Net score per tag: positive votes minus negative votes, with
	// non-positive scores suppressed.
	for _, tag := range sortedKeys(th.Tags) {
		hist := th.Tags[tag].Aggregate(TagVoteStates)
		score := int64(hist[TagPositive]) - int64(hist[TagNegative])
		if score > 0 {
			fmt.Fprintf(w, "  tag: %s (%+d)\n", tag, score)
		}
	}
	fmt.Fprintln(w)

	seen := map[forum.MessageID]bool{}
	reportReplies(w, d, forum.MessageID{Actor: author, Local: id}, 0, seen)
}

// seen guards against reply cycles, which nothing structurally prevents a
// hostile slice from publishing.
func reportReplies(w io.Writer, d Detailed, at forum.MessageID, depth int, seen map[forum.MessageID]bool) {
	if seen[at] {
		return
	}
	seen[at] = true

	msg, ok := d.Messages[at.Actor][at.Local]
	if !ok {
		return
	}

	indent := ""
	for i := 0; i < depth; i++ {
		indent += "  "
	}
	fmt.Fprintf(w, "%s[%d] %s/%d\n", indent, depth, at.Actor, at.Local)

	versions := make([]uint64, 0, len(msg.Content))
	for v := range msg.Content {
		versions = append(versions, v)
	}
	sort.Slice(versions, func(i, j int) bool { return versions[i] < versions[j] })
	for _, v := range versions {
		if cell := msg.Content[v]; !cell.Redacted {
			fmt.Fprintf(w, "%s    v%d: %s\n", indent, v, cell.Value)
		}
	}

	children := make([]forum.MessageID, 0, len(msg.Backrefs))
	for child := range msg.Backrefs {
		children = append(children, child)
	}
	sort.Slice(children, func(i, j int) bool {
		if children[i].Actor != children[j].Actor {
			return children[i].Actor < children[j].Actor
		}
		return children[i].Local < children[j].Local
	})
	for _, child := range children {
		reportReplies(w, d, child, depth+1, seen)
	}
}

func sortedKeys[K ~string, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
