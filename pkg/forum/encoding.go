package forum

import (
	"fmt"

	"github.com/daviddao/weft/pkg/lattice"
)

// EncodeSlice serializes a full slice snapshot with the deterministic
// tag-indexed encoding. Actors must always publish the whole accumulated
// slice: the substrate is last-write-wins per actor, which is only safe
// because a full snapshot can never lose a prior publish.
func EncodeSlice(s Slice) ([]byte, error) {
	data, err := lattice.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("encode slice: %w", err)
	}
	return data, nil
}

// DecodeSlice decodes a published slice snapshot. Malformed bytes are a
// hard failure: merge correctness assumes every published slice is
// well-formed, so nothing is salvaged from a partial decode.
func DecodeSlice(data []byte) (Slice, error) {
	var s Slice
	if err := lattice.Unmarshal(data, &s); err != nil {
		return Slice{}, fmt.Errorf("decode slice: %w", err)
	}
	return s, nil
}
