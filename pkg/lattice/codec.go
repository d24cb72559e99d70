// codec.go pins the wire representation of lattice containers.
//
// Every persisted entity uses deterministic CBOR (RFC 8949 core
// deterministic profile) with integer-keyed struct fields, so equal values
// always encode to equal bytes and fields added later do not break older
// readers. Sets encode as sorted arrays of element encodings; maps encode
// as key-sorted arrays of [key, value] pairs, which sidesteps CBOR map-key
// restrictions for composite keys. Decoding malformed bytes is a hard
// failure — there is no lenient mode, because merge correctness assumes
// every published payload is well-formed.
package lattice

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/fxamacker/cbor/v2"
)

var (
	encMode cbor.EncMode
	decMode cbor.DecMode
)

func init() {
	em, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("lattice: encode mode: %v", err))
	}
	encMode = em

	dm, err := cbor.DecOptions{
		DupMapKey:   cbor.DupMapKeyEnforcedAPF,
		IndefLength: cbor.IndefLengthForbidden,
	}.DecMode()
	if err != nil {
		panic(fmt.Sprintf("lattice: decode mode: %v", err))
	}
	decMode = dm
}

// Marshal encodes v with the deterministic encoding mode shared by all
// persisted lattice state.
func Marshal(v any) ([]byte, error) { return encMode.Marshal(v) }

// Unmarshal decodes strictly; any malformed input is an error.
func Unmarshal(data []byte, v any) error { return decMode.Unmarshal(data, v) }

// MarshalCBOR encodes the set as a sorted array of element encodings.
func (s GSet[T]) MarshalCBOR() ([]byte, error) {
	items := make([]cbor.RawMessage, 0, len(s))
	for e := range s {
		b, err := encMode.Marshal(e)
		if err != nil {
			return nil, fmt.Errorf("set element: %w", err)
		}
		items = append(items, b)
	}
	sort.Slice(items, func(i, j int) bool {
		return bytes.Compare(items[i], items[j]) < 0
	})
	return encMode.Marshal(items)
}

// UnmarshalCBOR decodes an array of elements; duplicates collapse.
func (s *GSet[T]) UnmarshalCBOR(data []byte) error {
	var items []T
	if err := decMode.Unmarshal(data, &items); err != nil {
		return err
	}
	out := make(GSet[T], len(items))
	for _, e := range items {
		out[e] = struct{}{}
	}
	*s = out
	return nil
}

// MarshalCBOR encodes the map as a key-sorted array of [key, value] pairs.
func (m GMap[K, V]) MarshalCBOR() ([]byte, error) {
	pairs := make([][2]cbor.RawMessage, 0, len(m))
	for k, v := range m {
		kb, err := encMode.Marshal(k)
		if err != nil {
			return nil, fmt.Errorf("map key: %w", err)
		}
		vb, err := encMode.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("map value: %w", err)
		}
		pairs = append(pairs, [2]cbor.RawMessage{kb, vb})
	}
	sort.Slice(pairs, func(i, j int) bool {
		return bytes.Compare(pairs[i][0], pairs[j][0]) < 0
	})
	return encMode.Marshal(pairs)
}

// UnmarshalCBOR decodes an array of [key, value] pairs. Repeated keys join
// value-wise rather than overwriting, so re-decoding merged payloads stays
// lossless.
func (m *GMap[K, V]) UnmarshalCBOR(data []byte) error {
	var pairs [][2]cbor.RawMessage
	if err := decMode.Unmarshal(data, &pairs); err != nil {
		return err
	}
	out := make(GMap[K, V], len(pairs))
	for i, p := range pairs {
		var k K
		if err := decMode.Unmarshal(p[0], &k); err != nil {
			return fmt.Errorf("map pair %d key: %w", i, err)
		}
		var v V
		if err := decMode.Unmarshal(p[1], &v); err != nil {
			return fmt.Errorf("map pair %d value: %w", i, err)
		}
		out = out.Upsert(k, v)
	}
	*m = out
	return nil
}
