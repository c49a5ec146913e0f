package pure

import (
	iradix "github.com/hashicorp/go-immutable-radix"
)

var _ Store[any] = &RadixStore[any]{}

// RadixStore keeps entries in an immutable radix tree ordered by their
// encoded key, so lookups cost O(key length) independent of the number of
// entries.
type RadixStore[O any] struct {
	tree *iradix.Tree
}

func NewRadixStore[O any]() *RadixStore[O] {
	return &RadixStore[O]{tree: iradix.New()}
}

func (r *RadixStore[O]) Load(identity Identity, keys Key) (O, bool) {
	mustNotBeEmpty(keys)
	raw, ok := r.tree.Get(encode(identity, keys))
	if !ok {
		var zero O
		return zero, false
	}
	v, _ := raw.(O)
	return v, true
}

func (r *RadixStore[O]) Store(identity Identity, keys Key, value O) {
	mustNotBeEmpty(keys)
	r.tree, _, _ = r.tree.Insert(encode(identity, keys), value)
}

func (r *RadixStore[O]) Len() int {
	return r.tree.Len()
}

// Walk visits the entries of identity in encoded-key order until fn returns
// false. The order is bytewise over the encoding, not the natural order of
// the key components.
func (r *RadixStore[O]) Walk(identity Identity, fn func(value O) bool) {
	prefix := appendField(nil, string(identity))
	r.tree.Root().WalkPrefix(prefix, func(_ []byte, v interface{}) bool {
		value, _ := v.(O)
		return !fn(value)
	})
}
