package pure

var _ Store[any] = &Trie[any]{}

// Trie stores values along the path of their key components, one hash map
// per level, rooted by identity. Lookups are amortized constant per
// component. Not safe for concurrent use.
type Trie[O any] struct {
	roots map[Identity]*trieNode[O]
	size  int
}

type trieNode[O any] struct {
	children map[ComparableOrString]*trieNode[O]
	value    O
	ok       bool
}

func NewTrie[O any]() *Trie[O] {
	return &Trie[O]{roots: make(map[Identity]*trieNode[O])}
}

func (t *Trie[O]) Load(identity Identity, keys Key) (O, bool) {
	mustNotBeEmpty(keys)
	var zero O

	node, ok := t.roots[identity]
	if !ok {
		return zero, false
	}
	for _, k := range keys {
		if node, ok = node.children[k]; !ok {
			return zero, false
		}
	}
	if !node.ok {
		return zero, false
	}
	return node.value, true
}

// Store writes value at keys, replacing any previous value.
func (t *Trie[O]) Store(identity Identity, keys Key, value O) {
	mustNotBeEmpty(keys)

	node, ok := t.roots[identity]
	if !ok {
		node = &trieNode[O]{}
		t.roots[identity] = node
	}
	for _, k := range keys {
		next, ok := node.children[k]
		if !ok {
			if node.children == nil {
				node.children = make(map[ComparableOrString]*trieNode[O])
			}
			next = &trieNode[O]{}
			node.children[k] = next
		}
		node = next
	}
	if !node.ok {
		t.size++
	}
	node.value, node.ok = value, true
}

func (t *Trie[O]) Len() int {
	return t.size
}
