package pure

// Store is the backing structure of a Table.
// Implementations must treat equal keys under the same identity as the same
// entry and keys under different identities as different entries.
type Store[O any] interface {
	Load(identity Identity, keys Key) (O, bool)
	Store(identity Identity, keys Key, value O)
	Len() int
}
