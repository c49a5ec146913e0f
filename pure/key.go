package pure

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
)

// Identity names one memoized function. Two functions sharing a table must
// use distinct identities or their entries collide.
type Identity string

type ComparableOrStringer any
type ComparableOrString any

// Key is the argument tuple of one memoized call.
type Key []ComparableOrString

var ErrEmptyKey = errors.New("empty key")

// KeyOf builds the key of a call from its arguments.
// A fmt.Stringer is keyed by its String() so that non-comparable values
// can still be memoized; any other argument must be comparable.
func KeyOf(args ...ComparableOrStringer) Key {
	keys := make(Key, len(args))
	for i, arg := range args {
		keys[i] = tableKey(arg)
	}
	return keys
}

func tableKey(i ComparableOrStringer) ComparableOrString {
	if stringer, ok := i.(fmt.Stringer); ok {
		return stringer.String()
	}
	return i
}

// encode flattens an identity and a key into bytes. Every field is written
// as its decimal length, ':' and its bytes, so no field can pose as several.
// A component is its dynamic type followed by its Go-syntax value, which
// keeps 1, "1" and struct fields holding either apart. Pointers are keyed by
// address, as map keys are.
func encode(identity Identity, key Key) []byte {
	buf := make([]byte, 0, len(identity)+16*len(key)+4)
	buf = appendField(buf, string(identity))
	for _, k := range key {
		buf = appendField(buf, fmt.Sprintf("%T", k))
		buf = appendField(buf, formatComponent(k))
	}
	return buf
}

func formatComponent(k ComparableOrString) string {
	if k != nil && reflect.TypeOf(k).Kind() == reflect.Pointer {
		return fmt.Sprintf("%p", k)
	}
	return fmt.Sprintf("%#v", k)
}

func appendField(buf []byte, field string) []byte {
	buf = strconv.AppendInt(buf, int64(len(field)), 10)
	buf = append(buf, ':')
	return append(buf, field...)
}

func mustNotBeEmpty(key Key) {
	if len(key) == 0 {
		panic(ErrEmptyKey)
	}
}
