package dict

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Hashable admits caller-defined key types into the key space. Implementations
// must be comparable with == and must return equal hash codes for keys that
// compare equal.
type Hashable interface {
	HashCode() uint64
}

// hashKey maps a key to a 64-bit hash. Numeric keys hash by value rather than
// by representation, so an integer and a float holding the same integral
// value collide by hash — interface equality still keeps them distinct
// entries. Reports false for types outside the key space.
func hashKey(key any) (uint64, bool) {
	switch k := key.(type) {
	case string:
		return xxhash.Sum64String(k), true
	case bool:
		if k {
			return 1, true
		}
		return 0, true
	case int:
		return uint64(k), true
	case int8:
		return uint64(k), true
	case int16:
		return uint64(k), true
	case int32:
		return uint64(k), true
	case int64:
		return uint64(k), true
	case uint:
		return uint64(k), true
	case uint8:
		return uint64(k), true
	case uint16:
		return uint64(k), true
	case uint32:
		return uint64(k), true
	case uint64:
		return k, true
	case float32:
		return floatHash(float64(k)), true
	case float64:
		return floatHash(k), true
	case complex64:
		return complexHash(complex128(k)), true
	case complex128:
		return complexHash(k), true
	default:
		if h, ok := key.(Hashable); ok {
			return h.HashCode(), true
		}
		return 0, false
	}
}

// mustHash is the Set/resize entry point: an unhashable key panics, like the
// builtin map.
func mustHash(key any) uint64 {
	h, ok := hashKey(key)
	if !ok {
		panic(fmt.Sprintf("dict: unhashable key type %T", key))
	}
	return h
}

// floatHash hashes an integral float as the integer it holds and any other
// float (NaN included) by its IEEE-754 bits.
func floatHash(f float64) uint64 {
	if f == math.Trunc(f) && math.Abs(f) < 1<<63 {
		return uint64(int64(f))
	}
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], math.Float64bits(f))
	return xxhash.Sum64(buf[:])
}

// complexHash treats a real-valued complex like its real part, matching the
// numeric unification floatHash applies.
func complexHash(c complex128) uint64 {
	if imag(c) == 0 {
		return floatHash(real(c))
	}
	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[:8], math.Float64bits(real(c)))
	binary.LittleEndian.PutUint64(buf[8:], math.Float64bits(imag(c)))
	return xxhash.Sum64(buf[:])
}
