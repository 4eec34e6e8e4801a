/*
Package dict provides an in-memory associative container built on an array of
variable-length collision chains with bucket-level linear probing.

Dict maps arbitrary comparable keys to arbitrary values. Keys of different
dynamic types are always distinct entries, even when they compare equal by
value and hash identically — int(10) and float64(10.0) can coexist.

Basic usage:

	import dict "github.com/DmytroBondariev/custom-dict"

	d := dict.New()
	d.Set("alpha", 1)
	d.Set(42, "beta")

	v, err := d.Get("alpha")
	if err != nil {
		// errors.Is(err, dict.ErrKeyNotFound)
	}
	fmt.Println(v, d.Len())

	d.Range(func(key, value any) bool {
		fmt.Println(key, value)
		return true
	})

Features:

  - Heterogeneous key space: strings, booleans, all integer and float types,
    complex numbers, and any comparable type implementing Hashable
  - Buckets chain near collisions; the probe spills to neighboring buckets
    once a bucket is occupied by non-matching keys
  - Automatic growth when the load factor is reached, automatic halving when
    occupancy falls below a quarter of capacity
  - Batch construction pre-sizes capacity once for the whole initial mapping
  - xxHash for string and non-integral numeric keys

Implementation Details:

The table is a slice of buckets, each bucket an ordered slice of
(key, value, hash) entries. A key's probe starts at hash mod capacity; a
non-empty bucket whose entries all fail to match advances the probe to the
next index, and an empty bucket is where a new key is placed. Growth and
shrink search for the target capacity by repeated doubling or halving, and a
resize stages the complete new bucket array before swapping it in.

Dict is not safe for concurrent use; callers must serialize access.
*/
package dict
