package main

import (
	"fmt"
	"log"

	"github.com/sugawarayuuta/sonnet"

	dict "github.com/DmytroBondariev/custom-dict"
)

const seedDocument = `{
	"host": "localhost",
	"port": 6379,
	"timeout_ms": 250,
	"verbose": true
}`

func main() {
	// Seed the dictionary from a JSON document.
	var seed map[string]any
	if err := sonnet.Unmarshal([]byte(seedDocument), &seed); err != nil {
		log.Fatalf("Failed to decode seed document: %v", err)
	}

	entries := make(map[any]any, len(seed))
	for k, v := range seed {
		entries[k] = v
	}

	d, err := dict.NewWith(8, 2.0/3.0, entries)
	if err != nil {
		log.Fatalf("Failed to build dictionary: %v", err)
	}
	fmt.Printf("Seeded %d entries, capacity %d\n", d.Len(), d.Cap())

	// Insert some more data.
	for i := 0; i < 10; i++ {
		d.Set(fmt.Sprintf("worker-%d", i), i*100)
	}
	fmt.Printf("After inserts: %d entries, capacity %d\n", d.Len(), d.Cap())

	// Retrieve a few values, including a miss.
	for _, key := range []any{"host", "worker-4", "worker-99"} {
		value, err := d.Get(key)
		if err != nil {
			fmt.Printf("%v not found\n", key)
			continue
		}
		fmt.Printf("%v => %v\n", key, value)
	}

	// Keys of different types never collide into one entry.
	d.Set(10, "integer ten")
	d.Set(10.0, "float ten")
	intVal, _ := d.Get(10)
	floatVal, _ := d.Get(10.0)
	fmt.Printf("10 => %v, 10.0 => %v\n", intVal, floatVal)

	// Update a value in place.
	d.Set("host", "0.0.0.0")
	host, _ := d.Get("host")
	fmt.Printf("Updated host => %v\n", host)

	// Delete until the table shrinks.
	for i := 0; i < 10; i++ {
		if err := d.Delete(fmt.Sprintf("worker-%d", i)); err != nil {
			log.Fatalf("Failed to delete worker-%d: %v", i, err)
		}
	}
	fmt.Printf("After deletes: %d entries, capacity %d\n", d.Len(), d.Cap())

	// Walk what is left.
	d.Range(func(key, value any) bool {
		fmt.Printf("  %v: %v\n", key, value)
		return true
	})

	fmt.Println("Example completed successfully")
}
