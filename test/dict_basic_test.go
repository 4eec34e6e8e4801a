package dict_test

import (
	"errors"
	"fmt"
	"testing"

	dict "github.com/DmytroBondariev/custom-dict"
)

func TestBasicOperations(t *testing.T) {
	d := dict.New()

	for i := 0; i < 10; i++ {
		d.Set(fmt.Sprintf("key-%d", i), i*100)
	}

	if d.Len() != 10 {
		t.Fatalf("Expected 10 entries, got %d", d.Len())
	}

	for i := 0; i < 10; i++ {
		value, err := d.Get(fmt.Sprintf("key-%d", i))
		if err != nil {
			t.Fatalf("Key key-%d not found: %v", i, err)
		}
		if value != i*100 {
			t.Errorf("Value mismatch for key-%d: expected %d, got %v", i, i*100, value)
		}
	}
}

func TestMissingKey(t *testing.T) {
	d := dict.New()
	d.Set("present", 1)

	_, err := d.Get("absent")
	if err == nil {
		t.Fatal("Expected error for absent key, got nil")
	}
	if !errors.Is(err, dict.ErrKeyNotFound) {
		t.Errorf("Expected ErrKeyNotFound, got %v", err)
	}

	if d.Contains("absent") {
		t.Error("Contains reported true for absent key")
	}
	if !d.Contains("present") {
		t.Error("Contains reported false for present key")
	}
}

// TestOverwrite checks that setting an existing key replaces the value
// without growing the entry count.
func TestOverwrite(t *testing.T) {
	d := dict.New()

	d.Set("answer", 41)
	d.Set("answer", 42)

	if d.Len() != 1 {
		t.Fatalf("Expected 1 entry after overwrite, got %d", d.Len())
	}

	value, err := d.Get("answer")
	if err != nil {
		t.Fatalf("Key not found after overwrite: %v", err)
	}
	if value != 42 {
		t.Errorf("Expected updated value 42, got %v", value)
	}
}

func TestDelete(t *testing.T) {
	d := dict.New()
	d.Set("a", 1)
	d.Set("b", 2)

	if err := d.Delete("a"); err != nil {
		t.Fatalf("Failed to delete existing key: %v", err)
	}
	if d.Len() != 1 {
		t.Fatalf("Expected 1 entry after delete, got %d", d.Len())
	}
	if d.Contains("a") {
		t.Error("Deleted key still reported present")
	}
	if !d.Contains("b") {
		t.Error("Unrelated key lost by delete")
	}
}

func TestMixedKeyTypes(t *testing.T) {
	d := dict.New()

	d.Set("name", "string key")
	d.Set(7, "int key")
	d.Set(int64(7), "int64 key")
	d.Set(true, "bool key")
	d.Set(2.5, "float key")

	if d.Len() != 5 {
		t.Fatalf("Expected 5 entries, got %d", d.Len())
	}

	checks := []struct {
		key  any
		want string
	}{
		{"name", "string key"},
		{7, "int key"},
		{int64(7), "int64 key"},
		{true, "bool key"},
		{2.5, "float key"},
	}
	for _, c := range checks {
		value, err := d.Get(c.key)
		if err != nil {
			t.Fatalf("Key %v (%T) not found: %v", c.key, c.key, err)
		}
		if value != c.want {
			t.Errorf("Key %v (%T): expected %q, got %v", c.key, c.key, c.want, value)
		}
	}
}

// TestLastWriteWins exercises interleaved overwrites across enough keys to
// force several growths.
func TestLastWriteWins(t *testing.T) {
	d := dict.New()
	want := make(map[string]int)

	for round := 0; round < 3; round++ {
		for i := 0; i < 40; i++ {
			key := fmt.Sprintf("key-%d", i)
			d.Set(key, round*1000+i)
			want[key] = round*1000 + i
		}
	}

	if d.Len() != len(want) {
		t.Fatalf("Expected %d entries, got %d", len(want), d.Len())
	}
	for key, expected := range want {
		value, err := d.Get(key)
		if err != nil {
			t.Fatalf("Key %s not found: %v", key, err)
		}
		if value != expected {
			t.Errorf("Key %s: expected %d, got %v", key, expected, value)
		}
	}
}
