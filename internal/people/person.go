package people

import (
	"encoding/json"
	"fmt"
)

const (
	DefaultName = "New Person"
	DefaultAge  = 13

	// MinAge and MaxAge bound the age selector; MaxAge is exclusive.
	MinAge = 0
	MaxAge = 100
)

// Person is one tracked individual. Two persons are equal when all fields
// are equal.
type Person struct {
	Name     string `json:"name"`
	Age      int    `json:"age"`
	HasPhone bool   `json:"has_phone"`
}

// Default returns the person a fresh draft starts from.
func Default() Person {
	return Person{Name: DefaultName, Age: DefaultAge}
}

// Equal reports structural equality.
func (p Person) Equal(other Person) bool {
	return p.Name == other.Name && p.Age == other.Age && p.HasPhone == other.HasPhone
}

// Label returns the text shown for p in lists and headings.
func (p Person) Label() string { return p.Name }

// UnmarshalJSON fills fields absent from data with their defaults so blobs
// written by older builds still load. A negative age is rejected.
func (p *Person) UnmarshalJSON(data []byte) error {
	type plain Person
	out := plain(Default())
	if err := json.Unmarshal(data, &out); err != nil {
		return err
	}
	if out.Age < 0 {
		return fmt.Errorf("person %q: negative age %d", out.Name, out.Age)
	}
	*p = Person(out)
	return nil
}

// ClampAge maps n into [MinAge, MaxAge).
func ClampAge(n int) int {
	if n < MinAge {
		return MinAge
	}
	if n >= MaxAge {
		return MaxAge - 1
	}
	return n
}
