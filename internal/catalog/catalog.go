// Package catalog holds the fixed unit catalog. The catalog is closed:
// four unit types with fixed base stats, never extended at runtime.
package catalog

// UnitType identifies one of the four unit classes
type UnitType string

const (
	Infantry  UnitType = "infantry"
	Tank      UnitType = "tank"
	Artillery UnitType = "artillery"
	Aircraft  UnitType = "aircraft"
)

// UnitSpec is an immutable catalog entry
type UnitSpec struct {
	Type    UnitType
	Name    string
	Attack  int
	Defense int
	Health  int
	Cost    int
}

var specs = []UnitSpec{
	{Type: Infantry, Name: "Infantry Squad", Attack: 30, Defense: 20, Health: 100, Cost: 50},
	{Type: Tank, Name: "Battle Tank", Attack: 80, Defense: 60, Health: 200, Cost: 150},
	{Type: Artillery, Name: "Artillery Battery", Attack: 100, Defense: 30, Health: 120, Cost: 120},
	{Type: Aircraft, Name: "Fighter Aircraft", Attack: 120, Defense: 40, Health: 150, Cost: 200},
}

// All returns the catalog in its fixed order. The returned slice is a copy.
func All() []UnitSpec {
	out := make([]UnitSpec, len(specs))
	copy(out, specs)
	return out
}

// ByType looks up a UnitSpec by its type. ok is false for unknown types.
func ByType(t UnitType) (UnitSpec, bool) {
	for _, s := range specs {
		if s.Type == t {
			return s, true
		}
	}
	return UnitSpec{}, false
}

// Types returns the four unit types in catalog order.
func Types() []UnitType {
	out := make([]UnitType, len(specs))
	for i, s := range specs {
		out[i] = s.Type
	}
	return out
}
