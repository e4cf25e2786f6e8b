package enum

import "fmt"

// OrnamentType is the category of a serialized ornament.
type OrnamentType string

const (
	OrnamentTypeRing     OrnamentType = "ring"
	OrnamentTypeNecklace OrnamentType = "necklace"
	OrnamentTypeBracelet OrnamentType = "bracelet"
	OrnamentTypeEarring  OrnamentType = "earring"
	OrnamentTypePendant  OrnamentType = "pendant"
)

// ornamentTypes is the closed set of valid categories.
var ornamentTypes = map[OrnamentType]struct{}{
	OrnamentTypeRing:     {},
	OrnamentTypeNecklace: {},
	OrnamentTypeBracelet: {},
	OrnamentTypeEarring:  {},
	OrnamentTypePendant:  {},
}

// ParseOrnamentType validates a raw category string.
func ParseOrnamentType(s string) (OrnamentType, error) {
	t := OrnamentType(s)
	if _, ok := ornamentTypes[t]; !ok {
		return "", fmt.Errorf("unknown ornament type %q", s)
	}
	return t, nil
}

func (t OrnamentType) String() string {
	return string(t)
}

// Valid reports whether the type is one of the known categories.
func (t OrnamentType) Valid() bool {
	_, ok := ornamentTypes[t]
	return ok
}
