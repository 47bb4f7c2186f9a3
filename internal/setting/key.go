package setting

import (
	"fmt"
	"strings"
)

// keySeparator joins the parts of a Key in its string form.
const keySeparator = "||"

// Key identifies a setting across a load and a save.
// Example: {"Above 4G Decoding", "0E", "0B8D"}
type Key struct {
	Question string
	Token    string
	Offset   string
}

// Valid reports whether all three parts are present.
// Settings with an invalid key cannot be written back.
func (k Key) Valid() bool {
	return k.Question != "" && k.Token != "" && k.Offset != ""
}

// String returns the key as "question||token||offset".
func (k Key) String() string {
	return k.Question + keySeparator + k.Token + keySeparator + k.Offset
}

// ParseKey parses the "question||token||offset" form.
// Example input: `Above 4G Decoding||0E||0B8D`
func ParseKey(s string) (Key, error) {
	parts := strings.Split(s, keySeparator)
	if len(parts) != 3 {
		return Key{}, fmt.Errorf("invalid key %q: want question%stoken%soffset", s, keySeparator, keySeparator)
	}
	k := Key{
		Question: strings.TrimSpace(parts[0]),
		Token:    strings.TrimSpace(parts[1]),
		Offset:   strings.TrimSpace(parts[2]),
	}
	if !k.Valid() {
		return Key{}, fmt.Errorf("invalid key %q: empty part", s)
	}
	return k, nil
}
