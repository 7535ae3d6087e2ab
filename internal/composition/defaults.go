package composition

import (
	_ "embed"
)

//go:embed defaults/demo.json
var defaultDemoJSON []byte

// Demo returns the bundled demo composition: a themed root with a gravity
// environment holding the player, a platform, and a nested damping zone
// anchored on a void entity.
func Demo() Document {
	doc, err := Decode(defaultDemoJSON)
	if err != nil {
		// The embedded document is part of the build; failing to parse it
		// is a programming error.
		panic("composition: embedded demo scene is invalid: " + err.Error())
	}
	return doc
}
