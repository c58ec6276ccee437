package scene

import (
	"fmt"
	"sort"
)

const defaultGridSize = 10

var builtins = map[string]func() (*Scene, Config, error){
	"default":    NewDefaultScene,
	"single":     NewSingleSphereScene,
	"empty":      NewEmptyScene,
	"spheregrid": func() (*Scene, Config, error) { return NewSphereGridScene(defaultGridSize) },
}

// Names returns the built-in scene names in sorted order
func Names() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Create builds a built-in scene by name
func Create(name string) (*Scene, Config, error) {
	build, ok := builtins[name]
	if !ok {
		return nil, Config{}, fmt.Errorf("unknown scene type: %q", name)
	}
	return build()
}
