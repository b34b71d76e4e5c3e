package player

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"
)

var registry = map[string]PlayerFactory{
	"random":   NewRandomBot,
	"rational": NewRationalBot,
}

// Names lists the registered agents in alphabetical order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// New builds the agent registered under name.
func New(name string, rng *rand.Rand) (Player, error) {
	factory, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown agent %q, available: %s", name, strings.Join(Names(), ", "))
	}
	return factory(rng), nil
}
