package common

import "github.com/syssam/solgen/compiler/optspace"

// Booleans are the candidate values of a feature flag.
var Booleans = []any{true, false}

// Candidate header metadata: none, and a fully populated record.
var infoValues = []any{
	map[string]any{},
	map[string]any{"securityContact": "security@example.com", "license": "WTFPL"},
}

// Dimensions returns the shared blueprint dimensions. Kinds that do not
// support some upgradeability styles pass the ones they offer.
func Dimensions(upgradeables ...Upgradeable) optspace.Blueprint {
	if len(upgradeables) == 0 {
		upgradeables = Upgradeables
	}
	return optspace.Blueprint{
		{Name: "access", Values: values(Accesses)},
		{Name: "upgradeable", Values: values(upgradeables)},
		{Name: "info", Values: infoValues},
	}
}

func values[T ~string](vs []T) []any {
	out := make([]any, len(vs))
	for i, v := range vs {
		out[i] = string(v)
	}
	return out
}

// Flag returns a boolean dimension.
func Flag(name string) optspace.Dimension {
	return optspace.Dimension{Name: name, Values: Booleans}
}

// Fixed returns a single-valued dimension.
func Fixed(name string, value any) optspace.Dimension {
	return optspace.Dimension{Name: name, Values: []any{value}}
}
