// Package domain contains the core mutation engine: the strategy catalog,
// the tree walker, the mutant optimizer, the dependency mapper, the
// patcher, and the execution scheduler.
package domain

import (
	"fmt"
	"go/ast"
	"strings"

	"sabot.dev/pkg/sabot/internal/domain/strategies"
	m "sabot.dev/pkg/sabot/internal/model"
)

// Strategy is one mutator in the catalog. Implementations are pure: the
// same node and context always produce the same mutations, and no strategy
// depends on another having run.
type Strategy interface {
	Name() string
	Mutate(node ast.Node, ctx strategies.Context) []m.Mutation
}

// DefaultCatalog returns the closed set of built-in strategies. The set is
// registered here explicitly; there is no name-based dynamic dispatch.
func DefaultCatalog() []Strategy {
	return []Strategy{
		strategies.Arithmetic{},
		strategies.Comparison{},
		strategies.Boolean{},
		strategies.Literal{},
		strategies.FunctionCall{},
		strategies.Conditional{},
	}
}

// ResolveStrategies maps requested names onto catalog entries. An empty
// request selects the whole catalog; unknown names are rejected.
func ResolveStrategies(names ...string) ([]Strategy, error) {
	catalog := DefaultCatalog()
	if len(names) == 0 {
		return catalog, nil
	}

	resolved := make([]Strategy, 0, len(names))

	for _, name := range names {
		found := false

		for _, s := range catalog {
			if strings.EqualFold(s.Name(), strings.TrimSpace(name)) {
				resolved = append(resolved, s)
				found = true

				break
			}
		}

		if !found {
			return nil, fmt.Errorf("unsupported mutation strategy: %s", name)
		}
	}

	return resolved, nil
}
