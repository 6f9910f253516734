package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func catalogNames(catalog []Strategy) []string {
	names := make([]string, 0, len(catalog))
	for _, s := range catalog {
		names = append(names, s.Name())
	}

	return names
}

func TestDefaultCatalog(t *testing.T) {
	names := catalogNames(DefaultCatalog())

	require.Equal(t, []string{
		"Arithmetic",
		"Comparison",
		"Boolean",
		"Literal",
		"FunctionCall",
		"Conditional",
	}, names)
}

func TestResolveStrategies(t *testing.T) {
	t.Run("empty request selects the whole catalog", func(t *testing.T) {
		resolved, err := ResolveStrategies()

		require.NoError(t, err)
		require.Len(t, resolved, len(DefaultCatalog()))
	})

	t.Run("resolves a single name", func(t *testing.T) {
		resolved, err := ResolveStrategies("Boolean")

		require.NoError(t, err)
		require.Equal(t, []string{"Boolean"}, catalogNames(resolved))
	})

	t.Run("matching is case-insensitive", func(t *testing.T) {
		resolved, err := ResolveStrategies("arithmetic", "FUNCTIONCALL")

		require.NoError(t, err)
		require.Equal(t, []string{"Arithmetic", "FunctionCall"}, catalogNames(resolved))
	})

	t.Run("surrounding whitespace is trimmed", func(t *testing.T) {
		resolved, err := ResolveStrategies(" Literal ")

		require.NoError(t, err)
		require.Equal(t, []string{"Literal"}, catalogNames(resolved))
	})

	t.Run("request order is preserved", func(t *testing.T) {
		resolved, err := ResolveStrategies("Conditional", "Arithmetic")

		require.NoError(t, err)
		require.Equal(t, []string{"Conditional", "Arithmetic"}, catalogNames(resolved))
	})

	t.Run("unknown names are rejected", func(t *testing.T) {
		_, err := ResolveStrategies("banana")

		require.EqualError(t, err, "unsupported mutation strategy: banana")
	})
}
