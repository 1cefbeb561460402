package entity

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSelectorValidate(t *testing.T) {
	require.NoError(t, Selector{Tag: "h1"}.Validate())
	require.NoError(t, Selector{Tag: "h1", Class: "entry-title"}.Validate())
	require.ErrorIs(t, Selector{}.Validate(), ErrEmptyTag)
	require.ErrorIs(t, Selector{Tag: "  ", Class: "x"}.Validate(), ErrEmptyTag)
	require.NoError(t, Selector{Tag: " H1 "}.Validate())
	require.NoError(t, Selector{Tag: "my-element"}.Validate())

	for _, tag := range []string{"*", "h1, h2", "h1[", "div p", "h1.entry-title", "#id", "1h"} {
		require.ErrorIs(t, Selector{Tag: tag}.Validate(), ErrInvalidTag, tag)
	}
}

func TestSelectorString(t *testing.T) {
	require.Equal(t, "h1", Selector{Tag: "h1"}.String())
	require.Equal(t, "h1.entry-title", Selector{Tag: "h1", Class: "entry-title"}.String())
}
