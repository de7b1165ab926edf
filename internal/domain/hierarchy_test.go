package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/mnemo-app/mnemo-api/internal/domain"
)

func setDoc(id, name string) map[string]any {
	return map[string]any{
		"kind":                 "set",
		"flashcardID":          id,
		"flashcardName":        name,
		"flashcardDescription": "",
		"cards": []any{
			map[string]any{"front": "f", "back": "b", "reviewStatus": "0.0", "lastReview": "never"},
		},
	}
}

func TestParseNodeTagged(t *testing.T) {
	node, err := domain.ParseNode(setDoc("11", "Algebra"))
	require.NoError(t, err)

	set, ok := node.(*domain.SetNode)
	require.True(t, ok)
	assert.Equal(t, "Algebra", set.Set.Name)
	require.Len(t, set.Set.Cards, 1)
	assert.Equal(t, "f", set.Set.Cards[0].Front)
}

func TestParseNodeStructuralFallback(t *testing.T) {
	// Documents written before node tagging carry no "kind" field; the
	// presence of "cards" still classifies them as sets.
	doc := setDoc("11", "Algebra")
	delete(doc, "kind")

	node, err := domain.ParseNode(doc)
	require.NoError(t, err)
	_, ok := node.(*domain.SetNode)
	assert.True(t, ok)

	// And a plain mapping of children is a folder.
	node, err = domain.ParseNode(map[string]any{"maths": doc})
	require.NoError(t, err)
	folder, ok := node.(*domain.FolderNode)
	require.True(t, ok)
	assert.Contains(t, folder.Children, "maths")
}

func TestParseNodeUnknownKind(t *testing.T) {
	_, err := domain.ParseNode(map[string]any{"kind": "deck"})
	assert.ErrorIs(t, err, domain.ErrMalformedNode)
}

func TestParseNodeSkipsNonObjectChildren(t *testing.T) {
	node, err := domain.ParseNode(map[string]any{
		"stray": "value",
		"maths": setDoc("11", "Algebra"),
	})
	require.NoError(t, err)

	folder, ok := node.(*domain.FolderNode)
	require.True(t, ok)
	assert.Len(t, folder.Children, 1)
}

func TestFolderSetsWalk(t *testing.T) {
	root := map[string]any{
		"1": setDoc("1", "Top level"),
		"a": map[string]any{
			"2": setDoc("2", "In a"),
			"b": map[string]any{
				"3": setDoc("3", "In a/b"),
			},
		},
	}

	node, err := domain.ParseNode(root)
	require.NoError(t, err)
	folder, ok := node.(*domain.FolderNode)
	require.True(t, ok)

	collect := func() map[string]string {
		found := map[string]string{}
		for path, set := range folder.Sets() {
			found[set.ID] = path
		}
		return found
	}

	assert.Equal(t, map[string]string{
		"1": "",
		"2": "a/",
		"3": "a/b/",
	}, collect())

	// The sequence is restartable: a second pass yields the same sets.
	assert.Equal(t, collect(), collect())
}

func TestFolderSetsEarlyStop(t *testing.T) {
	node, err := domain.ParseNode(map[string]any{
		"1": setDoc("1", "one"),
		"2": setDoc("2", "two"),
	})
	require.NoError(t, err)
	folder := node.(*domain.FolderNode)

	var seen int
	for range folder.Sets() {
		seen++
		break
	}
	assert.Equal(t, 1, seen)
}
