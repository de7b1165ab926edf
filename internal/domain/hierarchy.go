package domain

import (
	"fmt"
	"iter"

	"github.com/mnemo-app/mnemo-api/internal/address"
)

// Node kind discriminator carried inside stored documents. Tagging nodes
// explicitly removes the guesswork of classifying folder versus set by
// field shape; untagged documents written by older clients still decode
// through the structural fallback in ParseNode.
const (
	kindKey    = "kind"
	kindSet    = "set"
	kindFolder = "folder"
)

// Node is one node of a user's hierarchy: either a FolderNode or a SetNode.
type Node interface {
	node()
}

// FolderNode is a named mapping from child name to nested node. Folders are
// structural only; they exist as path prefixes, not as stored objects with
// their own identity.
type FolderNode struct {
	Children map[string]Node
}

// SetNode is a leaf holding one flashcard set.
type SetNode struct {
	Set *Set
}

func (*FolderNode) node() {}
func (*SetNode) node()    {}

// ParseNode decodes a stored hierarchy document into a typed node.
//
// Classification is tag-first: a "kind" field of "set" or "folder" decides.
// Documents without a tag fall back to the structural rule: a "cards"
// field marks a set, anything else is treated as a folder of child nodes.
// Child values that are not objects cannot be nodes and are skipped.
func ParseNode(doc map[string]any) (Node, error) {
	switch kind, _ := doc[kindKey].(string); kind {
	case kindSet:
		return parseSetNode(doc)
	case kindFolder:
		return parseFolderNode(doc)
	case "":
		if _, hasCards := doc["cards"]; hasCards {
			return parseSetNode(doc)
		}
		return parseFolderNode(doc)
	default:
		return nil, fmt.Errorf("%w: unknown kind %q", ErrMalformedNode, doc[kindKey])
	}
}

func parseSetNode(doc map[string]any) (Node, error) {
	s, err := SetFromDocument(doc)
	if err != nil {
		return nil, err
	}
	return &SetNode{Set: s}, nil
}

func parseFolderNode(doc map[string]any) (Node, error) {
	children := make(map[string]Node, len(doc))
	for name, raw := range doc {
		if name == kindKey {
			continue
		}
		child, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		node, err := ParseNode(child)
		if err != nil {
			return nil, fmt.Errorf("child %q: %w", name, err)
		}
		children[name] = node
	}
	return &FolderNode{Children: children}, nil
}

// Sets walks the folder depth-first and yields every flashcard set beneath
// it together with its normalized folder path ("" for the root, "a/b/" for
// nested folders). The sequence is lazy and restartable: ranging over it
// again replays the same snapshot. Child order within a folder is
// unspecified.
func (f *FolderNode) Sets() iter.Seq2[string, *Set] {
	return func(yield func(string, *Set) bool) {
		f.walk("", yield)
	}
}

func (f *FolderNode) walk(folder string, yield func(string, *Set) bool) bool {
	for name, child := range f.Children {
		switch n := child.(type) {
		case *SetNode:
			if !yield(folder, n.Set) {
				return false
			}
		case *FolderNode:
			if !n.walk(folder+name+address.Separator, yield) {
				return false
			}
		}
	}
	return true
}
