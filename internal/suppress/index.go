package suppress

import (
	"go/token"

	"github.com/sirkon/rbtree"
)

// span is a [start,end] region of suppressed positions.
type span struct {
	start token.Pos
	end   token.Pos
}

// Cmp defines ordering for the RB-tree as "disjoint by position".
//   - return -1 if this span is strictly before other (ends before other's start)
//   - return  1 if this span is strictly after  other (starts after other's end)
//   - return  0 if spans overlap in any way.
//
// Construction merges overlapping and adjacent spans beforehand, so the tree
// only ever holds disjoint spans and 0 on a point probe means coverage.
func (s *span) Cmp(other *span) int {
	if s.end < other.start {
		return -1
	}
	if s.start > other.end {
		return 1
	}
	return 0
}

// Index answers whether a position falls into a suppressed region.
type Index struct {
	tree *rbtree.Tree[*span]
}

func newIndex(spans []*span) *Index {
	tree := rbtree.New[*span]()
	for _, s := range spans {
		tree.InsertReturn(s)
	}

	return &Index{tree: tree}
}

// Covered reports whether pos lies inside any suppressed region.
func (i *Index) Covered(pos token.Pos) bool {
	if i == nil || i.tree == nil {
		return false
	}

	probe := &span{start: pos, end: pos}
	return i.tree.Search(probe) != nil
}
