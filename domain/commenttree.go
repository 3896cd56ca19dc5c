package domain

// CommentNode is a comment together with its direct replies.
// Nodes are rebuilt from the flat list on every change and never patched.
type CommentNode struct {
	Comment
	Children []*CommentNode
}

// BuildCommentTree reconstructs the reply tree from a flat comment list.
//
// The first pass creates a node per id, the second links every comment to its
// parent. Comments without a parent, or whose parent is not in the list, become
// roots, so nothing is ever dropped. Roots and siblings keep input order.
func BuildCommentTree(comments []Comment) []*CommentNode {
	byID := make(map[int64]*CommentNode, len(comments))
	nodes := make([]*CommentNode, len(comments))
	for i, c := range comments {
		n := &CommentNode{Comment: c, Children: []*CommentNode{}}
		nodes[i] = n
		if _, dup := byID[c.ID]; !dup {
			byID[c.ID] = n
		}
	}

	roots := make([]*CommentNode, 0, len(comments))
	linked := make(map[*CommentNode]*CommentNode, len(comments))
	for i, c := range comments {
		n := nodes[i]
		if c.ParentID != nil && *c.ParentID != c.ID {
			if parent, ok := byID[*c.ParentID]; ok && !linksTo(parent, n, linked) {
				parent.Children = append(parent.Children, n)
				linked[n] = parent
				continue
			}
		}
		roots = append(roots, n)
	}
	return roots
}

// linksTo reports whether target is reached by walking up the links made so
// far, starting at from. Linking target below from would then close a cycle,
// so target becomes a root instead. In a parent cycle the comment that comes
// first in the list is nested and the one that closes the cycle is the root.
func linksTo(from, target *CommentNode, linked map[*CommentNode]*CommentNode) bool {
	for cur := from; cur != nil; cur = linked[cur] {
		if cur == target {
			return true
		}
	}
	return false
}

// CountNodes counts every node in the forest, at any depth.
func CountNodes(roots []*CommentNode) int {
	n := 0
	for _, r := range roots {
		n += 1 + CountNodes(r.Children)
	}
	return n
}

// MaxDepth returns the number of tiers in the forest (0 for empty).
func MaxDepth(roots []*CommentNode) int {
	deepest := 0
	for _, r := range roots {
		deepest = max(deepest, 1+MaxDepth(r.Children))
	}
	return deepest
}

// ThreadLine is one rendered row of a comment thread.
type ThreadLine struct {
	Comment Comment
	Depth   int // 0 for roots
	Replies int // direct children
	Hidden  int // descendants below the render depth
}

// DefaultRenderTiers is how many tiers the detail view draws.
const DefaultRenderTiers = 2

// Flatten walks the forest depth-first down to tiers levels. Descendants past
// that depth stay in the tree and are reported through ThreadLine.Hidden.
func Flatten(roots []*CommentNode, tiers int) []ThreadLine {
	var out []ThreadLine
	var walk func(nodes []*CommentNode, depth int)
	walk = func(nodes []*CommentNode, depth int) {
		for _, n := range nodes {
			line := ThreadLine{Comment: n.Comment, Depth: depth, Replies: len(n.Children)}
			if depth+1 >= tiers {
				line.Hidden = CountNodes(n.Children)
				out = append(out, line)
				continue
			}
			out = append(out, line)
			walk(n.Children, depth+1)
		}
	}
	if tiers < 1 {
		tiers = 1
	}
	walk(roots, 0)
	return out
}
