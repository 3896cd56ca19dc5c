package domain

// The helpers below apply a local mutation to a flat comment list. They never
// modify the input slice; callers rebuild the tree from the returned list.

// AppendComment adds a comment returned by the backend to the end of the list.
func AppendComment(list []Comment, c Comment) []Comment {
	out := make([]Comment, 0, len(list)+1)
	out = append(out, list...)
	return append(out, c)
}

// ReplaceComment swaps the entry with c.ID for c, keeping its position.
func ReplaceComment(list []Comment, c Comment) ([]Comment, bool) {
	out := make([]Comment, len(list))
	copy(out, list)
	for i := range out {
		if out[i].ID == c.ID {
			out[i] = c
			return out, true
		}
	}
	return out, false
}

// RemoveComment drops the entry with id. Replies to it are kept and become
// roots on the next rebuild.
func RemoveComment(list []Comment, id int64) ([]Comment, bool) {
	out := make([]Comment, 0, len(list))
	removed := false
	for _, c := range list {
		if !removed && c.ID == id {
			removed = true
			continue
		}
		out = append(out, c)
	}
	return out, removed
}

// FindComment returns the entry with id.
func FindComment(list []Comment, id int64) (Comment, bool) {
	for _, c := range list {
		if c.ID == id {
			return c, true
		}
	}
	return Comment{}, false
}
