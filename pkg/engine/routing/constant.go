package routing

import "errors"

var (
	ErrCorruptedTree = errors.New("parent pointers do not form a tree rooted at the source")
)
