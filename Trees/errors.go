package Trees

import "fmt"

// RotationError is raised (via panic) when a rotation is asked to lift a child that
// isn't there. It always means a bug in the tree itself.
type RotationError struct {
	Dir, Missing string
}

func (e *RotationError) Error() string {
	return fmt.Sprintf("Trees: rotate %s on a node without %s child", e.Dir, e.Missing)
}

// InvalidSliceError is raised (via panic) by From when safe==true and the slice
// isn't strictly ascending around Mid.
type InvalidSliceError struct {
	Left, Mid, Right any
}

func (e *InvalidSliceError) Error() string {
	return fmt.Sprintf("Trees: slice not strictly ascending around %v (left %v, right %v)", e.Mid, e.Left, e.Right)
}
