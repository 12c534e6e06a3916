package Trees

// Tree represents an ordered set implemented using nodes.
// Receivers that has a bool as a second return value indicates whether
// the first return value is defined. For example, if calling Min on
// an empty tree, the return value will be (x T, false bool). In this
// case x is the zero value of T and shouldn't be used.
// Unless noted otherwise, methods are implemented iteratively.
type Tree[T any] interface {
	//Insert v into the Tree. The Handle points to the node now holding a value
	//equal to v; the bool is false if such a node already existed.
	Insert(v T) (Handle[T], bool)
	//Delete v from the Tree. Returns false if v isn't in the Tree.
	Delete(v T) bool
	//Search for a value equal to v.
	Search(v T) (T, bool)
	//Min element of the tree.
	Min() (T, bool)
	//Max element of the tree.
	Max() (T, bool)
	//Prev returns the element right before v, v must be in the tree.
	Prev(v T) (T, bool)
	//Next returns the element right after v, v must be in the tree.
	Next(v T) (T, bool)
	//Has element v. Unlike Search, Has never changes the shape of the tree,
	//so it's the one to use for read-mostly workloads.
	Has(v T) bool
	//Size of the tree.
	Size() uint
	//Empty is Size()==0.
	Empty() bool
	//Clear the tree.
	Clear()
	//InOrder returns a closure function f acting like an iterator. f
	//gives elements in the in-order traversal of the tree.
	//Calling f is like calling "Next()" of iterators: val, valid=f()
	//val is meaningful only if valid is true. When valid==false,
	//then f is exhausted. valid can't turn true after it first became false.
	//The tree must not be modified during the iteration of f.
	InOrder() func() (T, bool)
	//Corrupt returns whether the tree has corrupt structures, when the value
	//at some node violates the properties of that specific implementation.
	//This is to be distinguished from whether the tree is balanced or not.
	Corrupt() bool
}

var _ Tree[int] = (*SplayTree[int, uint])(nil)
