package Sets

// Set of distinct elements.
type Set[E any] interface {
	//Put e into the set. Returns false if it was already there.
	Put(E) bool
	Has(E) bool
	//Remove e from the set. Returns false if it wasn't there.
	Remove(E) bool
	Size() uint
	//Take removes and returns some element; which one is up to the implementation.
	//Zero value if the set is empty.
	Take() E
	//Range over the elements until f returns false.
	Range(func(E) bool)
}
