package model

// Indexer interface is designed to give a unique index to a combination of
// decision variable's attributes and vice versa
type Indexer interface {
	// Returns the variable index of a (class, subject, slot) triple. Indices
	// start at 1 so they can be used directly as literals
	Index(class, subject, slot uint64) uint64
	// Returns the (class, subject, slot) triple encoded by a variable index
	Attributes(index uint64) (class uint64, subject uint64, slot uint64)
}

func NewIndexer(classes, subjects, slots uint64) Indexer {
	return &sortedIndexer{
		classes:  classes,
		subjects: subjects,
		slots:    slots,
	}
}
