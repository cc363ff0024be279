package model

type sortedIndexer struct {
	classes  uint64
	subjects uint64
	slots    uint64
}

func (i *sortedIndexer) Index(class, subject, slot uint64) uint64 {
	return slot + i.slots*(subject) + i.slots*i.subjects*(class) + 1
}

func (i *sortedIndexer) Attributes(index uint64) (class uint64, subject uint64, slot uint64) {
	index--

	slot = index % i.slots
	index = index / i.slots

	subject = index % i.subjects
	index = index / i.subjects

	class = index % i.classes

	return class, subject, slot
}
