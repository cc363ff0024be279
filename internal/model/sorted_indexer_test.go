package model

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIndexAndAttributesRoundTrip(t *testing.T) {
	for range 10 {
		// Arrange
		var Classes uint64 = uint64(rand.Intn(20) + 1)
		var Subjects uint64 = uint64(rand.Intn(30) + 1)
		var Slots uint64 = uint64(rand.Intn(40) + 1)

		indexer := NewIndexer(Classes, Subjects, Slots)

		// Act
		indices := make([]uint64, 0, Classes*Subjects*Slots)
		for class := uint64(0); class < Classes; class++ {
			for subject := uint64(0); subject < Subjects; subject++ {
				for slot := uint64(0); slot < Slots; slot++ {
					indices = append(indices, indexer.Index(class, subject, slot))
				}
			}
		}

		// Assert
		for _, index := range indices {
			class, subject, slot := indexer.Attributes(index)
			assert.Equal(t, index, indexer.Index(class, subject, slot))
		}
	}
}

func TestIndicesAreContiguousFromOne(t *testing.T) {
	for range 10 {
		// Arrange
		var Classes uint64 = uint64(rand.Intn(20) + 1)
		var Subjects uint64 = uint64(rand.Intn(30) + 1)
		var Slots uint64 = uint64(rand.Intn(40) + 1)

		indexer := NewIndexer(Classes, Subjects, Slots)

		// Act
		indices := make([]uint64, 0, Classes*Subjects*Slots)
		for class := uint64(0); class < Classes; class++ {
			for subject := uint64(0); subject < Subjects; subject++ {
				for slot := uint64(0); slot < Slots; slot++ {
					indices = append(indices, indexer.Index(class, subject, slot))
				}
			}
		}

		slices.Sort(indices)

		// Assert
		for i, index := range indices {
			if i == 0 {
				// First index should be 1, so indices can be used directly as literals
				assert.Equal(t, uint64(1), index)
				continue
			}
			assert.Equal(t, indices[i-1]+1, index)
		}
	}
}
