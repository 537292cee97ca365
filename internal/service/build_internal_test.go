package service

import (
	"testing"

	"pc-builder-backend/internal/database/models"

	"github.com/stretchr/testify/assert"
)

func TestNextCopyName(t *testing.T) {
	tests := []struct {
		name     string
		base     string
		taken    []string
		expected string
	}{
		{
			name:     "no collisions",
			base:     "Gaming PC",
			taken:    []string{"Gaming PC"},
			expected: "Gaming PC Copy",
		},
		{
			name:     "first copy taken",
			base:     "Gaming PC",
			taken:    []string{"Gaming PC", "Gaming PC Copy"},
			expected: "Gaming PC Copy 1",
		},
		{
			name:     "gap in the numbered sequence is filled",
			base:     "Gaming PC",
			taken:    []string{"Gaming PC", "Gaming PC Copy", "Gaming PC Copy 2"},
			expected: "Gaming PC Copy 1",
		},
		{
			name:     "dense sequence appends next number",
			base:     "Gaming PC",
			taken:    []string{"Gaming PC", "Gaming PC Copy", "Gaming PC Copy 1", "Gaming PC Copy 2"},
			expected: "Gaming PC Copy 3",
		},
		{
			name:     "unrelated names ignored",
			base:     "Gaming PC",
			taken:    []string{"Gaming PC", "Office PC Copy"},
			expected: "Gaming PC Copy",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, nextCopyName(tt.base, tt.taken))
		})
	}
}

func TestCrossProduct(t *testing.T) {
	// CPU 10 against motherboards {1,2} and RAM {3}
	triples := crossProduct(10, models.CategoryCPU, []uint{1, 2}, models.CategoryMotherboard, []uint{3})

	assert.Len(t, triples, 2)
	for _, triple := range triples {
		assert.Equal(t, uint(10), triple.CPUID)
		assert.Equal(t, uint(3), triple.RAMID)
	}
	assert.Equal(t, uint(1), triples[0].MotherboardID)
	assert.Equal(t, uint(2), triples[1].MotherboardID)
}

func TestCrossProduct_EmptyPeerSetYieldsNothing(t *testing.T) {
	// An empty side means compatible with nothing, never with everything.
	triples := crossProduct(10, models.CategoryRAM, []uint{1, 2}, models.CategoryCPU, nil)
	assert.Empty(t, triples)

	triples = crossProduct(10, models.CategoryRAM, nil, models.CategoryCPU, []uint{1})
	assert.Empty(t, triples)
}

func TestCrossProduct_MotherboardPerspective(t *testing.T) {
	triples := crossProduct(7, models.CategoryMotherboard, []uint{4}, models.CategoryCPU, []uint{5, 6})

	assert.Len(t, triples, 2)
	assert.Equal(t, uint(7), triples[0].MotherboardID)
	assert.Equal(t, uint(4), triples[0].CPUID)
	assert.Equal(t, uint(5), triples[0].RAMID)
	assert.Equal(t, uint(6), triples[1].RAMID)
}

func TestOtherRole(t *testing.T) {
	assert.Equal(t, models.CategoryRAM, otherRole(models.CategoryCPU, models.CategoryMotherboard))
	assert.Equal(t, models.CategoryMotherboard, otherRole(models.CategoryCPU, models.CategoryRAM))
	assert.Equal(t, models.CategoryCPU, otherRole(models.CategoryMotherboard, models.CategoryRAM))
}

func TestDedupeIDs(t *testing.T) {
	assert.Equal(t, []uint{1, 2, 3}, dedupeIDs([]uint{1, 2, 1, 3, 2}))
	assert.Empty(t, dedupeIDs(nil))
}
