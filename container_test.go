package vpack

import (
	"errors"
	"testing"

	"github.com/nsrdbin/vpack/errs"
)

func TestContainerEmplaceBackZeroes(t *testing.T) {
	c := NewContainer(4, 2)
	r := c.EmplaceBack()
	for _, b := range r {
		if b != 0 {
			t.Fatal("EmplaceBack must return zeroed bytes")
		}
	}
	r[0] = 0xFF
	if c.Record(0)[0] != 0xFF {
		t.Fatal("Record(0) must alias the same bytes EmplaceBack returned")
	}
}

func TestSegmentedContainerPageSurvivesNewPage(t *testing.T) {
	c := NewContainer(4, 2) // 2 records per page
	first := c.EmplaceBack()
	c.EmplaceBack()
	c.EmplaceBack() // forces a new page
	first[0] = 0x42
	if c.Record(0)[0] != 0x42 {
		t.Fatal("a segmented container must not invalidate earlier pages when allocating a new one")
	}
}

func TestContiguousContainerGrowthPreservesRecordBytes(t *testing.T) {
	c := NewContiguousContainer(4)
	first := c.EmplaceBack()
	copy(first, []byte{1, 2, 3, 4})
	for i := 0; i < 1000; i++ {
		c.EmplaceBack()
	}
	// first may now point at a stale backing array after append reallocated;
	// Record(0) is the only way to reliably read current record 0 bytes.
	if got := c.Record(0); got[0] != 1 {
		t.Fatalf("Record(0)[0] = %d, want 1 (reallocation must not corrupt record 0's value)", got[0])
	}
}

func TestContainerAssignBytesRejectsNonMultiple(t *testing.T) {
	c := NewContainer(4, 8)
	err := c.AssignBytes(make([]byte, 6))
	if !errors.Is(err, errs.ErrPayloadSizeMismatch) {
		t.Fatalf("AssignBytes(6 bytes, stride 4) error = %v, want ErrPayloadSizeMismatch", err)
	}
}

func TestContainerAssignBytesReplacesContents(t *testing.T) {
	c := NewContainer(2, 4)
	c.EmplaceBack()
	c.EmplaceBack()
	payload := []byte{1, 2, 3, 4, 5, 6}
	if err := c.AssignBytes(payload); err != nil {
		t.Fatalf("AssignBytes: %v", err)
	}
	if c.Size() != 3 {
		t.Fatalf("Size() = %d, want 3", c.Size())
	}
	if c.Record(1)[0] != 3 || c.Record(1)[1] != 4 {
		t.Fatalf("Record(1) = %v, want [3 4]", c.Record(1))
	}
}

func TestContainerClearEmptiesBothPolicies(t *testing.T) {
	for _, c := range []*Container{NewContainer(4, 4), NewContiguousContainer(4)} {
		c.EmplaceBack()
		c.Clear()
		if !c.Empty() {
			t.Fatal("Clear must leave the container empty")
		}
	}
}
