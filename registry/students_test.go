package registry

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"student-directory/models"
)

func TestResolveAssignsIncreasingIDsFromZero(t *testing.T) {
	r := NewStudentRegistry()

	assert.Equal(t, 0, r.Resolve("Alice"))
	assert.Equal(t, 1, r.Resolve("Bob"))
	assert.Equal(t, 2, r.Resolve("Charlie"))
}

func TestResolveReturnsExistingID(t *testing.T) {
	r := NewStudentRegistry()

	alice := r.Resolve("Alice")
	bob := r.Resolve("Bob")

	assert.Equal(t, alice, r.Resolve("Alice"))
	assert.Equal(t, bob, r.Resolve("Bob"))
	assert.NotEqual(t, alice, bob)
	assert.Len(t, r.List(), 2)
}

func TestResolveIsCaseSensitive(t *testing.T) {
	r := NewStudentRegistry()

	assert.NotEqual(t, r.Resolve("alice"), r.Resolve("Alice"))
}

func TestStudentListKeepsCreationOrder(t *testing.T) {
	r := NewStudentRegistry()
	assert.Empty(t, r.List())

	r.Resolve("Eve")
	r.Resolve("David")
	r.Resolve("Eve")

	want := []models.Student{{ID: 0, Name: "Eve"}, {ID: 1, Name: "David"}}
	if diff := cmp.Diff(want, r.List()); diff != "" {
		t.Errorf("List() mismatch (-want +got):\n%s", diff)
	}
}

func TestFind(t *testing.T) {
	r := NewStudentRegistry()
	r.Resolve("Alice")

	s, ok := r.Find(0)
	assert.True(t, ok)
	assert.Equal(t, models.Student{ID: 0, Name: "Alice"}, s)

	_, ok = r.Find(7)
	assert.False(t, ok)
}
