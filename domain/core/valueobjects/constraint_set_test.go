package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstraintSet_Lines_TrimsAndDropsEmpty(t *testing.T) {
	set := NewConstraintSet("  A AND b_of  \n\n\tC1 OR C2\n   \nNOT owns\n")

	assert.Equal(t, []string{"A AND b_of", "C1 OR C2", "NOT owns"}, set.Lines())
}

func TestConstraintSet_Lines_PreservesOrderAndDuplicates(t *testing.T) {
	set := NewConstraintSet("knows\nowns\nknows")

	assert.Equal(t, []string{"knows", "owns", "knows"}, set.Lines())
}

func TestConstraintSet_Lines_EmptyText(t *testing.T) {
	set := NewConstraintSet("")

	assert.Empty(t, set.Lines())
	assert.True(t, set.IsEmpty())
}

func TestConstraintSet_IsEmpty_WhitespaceOnly(t *testing.T) {
	set := NewConstraintSet("  \n\t\n   ")

	assert.True(t, set.IsEmpty())
}

func TestConstraintSet_TextIsPreservedVerbatim(t *testing.T) {
	text := "  A AND b  \n\nC"
	set := NewConstraintSet(text)

	assert.Equal(t, text, set.Text())
}

func TestNewConstraintSetFromLines_RoundTrips(t *testing.T) {
	set := NewConstraintSetFromLines([]string{"A AND b_of", "NOT owns"})

	assert.Equal(t, "A AND b_of\nNOT owns", set.Text())
	assert.Equal(t, []string{"A AND b_of", "NOT owns"}, set.Lines())
}

func TestConstraintSet_Equals(t *testing.T) {
	a := NewConstraintSet("knows\nowns")
	b := NewConstraintSetFromLines([]string{"knows", "owns"})
	c := NewConstraintSet("knows\nowns ")

	assert.True(t, a.Equals(b))
	assert.False(t, a.Equals(c))
}
