package monoid_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-haskell-utils/monoid"
)

// product is a custom monoid under multiplication, whose identity is not
// the type's zero value.
type product int

func (product) Identity() monoid.Monoid { return product(1) }

func (p product) Combine(other monoid.Monoid) monoid.Monoid {
	return p * other.(product)
}

// trail is a custom list-like monoid used as a non-commutative probe.
type trail []string

func (trail) Identity() monoid.Monoid { return trail{} }

func (t trail) Combine(other monoid.Monoid) monoid.Monoid {
	out := make(trail, 0, len(t)+len(other.(trail)))
	out = append(out, t...)
	out = append(out, other.(trail)...)
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Laws
// ─────────────────────────────────────────────────────────────────────────────

// checkLaws verifies identity and associativity for three sample values of
// one dynamic monoid type.
func checkLaws(t *testing.T, x, y, z any) {
	t.Helper()

	e := monoid.MustIdentityOf(x)
	require.Equal(t, x, monoid.MustCombine(x, e), "right identity")
	require.Equal(t, x, monoid.MustCombine(e, x), "left identity")

	left := monoid.MustCombine(monoid.MustCombine(x, y), z)
	right := monoid.MustCombine(x, monoid.MustCombine(y, z))
	require.Equal(t, left, right, "associativity")
}

func TestLawsNumeric(t *testing.T) {
	checkLaws(t, 3, 4, 5)
	checkLaws(t, int8(1), int8(2), int8(3))
	checkLaws(t, uint16(9), uint16(8), uint16(7))
	checkLaws(t, 1.5, 2.25, -4.0)
	checkLaws(t, complex(1, 2), complex(3, 4), complex(5, 6))
}

func TestLawsText(t *testing.T) {
	checkLaws(t, "foo", "bar", "baz")
	checkLaws(t, "", "x", "")
}

func TestLawsSequence(t *testing.T) {
	checkLaws(t, []int{1, 2}, []int{3}, []int{4, 5})
	checkLaws(t, []string{"a"}, []string{}, []string{"b"})
}

func TestLawsCustomMonoid(t *testing.T) {
	checkLaws(t, product(3), product(4), product(5))
	checkLaws(t, trail{"a"}, trail{"b"}, trail{"c"})
}

func TestCustomIdentityBeatsPrimitiveKind(t *testing.T) {
	// product has kind int, but its own identity is 1, not 0.
	require.Equal(t, product(1), monoid.MustIdentityOf(product(7)))
	require.Equal(t, product(12), monoid.MustCombine(product(3), product(4)))
}

func TestCombineOrderPreserved(t *testing.T) {
	require.Equal(t, "leftright", monoid.MustCombine("left", "right"))
	require.Equal(t, trail{"l", "r"}, monoid.MustCombine(trail{"l"}, trail{"r"}))
}

// ─────────────────────────────────────────────────────────────────────────────
// Dispatch failures
// ─────────────────────────────────────────────────────────────────────────────

func TestCombineMismatchedTypes(t *testing.T) {
	_, err := monoid.Combine("text", 7)
	require.ErrorIs(t, err, monoid.ErrMismatchedTypes)

	_, err = monoid.Combine(int32(1), int64(1))
	require.ErrorIs(t, err, monoid.ErrMismatchedTypes, "no numeric coercion")
}

func TestCombineUnsupportedType(t *testing.T) {
	type opaque struct{ n int }
	_, err := monoid.Combine(opaque{1}, opaque{2})
	require.ErrorIs(t, err, monoid.ErrNotCombinable)
}

func TestIdentityOfUnsupportedType(t *testing.T) {
	_, err := monoid.IdentityOf(struct{}{})
	require.ErrorIs(t, err, monoid.ErrNoIdentity)

	_, err = monoid.IdentityOf(nil)
	require.ErrorIs(t, err, monoid.ErrNoIdentity)
}

func TestMustCombinePanics(t *testing.T) {
	require.Panics(t, func() { monoid.MustCombine("a", 1) })
}

// ─────────────────────────────────────────────────────────────────────────────
// Identity table
// ─────────────────────────────────────────────────────────────────────────────

func TestIdentityOfPrimitives(t *testing.T) {
	require.Equal(t, 0, monoid.MustIdentityOf(42))
	require.Equal(t, uint8(0), monoid.MustIdentityOf(uint8(3)))
	require.Equal(t, 0.0, monoid.MustIdentityOf(2.5))
	require.Equal(t, "", monoid.MustIdentityOf("hello"))
	require.Equal(t, []int{}, monoid.MustIdentityOf([]int{1, 2}))
}

func TestIdentityPreservesNamedTypes(t *testing.T) {
	type score float64
	got := monoid.MustIdentityOf(score(9.5))
	require.Equal(t, score(0), got)
	require.IsType(t, score(0), got)
}

// ─────────────────────────────────────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────────────────────────────────────

func TestFold(t *testing.T) {
	got := monoid.Fold(trail{"a"}, trail{"b"}, trail{"c"})
	require.Equal(t, trail{"a", "b", "c"}, got)

	require.Equal(t, product(24), monoid.Fold(product(2), product(3), product(4)))
}

func TestConcat(t *testing.T) {
	require.Equal(t, 6, monoid.Concat(1, 2, 3))
	require.Equal(t, "golang", monoid.Concat("go", "lang"))
	require.Equal(t, 0, monoid.Concat[int]())
}

func TestZero(t *testing.T) {
	require.Equal(t, 0, monoid.Zero[int]())
	require.Equal(t, "", monoid.Zero[string]())
}

func TestJoin(t *testing.T) {
	a := []int{1, 2}
	got := monoid.Join(a, []int{3})
	require.Equal(t, []int{1, 2, 3}, got)
	require.Equal(t, []int{1, 2}, a, "operands untouched")
	require.Empty(t, monoid.Join[[]int]())
}
