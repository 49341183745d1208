package monads_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-haskell-utils/monads"
)

var errBoom = errors.New("boom")

func TestEitherFmap(t *testing.T) {
	got := monads.Fmap(neg, monads.Right(9))
	require.True(t, got.Equal(monads.Right(-9)))
}

func TestLeftFmap(t *testing.T) {
	calls := 0
	got := monads.Fmap(func(n int) int { calls++; return -n }, monads.Left(errBoom))
	require.True(t, got.Equal(monads.Left(errBoom)))
	require.Zero(t, calls, "Left must not invoke the mapped function")
}

func TestEitherAmap(t *testing.T) {
	got := monads.Amap(monads.Fmap(addInts, monads.Right(7)), monads.Right(8))
	require.True(t, got.Equal(monads.Right(15)))
}

func TestEitherAmapShortCircuit(t *testing.T) {
	got := monads.Amap(monads.Fmap(addInts, monads.Left("no fn")), monads.Right(8))
	require.True(t, got.Equal(monads.Left("no fn")))

	got = monads.Amap(monads.Fmap(addInts, monads.Right(7)), monads.Left("no arg"))
	require.True(t, got.Equal(monads.Left("no arg")))
}

func TestEitherAmapFirstLeftWins(t *testing.T) {
	got := monads.Amap(monads.Left("first"), monads.Left("second"))
	require.True(t, got.Equal(monads.Left("first")))
}

func TestEitherBind(t *testing.T) {
	safeDiv := func(x any) monads.Monad {
		n := x.(int)
		if n == 0 {
			return monads.Left(errBoom)
		}
		return monads.Right(100 / n)
	}

	require.True(t, monads.Right(4).Bind(safeDiv).Equal(monads.Right(25)))
	require.True(t, monads.Right(0).Bind(safeDiv).Equal(monads.Left(errBoom)))
	require.True(t, monads.Left("early").Bind(safeDiv).Equal(monads.Left("early")))
}

func TestEitherThen(t *testing.T) {
	require.True(t, monads.Right(1).Then(monads.Right(2)).Equal(monads.Right(2)))
	require.True(t, monads.Left("stop").Then(monads.Right(2)).Equal(monads.Left("stop")))
}

func TestEitherFold(t *testing.T) {
	double := func(v any) any { return v.(int) * 2 }
	wrap := func(v any) any { return "err: " + v.(string) }

	require.Equal(t, 10, monads.Right(5).Fold(wrap, double))
	require.Equal(t, "err: nope", monads.Left("nope").Fold(wrap, double))
}

func TestEitherAccessors(t *testing.T) {
	require.True(t, monads.Right(1).IsRight())
	require.False(t, monads.Right(1).IsLeft())
	require.Equal(t, 1, monads.Right(1).Value())

	require.True(t, monads.Left("e").IsLeft())
	require.Equal(t, "e", monads.Left("e").Value())
}

func TestEitherString(t *testing.T) {
	require.Equal(t, "Right 1", monads.Right(1).String())
	require.Equal(t, "Left nope", monads.Left("nope").String())
}

func TestEitherUnit(t *testing.T) {
	require.True(t, monads.Unit(monads.Left("proto"), 5).Equal(monads.Right(5)))
}
