package pricing

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCatalogueSavings(t *testing.T) {
	pkgs := Packages()
	require.Len(t, pkgs, 3)

	single, ok := Lookup(Single)
	require.True(t, ok)
	require.Equal(t, 0, single.Savings())

	three, ok := Lookup(Package3)
	require.True(t, ok)
	require.Equal(t, 87, three.ListPrice())
	require.Equal(t, 5, three.Savings())
	require.True(t, three.Popular)

	five, ok := Lookup(Package5)
	require.True(t, ok)
	require.Equal(t, 145, five.ListPrice())
	require.Equal(t, 15, five.Savings())
}

func TestPackagesReturnsIndependentCopies(t *testing.T) {
	pkgs := Packages()
	pkgs[0].Name = "Changed"
	pkgs[0].Features[0] = "Changed"
	pkgs[1].Features = append(pkgs[1].Features[:0], "Only")

	fresh := Packages()
	require.Equal(t, "Single Lesson", fresh[0].Name)
	require.Equal(t, "1-hour session", fresh[0].Features[0])
	require.Len(t, fresh[1].Features, 4)

	five, ok := Lookup(Package5)
	require.True(t, ok)
	five.Features[0] = "Changed"
	again, _ := Lookup(Package5)
	require.NotEqual(t, "Changed", again.Features[0])
}

func TestLabel(t *testing.T) {
	require.Equal(t, "General Inquiry", Label(General))
	require.Equal(t, "Single Lesson", Label(Single))
	require.Equal(t, "5-Lesson Package", Label(Package5))
	require.Empty(t, Label("package_10"))
}

func TestPackagesReturnsCopy(t *testing.T) {
	pkgs := Packages()
	pkgs[0].Price = 1

	single, _ := Lookup(Single)
	require.Equal(t, 29, single.Price)
}
