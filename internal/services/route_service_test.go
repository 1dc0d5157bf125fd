package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dongseon/pkg/utils"
)

func placeNames(n int) []string {
	names := make([]string, n)
	for i := range names {
		names[i] = string(rune('A' + i))
	}
	return names
}

// trapMatrix is |i-j| everywhere except the 0->5 shortcut. Greedy search
// takes the shortcut and pays for it later; the optimal tour is the plain
// ascending walk.
func trapMatrix(n int) [][]float64 {
	m := make([][]float64, n)
	for i := range m {
		m[i] = make([]float64, n)
		for j := range m[i] {
			d := i - j
			if d < 0 {
				d = -d
			}
			m[i][j] = float64(d)
		}
	}
	m[0][5] = 0.5
	m[5][0] = 0.5
	return m
}

func TestSolve_RejectsFewerThanTwoPlaces(t *testing.T) {
	svc := NewRouteService(&fakeGeoService{})

	_, err := svc.Solve(context.Background(), []string{"A"}, false, "transit")
	assert.True(t, errors.Is(err, utils.ErrInvalidInput))
}

func TestSolve_ExactSearchFindsOptimalOrder(t *testing.T) {
	// 8 places with a fixed start leaves 7 free, inside the exact regime
	geo := &fakeGeoService{matrix: trapMatrix(8)}
	svc := NewRouteService(geo)

	order, err := svc.Solve(context.Background(), placeNames(8), true, "transit")
	require.NoError(t, err)

	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7}, order.Indices)
	assert.Equal(t, 7*time.Second, order.TotalDuration)
}

func TestSolve_LargeInputTakesGreedyPath(t *testing.T) {
	// 10 free places exceeds the exact cutoff; greedy falls into the trap
	geo := &fakeGeoService{matrix: trapMatrix(10)}
	svc := NewRouteService(geo)

	order, err := svc.Solve(context.Background(), placeNames(10), false, "transit")
	require.NoError(t, err)

	assert.Equal(t, []int{0, 5, 4, 3, 2, 1, 6, 7, 8, 9}, order.Indices)
}

func TestSolve_FixedStartPinsFirstPlace(t *testing.T) {
	// starting at index 2 would be cheaper, but the pin must hold
	matrix := [][]float64{
		{0, 100, 100, 100},
		{100, 0, 1, 1},
		{1, 1, 0, 1},
		{100, 1, 1, 0},
	}
	svc := NewRouteService(&fakeGeoService{matrix: matrix})

	order, err := svc.Solve(context.Background(), placeNames(4), true, "transit")
	require.NoError(t, err)

	assert.Equal(t, 0, order.Indices[0])
	assert.Equal(t, "A", order.Places[0])
}

func TestSolve_UnreachablePlaceKeepsInputOrder(t *testing.T) {
	inf := Unreachable
	matrix := [][]float64{
		{0, 10, inf},
		{10, 0, inf},
		{inf, inf, 0},
	}
	svc := NewRouteService(&fakeGeoService{matrix: matrix})

	places := []string{"A", "B", "C"}
	order, err := svc.Solve(context.Background(), places, false, "transit")

	require.Error(t, err)
	assert.True(t, errors.Is(err, utils.ErrOptimizationInfeasible))
	assert.Equal(t, []int{0, 1, 2}, order.Indices)
	assert.Equal(t, places, order.Places)
}

func TestSolve_MatrixErrorIsNotInfeasibility(t *testing.T) {
	svc := NewRouteService(&fakeGeoService{matrixErr: context.Canceled})

	_, err := svc.Solve(context.Background(), placeNames(3), false, "transit")
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, errors.Is(err, utils.ErrOptimizationInfeasible))
}

func TestSolve_ReordersPlacesAlongsideIndices(t *testing.T) {
	matrix := [][]float64{
		{0, 10, 1},
		{10, 0, 1},
		{1, 1, 0},
	}
	svc := NewRouteService(&fakeGeoService{matrix: matrix})

	order, err := svc.Solve(context.Background(), []string{"A", "B", "C"}, false, "transit")
	require.NoError(t, err)

	require.Len(t, order.Places, 3)
	for pos, idx := range order.Indices {
		assert.Equal(t, []string{"A", "B", "C"}[idx], order.Places[pos])
	}
	// A and B never travel directly; C sits between them
	assert.Equal(t, "C", order.Places[1])
}
