package services

import (
	"context"
	"log"
	"time"

	"dongseon/internal/models/plan_models"
	"dongseon/pkg/utils"
)

// Above this many free (non-fixed) places the exact permutation search is
// abandoned for the nearest-neighbor heuristic. Bounds the worst case to
// 8! evaluations; a deliberate cutoff, not an implementation accident.
const maxExactFreePlaces = 8

type RouteServiceInterface interface {
	// Solve finds a low-cost visiting order over places. With fixedStart,
	// places[0] is pinned to position 0 and only the rest are permuted.
	// When some place is unreachable the identity order is returned
	// together with ErrOptimizationInfeasible.
	Solve(ctx context.Context, places []string, fixedStart bool, mode string) (plan_models.RouteOrder, error)
}

type RouteService struct {
	geo GeoServiceInterface
}

func NewRouteService(geo GeoServiceInterface) RouteServiceInterface {
	return &RouteService{geo: geo}
}

func (r *RouteService) Solve(ctx context.Context, places []string, fixedStart bool, mode string) (plan_models.RouteOrder, error) {
	n := len(places)
	if n < 2 {
		return plan_models.RouteOrder{}, utils.ErrInvalidInput
	}

	matrix, err := r.geo.DurationMatrix(ctx, places, mode)
	if err != nil {
		return plan_models.RouteOrder{}, err
	}

	if idx := isolatedPlace(matrix); idx >= 0 {
		log.Printf("route solve: place %q unreachable, keeping input order", places[idx])
		return identityOrder(places), utils.ErrOptimizationInfeasible
	}

	free := n
	if fixedStart {
		free = n - 1
	}

	var best []int
	var bestCost float64
	if free <= maxExactFreePlaces {
		best, bestCost = exactSearch(matrix, fixedStart)
	} else {
		best, bestCost = nearestNeighbor(matrix)
	}

	if best == nil || bestCost == Unreachable {
		return identityOrder(places), utils.ErrOptimizationInfeasible
	}

	ordered := make([]string, n)
	for pos, idx := range best {
		ordered[pos] = places[idx]
	}
	return plan_models.RouteOrder{
		Indices:       best,
		Places:        ordered,
		TotalDuration: time.Duration(bestCost) * time.Second,
	}, nil
}

// isolatedPlace reports a place whose every matrix entry is unreachable,
// or -1 when none exists.
func isolatedPlace(matrix [][]float64) int {
	n := len(matrix)
	for i := 0; i < n; i++ {
		reachable := false
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			if matrix[i][j] != Unreachable || matrix[j][i] != Unreachable {
				reachable = true
				break
			}
		}
		if !reachable && n > 1 {
			return i
		}
	}
	return -1
}

func identityOrder(places []string) plan_models.RouteOrder {
	indices := make([]int, len(places))
	ordered := make([]string, len(places))
	for i, p := range places {
		indices[i] = i
		ordered[i] = p
	}
	return plan_models.RouteOrder{Indices: indices, Places: ordered}
}

// exactSearch enumerates every permutation of the free places. Ties are
// broken by the first-encountered permutation in enumeration order, so the
// result is deterministic for a given matrix.
func exactSearch(matrix [][]float64, fixedStart bool) ([]int, float64) {
	n := len(matrix)

	var prefix []int
	var rest []int
	if fixedStart {
		prefix = []int{0}
		for i := 1; i < n; i++ {
			rest = append(rest, i)
		}
	} else {
		for i := 0; i < n; i++ {
			rest = append(rest, i)
		}
	}

	best := []int(nil)
	bestCost := Unreachable

	perm := make([]int, 0, n)
	perm = append(perm, prefix...)
	used := make([]bool, n)

	var walk func()
	walk = func() {
		if len(perm) == n {
			cost := tourCost(matrix, perm)
			if cost < bestCost {
				bestCost = cost
				best = append([]int(nil), perm...)
			}
			return
		}
		for _, idx := range rest {
			if used[idx] {
				continue
			}
			used[idx] = true
			perm = append(perm, idx)
			walk()
			perm = perm[:len(perm)-1]
			used[idx] = false
		}
	}
	walk()

	return best, bestCost
}

func tourCost(matrix [][]float64, order []int) float64 {
	total := 0.0
	for i := 0; i+1 < len(order); i++ {
		d := matrix[order[i]][order[i+1]]
		if d == Unreachable {
			return Unreachable
		}
		total += d
	}
	return total
}

// nearestNeighbor greedily visits the closest unvisited place from the
// start. O(n^2); trades optimality for bounded runtime on larger sets.
func nearestNeighbor(matrix [][]float64) ([]int, float64) {
	n := len(matrix)
	visited := make([]bool, n)
	order := make([]int, 0, n)

	current := 0
	visited[0] = true
	order = append(order, 0)
	total := 0.0

	for len(order) < n {
		next := -1
		nextCost := Unreachable
		for j := 0; j < n; j++ {
			if visited[j] {
				continue
			}
			if matrix[current][j] < nextCost {
				nextCost = matrix[current][j]
				next = j
			}
		}
		if next < 0 {
			return nil, Unreachable
		}
		visited[next] = true
		order = append(order, next)
		total += nextCost
		current = next
	}

	return order, total
}
