package travelmatrix

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidDimensions indicates a requested matrix size is non-positive.
var ErrInvalidDimensions = errors.New("travelmatrix: dimensions must be > 0")

// ErrIndexOutOfBounds indicates a row or column index outside [0, n).
var ErrIndexOutOfBounds = errors.New("travelmatrix: index out of bounds")

// ErrNonSquare indicates a distance/height-gain table is not square.
var ErrNonSquare = errors.New("travelmatrix: distance table is not square")

// ErrNegativeInput indicates a negative km or height-gain reading.
var ErrNegativeInput = errors.New("travelmatrix: negative distance or height gain")

// ErrNonPositiveSpeed indicates SpeedKmh <= 0.
var ErrNonPositiveSpeed = errors.New("travelmatrix: speed must be positive")

// ErrNonPositiveNaismith indicates NaismithCoeff <= 0.
var ErrNonPositiveNaismith = errors.New("travelmatrix: naismith coefficient must be positive")

// Matrix is a dense, row-major n×n matrix of non-negative minute values,
// with +Inf marking an unreachable ordered pair. It stores elements in a
// flat slice for cache-friendly hot-loop access from the DP engine.
type Matrix struct {
	n    int
	data []float64
}

// NewMatrix allocates an n×n Matrix with every entry set to +Inf
// (unreachable by default; callers populate finite entries explicitly).
//
// Complexity: O(n^2) time and memory.
func NewMatrix(n int) (*Matrix, error) {
	if n <= 0 {
		return nil, ErrInvalidDimensions
	}
	data := make([]float64, n*n)
	for i := range data {
		data[i] = math.Inf(1)
	}

	return &Matrix{n: n, data: data}, nil
}

// N returns the matrix order.
func (m *Matrix) N() int {
	return m.n
}

func (m *Matrix) index(i, j int) (int, error) {
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		return 0, fmt.Errorf("travelmatrix: At(%d,%d): %w", i, j, ErrIndexOutOfBounds)
	}
	return i*m.n + j, nil
}

// At returns the travel time from i to j in minutes.
//
// Complexity: O(1).
func (m *Matrix) At(i, j int) (float64, error) {
	idx, err := m.index(i, j)
	if err != nil {
		return 0, err
	}
	return m.data[idx], nil
}

// Set assigns the travel time from i to j in minutes.
//
// Complexity: O(1).
func (m *Matrix) Set(i, j int, v float64) error {
	idx, err := m.index(i, j)
	if err != nil {
		return err
	}
	m.data[idx] = v
	return nil
}

// DistanceTable holds the directional distance (km) and ascent (metres)
// readings between every ordered pair of an ALL×ALL index space. It is
// the external collaborator's output; travelmatrix only projects it.
type DistanceTable struct {
	// KM[i][j] is the great-circle or path distance from i to j, km.
	KM [][]float64

	// HeightGainM[i][j] is the total ascent walking from i to j, metres.
	// Directional: HeightGainM[i][j] need not equal HeightGainM[j][i].
	HeightGainM [][]float64
}

// Project derives an ALL×ALL travel-time Matrix from a DistanceTable at
// the given walking speed and Naismith coefficient:
//
//	T[i][j] = (km(i,j) / speed) * 60 + (height_gain_m(i,j) / naismith)
//
// A km or height-gain reading of +Inf yields an unreachable T[i][j] of
// +Inf; any other negative reading returns ErrNegativeInput. T[i][i] is
// left at the default +Inf; callers never read it.
//
// Complexity: O(n^2).
func Project(table DistanceTable, speedKmh, naismithCoeff float64) (*Matrix, error) {
	n := len(table.KM)
	if n == 0 || len(table.HeightGainM) != n {
		return nil, ErrNonSquare
	}
	if speedKmh <= 0 {
		return nil, ErrNonPositiveSpeed
	}
	if naismithCoeff <= 0 {
		return nil, ErrNonPositiveNaismith
	}

	m, err := NewMatrix(n)
	if err != nil {
		return nil, err
	}

	for i := 0; i < n; i++ {
		if len(table.KM[i]) != n || len(table.HeightGainM[i]) != n {
			return nil, ErrNonSquare
		}
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			km := table.KM[i][j]
			gain := table.HeightGainM[i][j]
			if math.IsInf(km, 1) || math.IsInf(gain, 1) {
				continue // leave +Inf
			}
			if km < 0 || gain < 0 {
				return nil, ErrNegativeInput
			}
			travel := (km/speedKmh)*60 + gain/naismithCoeff
			if err := m.Set(i, j, travel); err != nil {
				return nil, err
			}
		}
	}

	return m, nil
}
