package floydwarshall

import (
	"fmt"
	"math"

	"github.com/katalvlaran/densegraph/core"
	"github.com/katalvlaran/densegraph/matrix"
)

// FloydWarshall returns the n×n shortest-distance matrix of g.
//
// The result is a fresh *matrix.Dense owned by the caller: +Inf where j is
// unreachable from i, 0 on the diagonal unless g carries a finite non-zero
// self-weight or a negative cycle passes through i.
//
// Complexity: O(n³) time, O(n²) memory.
func FloydWarshall(g *core.WeightedGraph, opts ...Option) (*matrix.Dense, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if g == nil {
		return nil, ErrNilGraph
	}

	dist := g.Matrix()
	n := dist.Rows()
	for i := 0; i < n; i++ {
		row := dist.RowView(i)
		if row[i] == core.Inf {
			row[i] = 0
		}
	}

	relax(dist)

	if cfg.CheckNegativeCycle {
		for i := 0; i < n; i++ {
			if d := dist.RowView(i)[i]; d < 0 {
				return nil, fmt.Errorf("%w: through vertex %d (dist=%g)", ErrNegativeCycle, i, d)
			}
		}
	}

	return dist, nil
}

// InPlace runs the relaxation kernel directly on m. The caller prepares the
// diagonal (normally 0) and uses +Inf for missing edges. No negative-cycle
// check is performed.
//
// Errors: ErrNilMatrix, or matrix.ErrDimensionMismatch when m is not square.
func InPlace(m *matrix.Dense) error {
	if m == nil {
		return ErrNilMatrix
	}
	if err := matrix.ValidateSquare(m); err != nil {
		return fmt.Errorf("floydwarshall: InPlace: %w", err)
	}
	relax(m)

	return nil
}

// relax is the k→i→j kernel. Loop order is fixed; only strict improvements
// are written, so equal-length alternatives never overwrite each other.
func relax(d *matrix.Dense) {
	n := d.Rows()

	var (
		k, i, j    int
		rowK, rowI []float64
		ik, cand   float64
	)
	for k = 0; k < n; k++ {
		rowK = d.RowView(k)
		for i = 0; i < n; i++ {
			rowI = d.RowView(i)
			ik = rowI[k]
			if math.IsInf(ik, 1) {
				continue
			}
			for j = 0; j < n; j++ {
				if math.IsInf(rowK[j], 1) {
					continue
				}
				cand = ik + rowK[j]
				if cand < rowI[j] {
					rowI[j] = cand
				}
			}
		}
	}
}
