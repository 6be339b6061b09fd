package disk

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/knotgrid/gridgraph"
	"github.com/katalvlaran/knotgrid/knot"
)

// Size is the number of rows and columns of a disk grid.
const Size = 128

// RowKey returns the hash input for row i of seed: "seed-i".
func RowKey(seed string, row int) string {
	return fmt.Sprintf("%s-%d", seed, row)
}

// Rows computes the Size bit strings of seed, row i at index i.
// Each row owns its own ring, so rows run on up to o.Workers goroutines
// without sharing state. The first failure cancels the remaining rows.
func Rows(ctx context.Context, seed string, opts ...Option) ([]string, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	rows := make([]string, Size)
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(o.Workers)
	for i := 0; i < Size; i++ {
		i := i
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			d, err := knot.Sum(RowKey(seed, i))
			if err != nil {
				return fmt.Errorf("disk: row %d: %w", i, err)
			}
			rows[i] = d.Bits()
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return rows, nil
}

// Build computes the Size×Size grid of seed. Cell (x,y) is set when bit x
// of row y is '1'. The returned grid is unlabeled.
func Build(ctx context.Context, seed string, opts ...Option) (*gridgraph.Grid, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	rows, err := Rows(ctx, seed, opts...)
	if err != nil {
		return nil, err
	}
	return gridgraph.FromBits(rows, gridgraph.GridOptions{Conn: o.Conn})
}
