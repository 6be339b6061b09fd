package disk

import "context"

// Used returns the number of set cells in the grid of seed.
func Used(ctx context.Context, seed string, opts ...Option) (int, error) {
	g, err := Build(ctx, seed, opts...)
	if err != nil {
		return 0, err
	}
	return g.SetCount(), nil
}

// RegionCount returns the number of connected regions of set cells in the
// grid of seed.
func RegionCount(ctx context.Context, seed string, opts ...Option) (int, error) {
	g, err := Build(ctx, seed, opts...)
	if err != nil {
		return 0, err
	}
	return g.LabelRegions(), nil
}
