package option

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// DecodeAll builds one entity per raw mapping in parallel, with at most
// limit conversions in flight (no limit when limit <= 0). Results keep the
// input order. The first failure cancels the remaining work and is returned.
func DecodeAll[T Entity](ctx context.Context, newT func() T, raws []map[string]any, limit int) ([]T, error) {
	return BuildAll(ctx, func(raw map[string]any) (T, error) { return Build(newT, raw) }, raws, limit)
}

// BuildAll is DecodeAll for a caller-supplied build function, e.g. one that
// picks the entity from the mapping itself.
func BuildAll[T any](ctx context.Context, build func(map[string]any) (T, error), raws []map[string]any, limit int) ([]T, error) {
	out := make([]T, len(raws))

	g, gctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	for i, raw := range raws {
		i, raw := i, raw
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			e, err := build(raw)
			if err != nil {
				return fmt.Errorf("item %d: %w", i, err)
			}

			out[i] = e

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

// EncodeAll converts entities to trimmed mappings in parallel, keeping order.
func EncodeAll[T Entity](ctx context.Context, entities []T, limit int) ([]map[string]any, error) {
	out := make([]map[string]any, len(entities))

	g, gctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	for i, e := range entities {
		i, e := i, e
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			out[i] = e.ToMapping()

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}
