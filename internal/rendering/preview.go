package rendering

import (
	"context"

	"github.com/jonathan/resume-builder/internal/types"
	"golang.org/x/sync/errgroup"
)

// Preview renders doc with every registered template concurrently.
// Trees are returned in registry order.
func (r *Renderer) Preview(ctx context.Context, doc *types.ResumeDocument, accent Accent) ([]RenderedTree, error) {
	if doc == nil {
		return nil, ErrNilDocument
	}
	if err := ValidateAccent(accent); err != nil {
		return nil, err
	}

	kinds := r.registry.List()
	trees := make([]RenderedTree, len(kinds))

	g, ctx := errgroup.WithContext(ctx)
	for i, kind := range kinds {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			tree, err := r.Render(kind, doc, accent)
			if err != nil {
				return &RenderError{Message: "preview " + string(kind), Cause: err}
			}
			trees[i] = *tree
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return trees, nil
}
