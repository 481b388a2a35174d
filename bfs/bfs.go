// Package bfs implements the serial oracle traversal over a core.Graph.
package bfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlbfs/core"
	"github.com/katalvlaran/lvlbfs/dist"
)

// Sentinel errors for oracle execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrSourceRange is returned when the source id lies outside [0, V).
	ErrSourceRange = errors.New("bfs: source vertex out of range")

	// ErrVectorLength is returned when the distance vector is not sized
	// to the graph's vertex count.
	ErrVectorLength = errors.New("bfs: distance vector length mismatch")
)

// Baseline runs a canonical serial BFS from source and fills d with
// unit-weight shortest-path distances; unreachable vertices are left at
// dist.Unreached.
//
// d is reset to Unreached before traversal. The caller owns d afterwards.
func Baseline(g *core.Graph, source int32, d *dist.Vector) error {
	if g == nil {
		return ErrGraphNil
	}
	v := g.VertexCount()
	if source < 0 || int(source) >= v {
		return fmt.Errorf("Baseline: source=%d, V=%d: %w", source, v, ErrSourceRange)
	}
	if d.Len() != v {
		return fmt.Errorf("Baseline: len(d)=%d, V=%d: %w", d.Len(), v, ErrVectorLength)
	}

	d.Fill(dist.Unreached)
	d.Store(source, 0)

	view := g.RawView()
	queue := make([]int32, 0, v)
	queue = append(queue, source)

	for head := 0; head < len(queue); head++ {
		u := queue[head]
		du := d.Load(u)
		for _, w := range view.Edges[view.Offsets[u]:view.Offsets[u+1]] {
			if d.Load(w) == dist.Unreached {
				d.Store(w, du+1)
				queue = append(queue, w)
			}
		}
	}

	return nil
}
