// SPDX-License-Identifier: MIT
// Package: lvlbfs/builder
//
// file.go — edge-list loaders.
//
// Format: ASCII, whitespace-separated non-negative integer pairs "u v",
// one directed edge per pair. Vertex ids need not be contiguous or
// zero-based; they are remapped to internal ids in the order first
// encountered. A token that is not an integer (or a trailing odd token)
// terminates the parse; everything read up to that point is kept. Line
// breaks count as plain whitespace, so a line holding a single integer
// does not end the parse: that integer pairs with the next token. A read
// error from the underlying reader also ends the parse unreported.

package builder

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/lvlbfs/core"
)

// FromFile reads a whitespace-separated edge list from path and builds a
// CSR graph. Returns ErrRead (wrapped) when the file cannot be opened.
func FromFile(path string) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%s: open %q: %w: %v", methodFromFile, path, ErrRead, err)
	}
	defer f.Close()

	return FromReader(f)
}

// FromReader builds a CSR graph from an edge list streamed off r.
// Returns ErrTooFewVertices when the stream contains no edges at all.
func FromReader(r io.Reader) (*core.Graph, error) {
	br := bufio.NewReader(r)

	// Remap endpoint ids to contiguous internal ids, first encounter wins.
	remap := make(map[int]int32)
	intern := func(raw int) int32 {
		if id, ok := remap[raw]; ok {
			return id
		}
		id := int32(len(remap))
		remap[raw] = id

		return id
	}

	var src, dst []int32
	for {
		var u, v int
		n, err := fmt.Fscan(br, &u, &v)
		if n < 2 {
			// Short or malformed record: stop, keep what we have.
			break
		}
		src = append(src, intern(u))
		dst = append(dst, intern(v))
		if err != nil {
			break
		}
	}

	if len(remap) == 0 {
		return nil, fmt.Errorf("%s: empty edge list: %w", methodFromReader, ErrTooFewVertices)
	}

	return csrFromPairs(len(remap), src, dst)
}
