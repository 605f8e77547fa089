// Copyright 2025 the original author or authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package pbf

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/maguro/osmpbf/internal/decoder"
	"github.com/maguro/osmpbf/internal/index"
	"github.com/maguro/osmpbf/model"
)

// readerOptions provides optional configuration parameters for IndexedReader
// construction.
type readerOptions struct {
	cacheCapacity int
	cycleSafe     bool
}

// ReaderOption configures how we set up an IndexedReader.
type ReaderOption func(*readerOptions)

// WithCache gives the reader an LRU block cache of the given blob capacity,
// interposed between it and the underlying file. A capacity of 0 (the
// default) disables caching.
func WithCache(capacity int) ReaderOption {
	return func(o *readerOptions) {
		o.cacheCapacity = capacity
	}
}

// WithCycleSafety controls whether GetWithDeps guards against relation
// cycles. It defaults to true; pass false to restore the naive recursive
// behaviour, under which a relation cycle recurses without bound.
func WithCycleSafety(safe bool) ReaderOption {
	return func(o *readerOptions) {
		o.cycleSafe = safe
	}
}

var defaultReaderConfig = readerOptions{cycleSafe: true}

// IndexedReader provides point, batch, and transitive-dependency lookups
// against a PBF file, backed by its sparse ".pif" offset index (see
// internal/index). It holds a mutable cursor over the underlying file and,
// like every other stateful reader in this package, is not safe to share
// across goroutines.
type IndexedReader struct {
	r      io.ReadSeeker
	closer io.Closer
	idx    *index.Index
	cache  *blobCache

	cycleSafe bool
}

// OpenIndexedReader opens the PBF file at path and loads (building and
// persisting it first, if necessary) its sidecar sparse index.
func OpenIndexedReader(ctx context.Context, path string, opts ...ReaderOption) (*IndexedReader, error) {
	cfg := defaultReaderConfig

	for _, opt := range opts {
		opt(&cfg)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("pbf: opening %s: %w", path, err)
	}

	idx, err := index.Open(ctx, path)
	if err != nil {
		f.Close()

		return nil, err
	}

	ir := &IndexedReader{r: f, closer: f, idx: idx, cycleSafe: cfg.cycleSafe}

	if cfg.cacheCapacity > 0 {
		cache, err := newBlobCache(cfg.cacheCapacity)
		if err != nil {
			f.Close()

			return nil, err
		}

		ir.cache = cache
	}

	return ir, nil
}

// Close releases the underlying file.
func (ir *IndexedReader) Close() error {
	if ir.closer == nil {
		return nil
	}

	return ir.closer.Close()
}

// entitiesAt returns the decoded entities of the blob at offset, consulting
// and populating the block cache when one is configured.
func (ir *IndexedReader) entitiesAt(offset uint64) ([]model.Entity, error) {
	if ir.cache != nil {
		if entities, ok := ir.cache.get(offset); ok {
			return entities, nil
		}
	}

	blob, err := decoder.ReadBlobAt(ir.r, int64(offset))
	if err != nil {
		return nil, err
	}

	entities, err := decoder.DecodeBlob(blob)
	if err != nil {
		return nil, err
	}

	if ir.cache != nil {
		ir.cache.set(offset, entities)
	}

	return entities, nil
}

// FindNode looks up the node with id, consulting the index; it returns nil
// when the node is not present in the file.
func (ir *IndexedReader) FindNode(id ID) (*Node, error) {
	offset, ok := ir.idx.OffsetFor(index.KindNode, id)
	if !ok {
		return nil, nil
	}

	entities, err := ir.entitiesAt(offset)
	if err != nil {
		return nil, err
	}

	for _, e := range entities {
		if n, ok := e.(*Node); ok && n.ID == id {
			return n, nil
		}
	}

	return nil, nil
}

// FindWay looks up the way with id.
func (ir *IndexedReader) FindWay(id ID) (*Way, error) {
	offset, ok := ir.idx.OffsetFor(index.KindWay, id)
	if !ok {
		return nil, nil
	}

	entities, err := ir.entitiesAt(offset)
	if err != nil {
		return nil, err
	}

	for _, e := range entities {
		if w, ok := e.(*Way); ok && w.ID == id {
			return w, nil
		}
	}

	return nil, nil
}

// FindRelation looks up the relation with id.
func (ir *IndexedReader) FindRelation(id ID) (*Relation, error) {
	offset, ok := ir.idx.OffsetFor(index.KindRelation, id)
	if !ok {
		return nil, nil
	}

	entities, err := ir.entitiesAt(offset)
	if err != nil {
		return nil, err
	}

	for _, e := range entities {
		if r, ok := e.(*Relation); ok && r.ID == id {
			return r, nil
		}
	}

	return nil, nil
}

// Find looks up an entity of the given type by id.
func (ir *IndexedReader) Find(kind EntityType, id ID) (Entity, error) {
	switch kind {
	case NODE:
		n, err := ir.FindNode(id)
		if n == nil || err != nil {
			return nil, err
		}

		return n, nil
	case WAY:
		w, err := ir.FindWay(id)
		if w == nil || err != nil {
			return nil, err
		}

		return w, nil
	default:
		r, err := ir.FindRelation(id)
		if r == nil || err != nil {
			return nil, err
		}

		return r, nil
	}
}

// FindNodes resolves every id to its containing blob's offset, coalesces
// duplicate offsets, reads each unique blob once, and returns every node
// whose ID was requested. The order of the returned slice is unspecified.
func (ir *IndexedReader) FindNodes(ids []ID) ([]*Node, error) {
	wanted := make(map[ID]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}

	offsets := ir.uniqueOffsets(index.KindNode, ids)

	var result []*Node

	for offset := range offsets {
		entities, err := ir.entitiesAt(offset)
		if err != nil {
			return nil, err
		}

		for _, e := range entities {
			if n, ok := e.(*Node); ok && wanted[n.ID] {
				result = append(result, n)
			}
		}
	}

	return result, nil
}

// FindWays is the batch form of FindWay.
func (ir *IndexedReader) FindWays(ids []ID) ([]*Way, error) {
	wanted := make(map[ID]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}

	offsets := ir.uniqueOffsets(index.KindWay, ids)

	var result []*Way

	for offset := range offsets {
		entities, err := ir.entitiesAt(offset)
		if err != nil {
			return nil, err
		}

		for _, e := range entities {
			if w, ok := e.(*Way); ok && wanted[w.ID] {
				result = append(result, w)
			}
		}
	}

	return result, nil
}

// FindRelations is the batch form of FindRelation.
func (ir *IndexedReader) FindRelations(ids []ID) ([]*Relation, error) {
	wanted := make(map[ID]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}

	offsets := ir.uniqueOffsets(index.KindRelation, ids)

	var result []*Relation

	for offset := range offsets {
		entities, err := ir.entitiesAt(offset)
		if err != nil {
			return nil, err
		}

		for _, e := range entities {
			if r, ok := e.(*Relation); ok && wanted[r.ID] {
				result = append(result, r)
			}
		}
	}

	return result, nil
}

func (ir *IndexedReader) uniqueOffsets(kind index.Kind, ids []ID) map[uint64]struct{} {
	offsets := make(map[uint64]struct{}, len(ids))

	for _, id := range ids {
		if offset, ok := ir.idx.OffsetFor(kind, id); ok {
			offsets[offset] = struct{}{}
		}
	}

	return offsets
}

// GetWithDeps resolves an entity and every entity it transitively depends
// on: a way's nodes, or a relation's member nodes and the recursive
// expansion of its member ways and relations. A node's "dependencies" are
// itself. When WithCycleSafety is in effect (the default), each relation ID
// is expanded at most once.
func (ir *IndexedReader) GetWithDeps(kind EntityType, id ID) ([]Entity, error) {
	switch kind {
	case NODE:
		n, err := ir.FindNode(id)
		if err != nil || n == nil {
			return nil, err
		}

		return []Entity{n}, nil
	case WAY:
		return ir.wayWithDeps(id)
	default:
		visited := make(map[ID]struct{})

		return ir.relationWithDeps(id, visited)
	}
}

func (ir *IndexedReader) wayWithDeps(id ID) ([]Entity, error) {
	way, err := ir.FindWay(id)
	if err != nil || way == nil {
		return nil, err
	}

	nodes, err := ir.FindNodes(way.NodeIDs)
	if err != nil {
		return nil, err
	}

	result := make([]Entity, 0, 1+len(nodes))
	result = append(result, way)

	for _, n := range nodes {
		result = append(result, n)
	}

	return result, nil
}

func (ir *IndexedReader) relationWithDeps(id ID, visited map[ID]struct{}) ([]Entity, error) {
	if ir.cycleSafe {
		if _, seen := visited[id]; seen {
			return nil, nil
		}

		visited[id] = struct{}{}
	}

	relation, err := ir.FindRelation(id)
	if err != nil || relation == nil {
		return nil, err
	}

	result := []Entity{relation}

	var nodeIDs, wayIDs, relationIDs []ID

	for _, m := range relation.Members {
		switch m.Type {
		case NODE:
			nodeIDs = append(nodeIDs, m.ID)
		case WAY:
			wayIDs = append(wayIDs, m.ID)
		case RELATION:
			relationIDs = append(relationIDs, m.ID)
		}
	}

	nodes, err := ir.FindNodes(nodeIDs)
	if err != nil {
		return nil, err
	}

	for _, n := range nodes {
		result = append(result, n)
	}

	for _, wayID := range wayIDs {
		deps, err := ir.wayWithDeps(wayID)
		if err != nil {
			return nil, err
		}

		result = append(result, deps...)
	}

	for _, relationID := range relationIDs {
		deps, err := ir.relationWithDeps(relationID, visited)
		if err != nil {
			return nil, err
		}

		result = append(result, deps...)
	}

	return result, nil
}
