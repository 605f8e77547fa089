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

// Package index builds and persists the sparse offset index (".pif" file)
// that lets an indexed reader seek directly to the blob containing a given
// node, way, or relation ID, instead of scanning the whole file.
package index

import (
	"context"
	"crypto/md5" //nolint:gosec // content-addressing checksum, not a security boundary
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/maguro/osmpbf/internal/decoder"
	"github.com/maguro/osmpbf/model"
)

// Kind identifies which of the three ordered maps a record belongs to.
type Kind uint8

const (
	KindNode     Kind = 1
	KindWay      Kind = 2
	KindRelation Kind = 3
)

// ErrNotPbf is returned when a path presented to PathFor does not end in
// ".pbf".
var ErrNotPbf = errors.New("index: not a .pbf file")

// ErrChecksumMismatch is returned by tryLoad when the persisted checksum does
// not match the current content of the PBF file it indexes; Open recovers
// from it by rebuilding the index.
var ErrChecksumMismatch = errors.New("index: checksum mismatch")

// Index is a persisted mapping from entity ID to the file offset of the
// blob that contains it, one ordered map per entity family.
type Index struct {
	nodes     offsetMap
	ways      offsetMap
	relations offsetMap
}

// PathFor derives the sidecar index path for a PBF file: foo.osm.pbf ->
// foo.osm.pif.
func PathFor(pbfPath string) (string, error) {
	if !strings.HasSuffix(pbfPath, ".pbf") {
		return "", fmt.Errorf("%w: %s", ErrNotPbf, pbfPath)
	}

	dot := strings.LastIndex(pbfPath, ".")

	return pbfPath[:dot] + ".pif", nil
}

// Open loads the index for pbfPath from its sidecar .pif file, rebuilding
// and persisting it when the sidecar is absent or its checksum no longer
// matches the PBF file's content.
func Open(ctx context.Context, pbfPath string) (*Index, error) {
	indexPath, err := PathFor(pbfPath)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(pbfPath)
	if err != nil {
		return nil, fmt.Errorf("index: opening %s: %w", pbfPath, err)
	}
	defer f.Close()

	sum, err := checksum(f)
	if err != nil {
		return nil, err
	}

	if idx, err := tryLoad(indexPath, sum); err == nil {
		return idx, nil
	}

	idx, err := Build(ctx, f)
	if err != nil {
		return nil, err
	}

	if err := idx.persist(indexPath, sum); err != nil {
		return nil, err
	}

	return idx, nil
}

// tryLoad loads indexPath and verifies it against sum, the current PBF
// file's checksum. Any failure, including a checksum mismatch, is reported
// as an error so the caller falls back to rebuilding.
func tryLoad(indexPath string, sum string) (*Index, error) {
	f, err := os.Open(indexPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	idx, fileSum, err := load(f)
	if err != nil {
		return nil, err
	}

	if fileSum != sum {
		return nil, fmt.Errorf("%w: %s", ErrChecksumMismatch, indexPath)
	}

	return idx, nil
}

// checksum computes the lower-hex MD5 of the entire content of r, leaving r
// positioned at the start.
func checksum(r io.ReadSeeker) (string, error) {
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return "", fmt.Errorf("index: seeking to compute checksum: %w", err)
	}

	h := md5.New() //nolint:gosec // content-addressing checksum, not a security boundary

	if _, err := io.Copy(h, r); err != nil {
		return "", fmt.Errorf("index: computing checksum: %w", err)
	}

	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return "", fmt.Errorf("index: seeking after checksum: %w", err)
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}

// Build streams r once, recording the file offset of each blob against the
// last (greatest) ID of each entity family present in it.
func Build(ctx context.Context, r io.ReadSeeker) (*Index, error) {
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("index: seeking to build: %w", err)
	}

	if _, err := decoder.LoadHeader(r); err != nil {
		return nil, fmt.Errorf("index: reading header: %w", err)
	}

	idx := &Index{}

	var buildErr error

	decoder.GenerateOffsetBlobReader(ctx, r)(func(at decoder.BlobAt, err error) bool {
		if err != nil {
			buildErr = err

			return false
		}

		entities, err := decoder.DecodeBlob(at.Blob)
		if err != nil {
			buildErr = err

			return false
		}

		idx.recordBlob(entities, uint64(at.Offset))

		return true
	})

	if buildErr != nil {
		return nil, buildErr
	}

	return idx, nil
}

// recordBlob updates each family's offset map with the last ID present
// among entities, if any.
func (idx *Index) recordBlob(entities []model.Entity, offset uint64) {
	var lastNode, lastWay, lastRelation model.ID

	var haveNode, haveWay, haveRelation bool

	for _, e := range entities {
		switch e.(type) {
		case *model.Node:
			lastNode, haveNode = e.GetID(), true
		case *model.Way:
			lastWay, haveWay = e.GetID(), true
		case *model.Relation:
			lastRelation, haveRelation = e.GetID(), true
		}
	}

	if haveNode {
		idx.nodes.set(int64(lastNode), offset)
	}

	if haveWay {
		idx.ways.set(int64(lastWay), offset)
	}

	if haveRelation {
		idx.relations.set(int64(lastRelation), offset)
	}
}

// OffsetFor returns the offset of the blob that contains id, per kind's
// ceiling query, and whether such a blob exists.
func (idx *Index) OffsetFor(kind Kind, id model.ID) (uint64, bool) {
	switch kind {
	case KindNode:
		return idx.nodes.ceiling(int64(id))
	case KindWay:
		return idx.ways.ceiling(int64(id))
	case KindRelation:
		return idx.relations.ceiling(int64(id))
	default:
		return 0, false
	}
}

// persist writes the index, prefixed by checksum, to indexPath.
func (idx *Index) persist(indexPath string, checksum string) error {
	f, err := os.Create(indexPath)
	if err != nil {
		return fmt.Errorf("index: creating %s: %w", indexPath, err)
	}
	defer f.Close()

	if _, err := io.WriteString(f, checksum); err != nil {
		return fmt.Errorf("index: writing checksum: %w", err)
	}

	for kind, m := range map[Kind]*offsetMap{KindNode: &idx.nodes, KindWay: &idx.ways, KindRelation: &idx.relations} {
		if err := persistMap(f, m, kind); err != nil {
			return err
		}
	}

	if _, err := f.Write([]byte{0}); err != nil {
		return fmt.Errorf("index: writing terminator: %w", err)
	}

	return nil
}

func persistMap(w io.Writer, m *offsetMap, kind Kind) error {
	var recErr error

	m.each(func(id int64, offset uint64) {
		if recErr != nil {
			return
		}

		recErr = writeRecord(w, kind, id, offset)
	})

	return recErr
}

func writeRecord(w io.Writer, kind Kind, id int64, offset uint64) error {
	if _, err := w.Write([]byte{byte(kind)}); err != nil {
		return fmt.Errorf("index: writing record kind: %w", err)
	}

	if err := binary.Write(w, binary.LittleEndian, id); err != nil {
		return fmt.Errorf("index: writing record id: %w", err)
	}

	if err := binary.Write(w, binary.LittleEndian, offset); err != nil {
		return fmt.Errorf("index: writing record offset: %w", err)
	}

	return nil
}

// load reads a persisted index, returning it along with the checksum it was
// persisted against.
func load(r io.Reader) (*Index, string, error) {
	sumBytes := make([]byte, 32)
	if _, err := io.ReadFull(r, sumBytes); err != nil {
		return nil, "", fmt.Errorf("index: reading checksum: %w", err)
	}

	idx := &Index{}

	for {
		var kindByte [1]byte

		if _, err := io.ReadFull(r, kindByte[:]); err != nil {
			return nil, "", fmt.Errorf("index: reading record kind: %w", err)
		}

		if kindByte[0] == 0 {
			break
		}

		var id int64
		if err := binary.Read(r, binary.LittleEndian, &id); err != nil {
			return nil, "", fmt.Errorf("index: reading record id: %w", err)
		}

		var offset uint64
		if err := binary.Read(r, binary.LittleEndian, &offset); err != nil {
			return nil, "", fmt.Errorf("index: reading record offset: %w", err)
		}

		switch Kind(kindByte[0]) {
		case KindNode:
			idx.nodes.set(id, offset)
		case KindWay:
			idx.ways.set(id, offset)
		case KindRelation:
			idx.relations.set(id, offset)
		default:
			return nil, "", fmt.Errorf("index: unsupported record kind %d", kindByte[0])
		}
	}

	return idx, string(sumBytes), nil
}
