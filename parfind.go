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
	"io"

	"github.com/destel/rill"

	"github.com/maguro/osmpbf/internal/decoder"
	"github.com/maguro/osmpbf/internal/pb"
)

// ParFind decodes the blobs read from r on a pool of nWorkers, applies
// predicate to every entity of the requested kind, and concatenates the
// matches into a single slice. A nil kind matches every entity family.
//
// There is no ordering guarantee across blobs; intra-blob order is
// preserved within each worker's partial result. predicate must be safe to
// call concurrently, since it may run on any worker.
func ParFind(ctx context.Context, r io.Reader, kind *EntityType, predicate func(Entity) bool, nWorkers int) ([]Entity, error) {
	if nWorkers < 1 {
		nWorkers = 1
	}

	if _, err := decoder.LoadHeader(r); err != nil {
		return nil, err
	}

	blobs := wrapBlobs(decoder.GenerateBlobReader(ctx, r))

	filtered := rill.OrderedMap(blobs, nWorkers, func(blob *pb.Blob) ([]Entity, error) {
		entities, err := decoder.DecodeBlob(blob)
		if err != nil {
			return nil, err
		}

		matches := make([]Entity, 0, len(entities))

		for _, e := range entities {
			if kind != nil && entityKind(e) != *kind {
				continue
			}

			if predicate(e) {
				matches = append(matches, e)
			}
		}

		return matches, nil
	})

	var result []Entity

	for batch := range filtered {
		if batch.Error != nil {
			return nil, batch.Error
		}

		result = append(result, batch.Value...)
	}

	return result, nil
}

// wrapBlobs adapts the range-over-func blob iterator into the rill.Try
// channel shape rill's combinators consume.
func wrapBlobs(seq func(yield func(*pb.Blob, error) bool)) <-chan rill.Try[*pb.Blob] {
	out := make(chan rill.Try[*pb.Blob])

	go func() {
		defer close(out)

		seq(func(blob *pb.Blob, err error) bool {
			if err != nil {
				out <- rill.Try[*pb.Blob]{Error: err}

				return false
			}

			out <- rill.Try[*pb.Blob]{Value: blob}

			return true
		})
	}()

	return out
}

// entityKind reports the EntityType of a decoded entity.
func entityKind(e Entity) EntityType {
	switch e.(type) {
	case *Node:
		return NODE
	case *Way:
		return WAY
	default:
		return RELATION
	}
}
