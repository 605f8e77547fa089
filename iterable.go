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
	"iter"

	"github.com/maguro/osmpbf/internal/decoder"
	"github.com/maguro/osmpbf/internal/pb"
	"github.com/maguro/osmpbf/model"
)

// IterableReader pulls one blob at a time off of the stream and walks its
// nodes, then ways, then relations, resuming on the next blob once the
// current one is exhausted. It is single-threaded, holds a mutable cursor,
// and is not safe to share across goroutines.
type IterableReader struct {
	next func() (*pb.Blob, error, bool)
	stop func()

	pending []model.Entity
	pos     int

	done bool
	err  error
}

// NewIterableReader reads the header synchronously and returns a reader
// positioned at the start of the body.
func NewIterableReader(ctx context.Context, r io.Reader) (*IterableReader, error) {
	if _, err := decoder.LoadHeader(r); err != nil {
		return nil, err
	}

	next, stop := iter.Pull2(decoder.GenerateBlobReader(ctx, r))

	return &IterableReader{next: next, stop: stop}, nil
}

// Next returns the next entity in file order, or io.EOF once the stream is
// exhausted.
func (ir *IterableReader) Next() (model.Entity, error) {
	if ir.err != nil {
		return nil, ir.err
	}

	for ir.pos >= len(ir.pending) {
		if ir.done {
			ir.err = io.EOF

			return nil, io.EOF
		}

		blob, err, more := ir.next()
		if !more {
			ir.done = true

			continue
		}

		if err != nil {
			ir.err = err

			return nil, err
		}

		entities, err := decoder.DecodeBlob(blob)
		if err != nil {
			ir.err = err

			return nil, err
		}

		ir.pending = entities
		ir.pos = 0
	}

	e := ir.pending[ir.pos]
	ir.pos++

	return e, nil
}

// Close stops the underlying blob iterator, releasing any goroutine it
// holds suspended.
func (ir *IterableReader) Close() {
	ir.stop()
}
