// Copyright 2017-25 the original author or authors.
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

// Package pbf reads and writes OpenStreetMap PBF data
// (https://wiki.openstreetmap.org/wiki/PBF_Format).
package pbf

import (
	"context"
	"io"

	"github.com/maguro/osmpbf/internal/decoder"
	"github.com/maguro/osmpbf/internal/pb"
	"github.com/maguro/osmpbf/model"
)

type pair struct {
	entity model.Entity
	err    error
}

// Decoder reads and decodes OpenStreetMap PBF data from an input stream. The
// header is read synchronously by NewDecoder; the body is decoded
// concurrently across decoderOptions.nCPU workers and delivered, in the
// order it appeared on the wire, through Decode.
type Decoder struct {
	Header model.Header

	pairs  <-chan pair
	cancel context.CancelFunc
}

// NewDecoder returns a new decoder, configured with opts, that reads from
// reader. The decoder is initialized with the OSM header before it returns.
func NewDecoder(ctx context.Context, reader io.Reader, opts ...DecoderOption) (*Decoder, error) {
	cfg := defaultDecoderConfig

	for _, opt := range opts {
		opt(&cfg)
	}

	header, err := decoder.LoadHeader(reader)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(ctx)

	batches := batchBlobs(decoder.GenerateBlobReader(ctx, reader), cfg.protoBatchSize)

	var outputs []<-chan pair
	for _, in := range fanOutBatches(batches, cfg.nCPU) {
		outputs = append(outputs, decodeBatches(in))
	}

	d := &Decoder{
		Header: header,
		pairs:  coalescePairs(outputs...),
		cancel: cancel,
	}

	return d, nil
}

// Decode reads the next OSM entity and returns either a *model.Node,
// *model.Way, or *model.Relation, or the error encountered. The end of the
// input stream is reported by an io.EOF error.
func (d *Decoder) Decode() (model.Entity, error) {
	p, more := <-d.pairs
	if !more {
		return nil, io.EOF
	}

	return p.entity, p.err
}

// Close cancels the background decoding pipeline.
func (d *Decoder) Close() {
	d.cancel()
}

// Read drives the decoder sequentially, invoking headerCB once with the
// header and elementCB once per entity, in file order. It is the
// single-threaded callback-read mode: headerCB or elementCB returning an
// error stops the scan and Read returns that error.
func (d *Decoder) Read(headerCB func(model.Header) error, elementCB func(model.Entity) error) error {
	if headerCB != nil {
		if err := headerCB(d.Header); err != nil {
			return err
		}
	}

	for {
		entity, err := d.Decode()
		if err == io.EOF {
			return nil
		} else if err != nil {
			return err
		}

		if elementCB != nil {
			if err := elementCB(entity); err != nil {
				return err
			}
		}
	}
}

// blobBatch is a group of blobs to be decoded together, or a terminal read
// error.
type blobBatch struct {
	blobs []*pb.Blob
	err   error
}

// batchBlobs groups the blobs produced by seq into batches of up to size,
// so that each downstream worker amortizes its protobuf unmarshaling over
// more than one blob at a time.
func batchBlobs(seq func(yield func(*pb.Blob, error) bool), size int) <-chan blobBatch {
	out := make(chan blobBatch)

	go func() {
		defer close(out)

		batch := make([]*pb.Blob, 0, size)

		seq(func(blob *pb.Blob, err error) bool {
			if err != nil {
				out <- blobBatch{err: err}

				return false
			}

			batch = append(batch, blob)

			if len(batch) >= size {
				out <- blobBatch{blobs: batch}
				batch = make([]*pb.Blob, 0, size)
			}

			return true
		})

		if len(batch) > 0 {
			out <- blobBatch{blobs: batch}
		}
	}()

	return out
}

// fanOutBatches distributes batches across n channels in round-robin order,
// one channel per decoding worker.
func fanOutBatches(in <-chan blobBatch, n uint16) []<-chan blobBatch {
	if n == 0 {
		n = 1
	}

	chans := make([]chan blobBatch, n)
	for i := range chans {
		chans[i] = make(chan blobBatch, 1)
	}

	go func() {
		defer func() {
			for _, ch := range chans {
				close(ch)
			}
		}()

		var i uint16

		for batch := range in {
			chans[i] <- batch
			i = (i + 1) % n
		}
	}()

	outs := make([]<-chan blobBatch, n)
	for i, ch := range chans {
		outs[i] = ch
	}

	return outs
}

// decodeBatches unpacks and parses each batch read off of in, emitting one
// pair per decoded entity in wire order.
func decodeBatches(in <-chan blobBatch) <-chan pair {
	out := make(chan pair)

	go func() {
		defer close(out)

		for batch := range in {
			if batch.err != nil {
				out <- pair{err: batch.err}

				return
			}

			for result := range decoder.DecodeBatch(batch.blobs) {
				if result.Error != nil {
					out <- pair{err: result.Error}

					return
				}

				for _, e := range result.Value {
					out <- pair{entity: e}
				}
			}
		}
	}()

	return out
}

// coalescePairs merges the worker output channels in round-robin order,
// restoring the original wire order of the decoded entities.
func coalescePairs(outputs ...<-chan pair) <-chan pair {
	out := make(chan pair)

	go func() {
		defer close(out)

		n := len(outputs)
		var i int

		for {
			output := outputs[i]
			i = (i + 1) % n

			p, more := <-output
			if !more {
				// Channels are inspected round-robin, so once one is
				// drained every subsequent channel is done too.
				return
			}

			out <- p

			if p.err != nil {
				return
			}
		}
	}()

	return out
}
