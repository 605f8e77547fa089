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

package decoder

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/protoadapt"

	"github.com/maguro/osmpbf/internal/core"
	"github.com/maguro/osmpbf/internal/pb"
)

// GenerateBlobReader creates an iterator that returns primitive blobs read
// off of the reader.
func GenerateBlobReader(ctx context.Context, reader io.Reader) func(yield func(enc *pb.Blob, err error) bool) {
	return func(yield func(enc *pb.Blob, err error) bool) {
		for {
			select {
			case <-ctx.Done():
				return
			default:
			}

			_, blob, err := readBlob(reader)
			if err != nil {
				if !errors.Is(err, io.EOF) {
					slog.Error("unable to read blob", "error", err)
					yield(nil, err)
				}

				return
			}

			if !yield(blob, nil) {
				return
			}
		}
	}
}

// BlobAt is a blob read off of a random-access source together with the
// file offset its BlobHeader started at.
type BlobAt struct {
	Offset int64
	Blob   *pb.Blob
}

// GenerateOffsetBlobReader is like GenerateBlobReader but also reports, for
// every blob yielded, the file offset its BlobHeader started at. Callers
// (the sparse index builder) use the offsets to later seek directly to a
// blob with ReadBlobAt.
func GenerateOffsetBlobReader(ctx context.Context, reader io.ReadSeeker) func(yield func(BlobAt, error) bool) {
	return func(yield func(BlobAt, error) bool) {
		for {
			select {
			case <-ctx.Done():
				return
			default:
			}

			offset, err := reader.Seek(0, io.SeekCurrent)
			if err != nil {
				yield(BlobAt{}, fmt.Errorf("error seeking blob offset: %w", err))

				return
			}

			_, blob, err := readBlob(reader)
			if err != nil {
				if !errors.Is(err, io.EOF) {
					slog.Error("unable to read blob", "error", err)
					yield(BlobAt{}, err)
				}

				return
			}

			if !yield(BlobAt{Offset: offset, Blob: blob}, nil) {
				return
			}
		}
	}
}

// ReadBlobAt seeks to offset and reads the blob found there. The reader
// is left positioned just after the blob.
func ReadBlobAt(reader io.ReadSeeker, offset int64) (*pb.Blob, error) {
	if _, err := reader.Seek(offset, io.SeekStart); err != nil {
		return nil, fmt.Errorf("error seeking to blob offset %d: %w", offset, err)
	}

	_, blob, err := readBlob(reader)

	return blob, err
}

// readBlob reads a BlobHeader followed by its Blob off of rdr.
func readBlob(rdr io.Reader) (*pb.BlobHeader, *pb.Blob, error) {
	h, err := readBlobHeader(rdr)
	if err != nil {
		return nil, nil, err
	}

	b, err := readBlobData(rdr, int64(h.GetDatasize()))
	if err != nil {
		return nil, nil, fmt.Errorf("error reading blob: %w", err)
	}

	return h, b, nil
}

// readBlobHeader unmarshals a header from an array of protobuf encoded bytes.
// The header is used when decoding blobs into OSM elements.
func readBlobHeader(rdr io.Reader) (header *pb.BlobHeader, err error) {
	buf := core.NewPooledBuffer()
	defer buf.Close()

	var size uint32

	err = binary.Read(rdr, binary.BigEndian, &size)
	if err != nil {
		return nil, fmt.Errorf("error reading blob size: %w", err)
	}

	if n, err := io.CopyN(buf, rdr, int64(size)); err != nil {
		return nil, fmt.Errorf("error reading blob: %w", err)
	} else if n != int64(size) {
		return nil, fmt.Errorf("error reading blob: expected %d bytes, got %d", size, n)
	}

	header = &pb.BlobHeader{}

	if err := proto.Unmarshal(buf.Bytes(), protoadapt.MessageV2Of(header)); err != nil {
		return nil, fmt.Errorf("error unmarshalling blob header: %w", err)
	}

	return header, nil
}

// readBlobData unmarshals a blob from an array of protobuf encoded bytes. The
// blob still needs to be decoded into OSM elements.
func readBlobData(rdr io.Reader, size int64) (*pb.Blob, error) {
	buf := core.NewPooledBuffer()
	defer buf.Close()

	if _, err := io.CopyN(buf, rdr, size); err != nil {
		return nil, fmt.Errorf("error reading blob: %w", err)
	}

	blob := &pb.Blob{}

	if err := proto.Unmarshal(buf.Bytes(), protoadapt.MessageV2Of(blob)); err != nil {
		return nil, fmt.Errorf("error unmarshalling blob: %w", err)
	}

	return blob, nil
}
