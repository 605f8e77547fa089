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

// Package pb holds hand-written struct-tag bindings for fileformat.proto and
// osmformat.proto, the two protobuf schemas that define the OpenStreetMap
// PBF wire format (https://wiki.openstreetmap.org/wiki/PBF_Format), plus
// this module's lz4/zstd blob payload extensions.
//
// Hand-written bindings for: fileformat.proto

package pb

import (
	"google.golang.org/protobuf/encoding/prototext"
	"google.golang.org/protobuf/protoadapt"
)

// BlobHeader is the header that precedes every Blob on the wire: a 4-byte
// big-endian length prefix (written by the caller, not part of this
// message) followed by this message, followed by exactly Datasize bytes of
// serialized Blob.
type BlobHeader struct {
	Type             *string `protobuf:"bytes,1,req,name=type" json:"type,omitempty"`
	Indexdata        []byte  `protobuf:"bytes,2,opt,name=indexdata" json:"indexdata,omitempty"`
	Datasize         *int32  `protobuf:"varint,3,req,name=datasize" json:"datasize,omitempty"`
	XXX_unrecognized []byte  `json:"-"`
}

func (m *BlobHeader) Reset()         { *m = BlobHeader{} }
func (m *BlobHeader) String() string { return prototext.Format(protoadapt.MessageV2Of(m)) }
func (*BlobHeader) ProtoMessage()    {}

func (m *BlobHeader) GetType() string {
	if m != nil && m.Type != nil {
		return *m.Type
	}

	return ""
}

func (m *BlobHeader) GetIndexdata() []byte {
	if m != nil {
		return m.Indexdata
	}

	return nil
}

func (m *BlobHeader) GetDatasize() int32 {
	if m != nil && m.Datasize != nil {
		return *m.Datasize
	}

	return 0
}

// Blob carries the (possibly compressed) payload of a single frame. Exactly
// one of the Data fields is set; which one is a producer's choice, not a
// reader's.
type Blob struct {
	RawSize *int32 `protobuf:"varint,2,opt,name=raw_size,json=rawSize" json:"raw_size,omitempty"`
	// Types that are valid to be assigned to Data:
	//	*Blob_Raw
	//	*Blob_ZlibData
	//	*Blob_LzmaData
	//	*Blob_OBSOLETEBzip2Data
	//	*Blob_Lz4Data
	//	*Blob_ZstdData
	Data             isBlob_Data `protobuf_oneof:"data"`
	XXX_unrecognized []byte      `json:"-"`
}

func (m *Blob) Reset()         { *m = Blob{} }
func (m *Blob) String() string { return prototext.Format(protoadapt.MessageV2Of(m)) }
func (*Blob) ProtoMessage()    {}

func (m *Blob) GetRawSize() int32 {
	if m != nil && m.RawSize != nil {
		return *m.RawSize
	}

	return 0
}

type isBlob_Data interface {
	isBlob_Data()
}

type Blob_Raw struct {
	Raw []byte `protobuf:"bytes,1,opt,name=raw,oneof"`
}

type Blob_ZlibData struct {
	ZlibData []byte `protobuf:"bytes,3,opt,name=zlib_data,json=zlibData,oneof"`
}

type Blob_LzmaData struct {
	LzmaData []byte `protobuf:"bytes,4,opt,name=lzma_data,json=lzmaData,oneof"`
}

// Blob_OBSOLETEBzip2Data is retained only so a reader that encounters a
// legacy bzip2-compressed blob fails with ErrUnknownCompressionType rather
// than a protobuf decode error; this module never produces it.
type Blob_OBSOLETEBzip2Data struct {
	OBSOLETEBzip2Data []byte `protobuf:"bytes,5,opt,name=OBSOLETE_bzip2_data,json=OBSOLETEBzip2Data,oneof"`
}

type Blob_Lz4Data struct {
	Lz4Data []byte `protobuf:"bytes,6,opt,name=lz4_data,json=lz4Data,oneof"`
}

type Blob_ZstdData struct {
	ZstdData []byte `protobuf:"bytes,7,opt,name=zstd_data,json=zstdData,oneof"`
}

func (*Blob_Raw) isBlob_Data()               {}
func (*Blob_ZlibData) isBlob_Data()          {}
func (*Blob_LzmaData) isBlob_Data()          {}
func (*Blob_OBSOLETEBzip2Data) isBlob_Data() {}
func (*Blob_Lz4Data) isBlob_Data()           {}
func (*Blob_ZstdData) isBlob_Data()          {}

func (m *Blob) GetData() isBlob_Data {
	if m != nil {
		return m.Data
	}

	return nil
}

func (m *Blob) GetRaw() []byte {
	if x, ok := m.GetData().(*Blob_Raw); ok {
		return x.Raw
	}

	return nil
}

func (m *Blob) GetZlibData() []byte {
	if x, ok := m.GetData().(*Blob_ZlibData); ok {
		return x.ZlibData
	}

	return nil
}

func (m *Blob) GetLzmaData() []byte {
	if x, ok := m.GetData().(*Blob_LzmaData); ok {
		return x.LzmaData
	}

	return nil
}

func (m *Blob) GetLz4Data() []byte {
	if x, ok := m.GetData().(*Blob_Lz4Data); ok {
		return x.Lz4Data
	}

	return nil
}

func (m *Blob) GetZstdData() []byte {
	if x, ok := m.GetData().(*Blob_ZstdData); ok {
		return x.ZstdData
	}

	return nil
}

// XXX_OneofWrappers lets the legacy struct-tag reflection path that
// google.golang.org/protobuf/protoadapt bridges into discover the oneof's
// wrapper types without a full v2 descriptor.
func (*Blob) XXX_OneofWrappers() []interface{} {
	return []interface{}{
		(*Blob_Raw)(nil),
		(*Blob_ZlibData)(nil),
		(*Blob_LzmaData)(nil),
		(*Blob_OBSOLETEBzip2Data)(nil),
		(*Blob_Lz4Data)(nil),
		(*Blob_ZstdData)(nil),
	}
}
