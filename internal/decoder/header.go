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
	"errors"
	"fmt"
	"io"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/protoadapt"

	"github.com/maguro/osmpbf/internal/core"
	"github.com/maguro/osmpbf/internal/pb"
	"github.com/maguro/osmpbf/model"
)

// ErrUnsupportedFeature is returned when a header block's required_features
// names a capability this decoder does not implement. Per the PBF spec, a
// reader must refuse to proceed rather than silently drop the parts of the
// file that capability governs.
var ErrUnsupportedFeature = errors.New("unsupported required feature")

// supportedFeatures are the required_features values this decoder knows how
// to honor.
var supportedFeatures = map[string]bool{
	"OsmSchema-V0.6": true,
	"DenseNodes":     true,
}

// LoadHeader reads the leading BlobHeader/Blob pair off of reader and
// decodes it into a model.Header. It is an error for the first blob in the
// stream not to be of type "OSMHeader".
func LoadHeader(reader io.Reader) (model.Header, error) {
	h, b, err := readBlob(reader)
	if err != nil {
		return model.Header{}, err
	}

	if h.GetType() != "OSMHeader" {
		return model.Header{}, fmt.Errorf("expected OSMHeader blob, got %q", h.GetType())
	}

	buf := core.NewPooledBuffer()
	defer buf.Close()

	data, err := unpack(buf, b)
	if err != nil {
		return model.Header{}, err
	}

	return parseHeaderBlock(data)
}

// parseHeaderBlock unmarshals a pb.HeaderBlock and converts it into a
// model.Header.
func parseHeaderBlock(data []byte) (model.Header, error) {
	hb := &pb.HeaderBlock{}
	if err := proto.Unmarshal(data, protoadapt.MessageV2Of(hb)); err != nil {
		return model.Header{}, fmt.Errorf("unable to unmarshal header block: %w", err)
	}

	for _, feature := range hb.GetRequiredFeatures() {
		if !supportedFeatures[feature] {
			return model.Header{}, fmt.Errorf("%w: %q", ErrUnsupportedFeature, feature)
		}
	}

	var bbox *model.BoundingBox
	if b := hb.GetBbox(); b != nil {
		bbox = &model.BoundingBox{
			Top:    model.ToDegrees(0, 1, b.GetTop()),
			Left:   model.ToDegrees(0, 1, b.GetLeft()),
			Bottom: model.ToDegrees(0, 1, b.GetBottom()),
			Right:  model.ToDegrees(0, 1, b.GetRight()),
		}
	}

	return model.Header{
		BoundingBox:                      bbox,
		RequiredFeatures:                 hb.GetRequiredFeatures(),
		OptionalFeatures:                 hb.GetOptionalFeatures(),
		WritingProgram:                   hb.GetWritingprogram(),
		Source:                           hb.GetSource(),
		OsmosisReplicationTimestamp:      toTimestamp(dateGranularityMs, int32(hb.GetOsmosisReplicationTimestamp())),
		OsmosisReplicationSequenceNumber: hb.GetOsmosisReplicationSequenceNumber(),
		OsmosisReplicationBaseURL:        hb.GetOsmosisReplicationBaseUrl(),
	}, nil
}
