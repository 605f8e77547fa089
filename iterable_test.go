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

package pbf_test

import (
	"context"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maguro/osmpbf"
)

const londonFixture = "testdata/greater-london.osm.pbf"

func TestIterableReaderMatchesDecoder(t *testing.T) {
	requireFixture(t, londonFixture)

	f, err := os.Open(londonFixture)
	require.NoError(t, err)

	defer f.Close()

	it, err := pbf.NewIterableReader(context.Background(), f)
	require.NoError(t, err)

	defer it.Close()

	var count int

	for {
		_, err := it.Next()
		if err == io.EOF {
			break
		}

		require.NoError(t, err)

		count++
	}

	assert.Equal(t, 2729006+459055+12833, count)
}

func TestParFindByTag(t *testing.T) {
	requireFixture(t, londonFixture)

	f, err := os.Open(londonFixture)
	require.NoError(t, err)

	defer f.Close()

	node := pbf.NODE

	matches, err := pbf.ParFind(context.Background(), f, &node, func(e pbf.Entity) bool {
		for _, tag := range e.GetTags() {
			if tag.Key == "highway" {
				return true
			}
		}

		return false
	}, 4)
	require.NoError(t, err)

	for _, e := range matches {
		_, isNode := e.(*pbf.Node)
		assert.True(t, isNode)
	}
}
