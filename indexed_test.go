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
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maguro/osmpbf"
)

const andorraFixture = "testdata/andorra-latest.osm.pbf"

func requireFixture(t *testing.T, path string) {
	t.Helper()

	if _, err := os.Stat(path); err != nil {
		t.Skipf("fixture %s not present: %v", path, err)
	}
}

func TestIndexedReaderFindNode(t *testing.T) {
	requireFixture(t, andorraFixture)

	reader, err := pbf.OpenIndexedReader(context.Background(), andorraFixture)
	require.NoError(t, err)

	defer reader.Close()

	node, err := reader.FindNode(52263877)
	require.NoError(t, err)
	require.NotNil(t, node)
	assert.Equal(t, pbf.ID(52263877), node.ID)

	node, err = reader.FindNode(52263878)
	require.NoError(t, err)
	require.NotNil(t, node)
	assert.Equal(t, pbf.ID(52263878), node.ID)
}

func TestIndexedReaderGetWithDeps(t *testing.T) {
	requireFixture(t, andorraFixture)

	reader, err := pbf.OpenIndexedReader(context.Background(), andorraFixture, pbf.WithCache(64))
	require.NoError(t, err)

	defer reader.Close()

	entities, err := reader.GetWithDeps(pbf.WAY, 1055523837)
	require.NoError(t, err)
	require.NotEmpty(t, entities)

	way, ok := entities[0].(*pbf.Way)
	require.True(t, ok)
	assert.Equal(t, pbf.ID(1055523837), way.ID)
	assert.Len(t, entities, 1+len(way.NodeIDs))
}
