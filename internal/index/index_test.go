package index

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/maguro/osmpbf/model"
)

func TestPathFor(t *testing.T) {
	path, err := PathFor("foo.osm.pbf")
	assert.NoError(t, err)
	assert.Equal(t, "foo.osm.pif", path)

	_, err = PathFor("foo.osm")
	assert.ErrorIs(t, err, ErrNotPbf)
}

func TestRecordBlobAndOffsetFor(t *testing.T) {
	idx := &Index{}

	idx.recordBlob([]model.Entity{
		&model.Node{ID: 1},
		&model.Node{ID: 2},
		&model.Way{ID: 100},
	}, 0)

	idx.recordBlob([]model.Entity{
		&model.Node{ID: 5},
		&model.Relation{ID: 900},
	}, 64)

	offset, ok := idx.OffsetFor(KindNode, 1)
	assert.True(t, ok)
	assert.Equal(t, uint64(0), offset)

	offset, ok = idx.OffsetFor(KindNode, 3)
	assert.True(t, ok)
	assert.Equal(t, uint64(64), offset)

	offset, ok = idx.OffsetFor(KindWay, 100)
	assert.True(t, ok)
	assert.Equal(t, uint64(0), offset)

	_, ok = idx.OffsetFor(KindWay, 101)
	assert.False(t, ok)

	offset, ok = idx.OffsetFor(KindRelation, 1)
	assert.True(t, ok)
	assert.Equal(t, uint64(64), offset)
}

func TestPersistAndLoadRoundTrip(t *testing.T) {
	idx := &Index{}
	idx.recordBlob([]model.Entity{&model.Node{ID: 1}}, 0)
	idx.recordBlob([]model.Entity{&model.Way{ID: 2}}, 10)

	dir := t.TempDir()
	indexPath := dir + "/test.pif"
	sum := "ba8a2a59183a49c3e624246b8e8138a5"

	assert.NoError(t, idx.persist(indexPath, sum))

	f, err := os.Open(indexPath)
	assert.NoError(t, err)
	defer f.Close()

	loaded, loadedSum, err := load(f)
	assert.NoError(t, err)
	assert.Equal(t, sum, loadedSum)

	offset, ok := loaded.OffsetFor(KindNode, 1)
	assert.True(t, ok)
	assert.Equal(t, uint64(0), offset)

	offset, ok = loaded.OffsetFor(KindWay, 2)
	assert.True(t, ok)
	assert.Equal(t, uint64(10), offset)
}
