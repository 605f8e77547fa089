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
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/maguro/osmpbf/model"
)

// blobCache holds the decoded entities of a blob keyed by the blob's file
// offset. It has a single owner (one *IndexedReader) and is not safe for
// concurrent use, matching the single-threaded block cache the spec
// describes.
type blobCache struct {
	lru *lru.Cache[uint64, []model.Entity]
}

func newBlobCache(capacity int) (*blobCache, error) {
	c, err := lru.New[uint64, []model.Entity](capacity)
	if err != nil {
		return nil, fmt.Errorf("pbf: creating block cache: %w", err)
	}

	return &blobCache{lru: c}, nil
}

func (c *blobCache) get(offset uint64) ([]model.Entity, bool) {
	return c.lru.Get(offset)
}

func (c *blobCache) set(offset uint64, entities []model.Entity) {
	c.lru.Add(offset, entities)
}
