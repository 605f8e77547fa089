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

package index

import "sort"

// offsetMap is an ordered map from entity ID to blob offset, kept sorted by
// ID so that ceiling can answer the ceiling query (smallest key >= id) the
// sparse index relies on, mirroring a BTreeMap's lower_bound behaviour.
type offsetMap struct {
	ids     []int64
	offsets []uint64
}

func (m *offsetMap) set(id int64, offset uint64) {
	i := sort.Search(len(m.ids), func(i int) bool { return m.ids[i] >= id })

	if i < len(m.ids) && m.ids[i] == id {
		m.offsets[i] = offset

		return
	}

	m.ids = append(m.ids, 0)
	copy(m.ids[i+1:], m.ids[i:])
	m.ids[i] = id

	m.offsets = append(m.offsets, 0)
	copy(m.offsets[i+1:], m.offsets[i:])
	m.offsets[i] = offset
}

// ceiling returns the offset stored under the smallest key >= id.
func (m *offsetMap) ceiling(id int64) (uint64, bool) {
	i := sort.Search(len(m.ids), func(i int) bool { return m.ids[i] >= id })
	if i == len(m.ids) {
		return 0, false
	}

	return m.offsets[i], true
}

func (m *offsetMap) each(fn func(id int64, offset uint64)) {
	for i, id := range m.ids {
		fn(id, m.offsets[i])
	}
}

func (m *offsetMap) len() int {
	return len(m.ids)
}
