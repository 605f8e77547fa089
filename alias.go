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

import "github.com/maguro/osmpbf/model"

// These aliases let callers work entirely in terms of the pbf package
// without reaching into model directly; model remains the shared vocabulary
// between the encoder, decoder, and index packages.
type (
	Header      = model.Header
	BoundingBox = model.BoundingBox
	Degrees     = model.Degrees
	Angle       = model.Angle
	Epsilon     = model.Epsilon
	Entity      = model.Entity
	Tag         = model.Tag
	Node        = model.Node
	Way         = model.Way
	Relation    = model.Relation
	Member      = model.Member
	EntityType  = model.EntityType
	ID          = model.ID
	UID         = model.UID
	Info        = model.Info
)

const (
	E5 = model.E5
	E6 = model.E6
	E7 = model.E7
	E8 = model.E8
	E9 = model.E9

	NODE     = model.NODE
	WAY      = model.WAY
	RELATION = model.RELATION
)

// InitialBoundingBox creates a BoundingBox that is meant to be expanded.
func InitialBoundingBox() *BoundingBox {
	return model.InitialBoundingBox()
}
