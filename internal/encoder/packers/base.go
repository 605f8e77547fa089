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

package packers

import "io"

// base supplies the Write/Close plumbing every Packer shares: each
// concrete packer supplies the compressing io.WriteCloser that drains into
// its own buffer, and contributes only SaveTo.
type base struct {
	io.WriteCloser
}

// newBasePacker wraps w, the compressing writer a concrete packer
// constructs over its own buffer.
func newBasePacker(w io.WriteCloser) *base {
	return &base{WriteCloser: w}
}
