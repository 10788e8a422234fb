// Copyright 2025 Florian Zenker (flo@znkr.io)
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

package document

import "strconv"

// Change is the kind of change a [Tag] describes.
//
//go:generate go tool golang.org/x/tools/cmd/stringer -type=Change
type Change int

const (
	Unchanged Change = iota // Content is the same on both sides
	Add                     // Content only exists on the right side
	Delete                  // Content only exists on the left side
	Modify                  // Content exists on both sides but differs
)

// Tag marks content of a comparison. The zero value marks unchanged content.
//
// A modification may carry a correlation id that links content on the left side to its
// replacement on the right side. Ids are positive, 0 means no id.
type Tag struct {
	Change Change
	ID     int
}

// IsZero reports whether t marks unchanged content.
func (t Tag) IsZero() bool { return t == Tag{} }

// String returns the wire form of the tag: "", "add", "delete", "modify", or "modify modify<id>".
func (t Tag) String() string {
	switch t.Change {
	case Unchanged:
		return ""
	case Add:
		return "add"
	case Delete:
		return "delete"
	case Modify:
		if t.ID > 0 {
			return "modify modify" + strconv.Itoa(t.ID)
		}
		return "modify"
	default:
		panic("never reached")
	}
}
