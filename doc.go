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

// Package docdiff compares two word-processing documents and produces a side-by-side comparison
// that marks additions, deletions, and modifications down to individual words and table cells.
//
// The main function is [Diff]. It returns the comparison as a document that consists of a single
// two-column table: the left column holds the old document, the right column the new one. Every
// row shows a part of the documents that was either added, deleted, modified, or left unchanged.
// Modified paragraphs and tables are compared in detail, changed words and cells carry a
// [document.Tag]. A deleted word that was replaced by another word shares a correlation id with its
// replacement, so both sides can be linked to each other. Use [Compare] to render the comparison as
// HTML.
//
// Documents are compared in two stages. First, blocks whose text is identical are aligned along a
// longest common subsequence. Then, the blocks between two aligned pairs are aligned by
// similarity: two blocks of the same kind are paired if the Dice coefficient of their text exceeds
// a threshold (see [Threshold]).
//
// Performance: The first stage takes O(ND) time where N is the number of blocks and D is the
// number of differing blocks. The second stage takes O(nm) time and space for each span of n and m
// differing blocks. To bound the cost, spans with more than [MaxCells] pairs are reported as
// entirely different.
package docdiff
