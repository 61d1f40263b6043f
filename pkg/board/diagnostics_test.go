// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReportForwardsPanics(t *testing.T) {
	var got any
	var stack []byte

	b := New(WithDiagnostics(SinkFunc(func(v any, s []byte) {
		got, stack = v, s
	})))

	assert.PanicsWithValue(t, "boom", func() {
		defer b.report()
		panic("boom")
	})

	assert.Equal(t, "boom", got)
	assert.NotEmpty(t, stack)
}

func TestSinkQuietOnValidPlay(t *testing.T) {
	calls := 0
	b := New(WithDiagnostics(SinkFunc(func(any, []byte) { calls++ })))

	assert.Equal(t, Unfinished, b.Play(Yellow, 5, 0))
	assert.Equal(t, InvalidMove, b.Play(Yellow, 5, 0))
	assert.Zero(t, calls)
}

func TestParsePositionKeepsSink(t *testing.T) {
	calls := 0
	b, err := ParsePosition("7/7/7/7/7/y6", WithDiagnostics(SinkFunc(func(any, []byte) { calls++ })))
	assert.NoError(t, err)

	assert.Panics(t, func() {
		defer b.report()
		panic("boom")
	})
	assert.Equal(t, 1, calls)
}
