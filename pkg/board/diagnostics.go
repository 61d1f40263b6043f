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

import "runtime/debug"

// Sink receives reports of unexpected faults inside the board. A Board
// without a Sink lets panics propagate untouched.
type Sink interface {
	Fault(v any, stack []byte)
}

// SinkFunc adapts an ordinary function to the Sink interface.
type SinkFunc func(v any, stack []byte)

func (fn SinkFunc) Fault(v any, stack []byte) {
	fn(v, stack)
}

// report must be deferred directly. It forwards a recovered panic to the
// board's Sink and then panics again with the same value.
func (b *Board) report() {
	if v := recover(); v != nil {
		b.sink.Fault(v, debug.Stack())
		panic(v)
	}
}
