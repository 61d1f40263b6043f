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

// Package diag reports board faults through logrus.
package diag

import (
	"github.com/sirupsen/logrus"

	"laptudirm.com/x/connect4/pkg/board"
)

// Logrus is a board.Sink which logs faults at the error level, with the
// goroutine stack attached as a field.
type Logrus struct {
	Logger logrus.FieldLogger
}

var _ board.Sink = Logrus{}

// New returns a sink logging to the given logger, or to the standard
// logger if it is nil.
func New(logger logrus.FieldLogger) Logrus {
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return Logrus{Logger: logger}
}

func (sink Logrus) Fault(v any, stack []byte) {
	sink.Logger.WithField("stack", string(stack)).Errorf("board fault: %v", v)
}
