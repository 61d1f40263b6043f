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

package session_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"laptudirm.com/x/connect4/pkg/board"
	"laptudirm.com/x/connect4/pkg/game"
	"laptudirm.com/x/connect4/pkg/session"
)

func TestColoursAlternate(t *testing.T) {
	s := session.New("alice", "bob")

	for n, want := range []string{"alice", "bob", "alice", "bob"} {
		y, r := s.Colours(n)
		assert.Equal(t, want, s.Players[y], "game %d", n)
		assert.NotEqual(t, y, r)
		assert.Equal(t, board.Yellow, s.Colour(y, n))
		assert.Equal(t, board.Red, s.Colour(r, n))
	}
}

func TestRecord(t *testing.T) {
	s := session.New("alice", "bob")

	// game 1: alice is Yellow and wins
	require.NoError(t, s.Record(game.YellowWins))
	// game 2: bob is Yellow, alice wins as Red
	require.NoError(t, s.Record(game.RedWins))
	// game 3: alice is Yellow, drawn
	require.NoError(t, s.Record(game.Draw))
	// game 4: bob is Yellow and wins
	require.NoError(t, s.Record(game.YellowWins))

	assert.Equal(t, 4, s.Games)
	assert.Equal(t, session.Score{Wins: 2, Losses: 1, Draws: 1}, s.Scores[0])
	assert.Equal(t, session.Score{Wins: 1, Losses: 2, Draws: 1}, s.Scores[1])
	assert.Equal(t, 4, s.Scores[0].Total())
}

func TestRecordOngoing(t *testing.T) {
	s := session.New("alice", "bob")

	err := s.Record(game.Ongoing)
	require.Error(t, err)
	assert.Zero(t, s.Games)
	assert.Zero(t, s.Scores[0])
}

func TestCurrent(t *testing.T) {
	s := session.New("alice", "bob")

	yellow, red := s.Current()
	assert.Equal(t, "alice", yellow)
	assert.Equal(t, "bob", red)

	require.NoError(t, s.Record(game.Draw))

	yellow, red = s.Current()
	assert.Equal(t, "bob", yellow)
	assert.Equal(t, "alice", red)
}

func TestReport(t *testing.T) {
	s := session.New("alice", "bob")
	require.NoError(t, s.Record(game.YellowWins))
	require.NoError(t, s.Record(game.Draw))

	var buf bytes.Buffer
	s.Report(&buf)

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 6)
	assert.Contains(t, lines[3], "alice")
	assert.Contains(t, lines[4], "bob")

	// every row of the box has the same width
	for _, line := range lines[1:] {
		assert.Equal(t, len([]rune(lines[0])), len([]rune(line)), line)
	}
}

func TestReportLongNames(t *testing.T) {
	s := session.New("a rather long player name", "ünïcödé")
	require.NoError(t, s.Record(game.Draw))

	var buf bytes.Buffer
	s.Report(&buf)

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 6)
	assert.Contains(t, lines[3], "a rather long …")
	assert.NotContains(t, lines[3], "player name")
	assert.Contains(t, lines[4], "ünïcödé")

	for _, line := range lines[1:] {
		assert.Equal(t, len([]rune(lines[0])), len([]rune(line)), line)
	}
}

func TestElo(t *testing.T) {
	lower, elo, upper := session.Elo(10, 0, 10)
	assert.InDelta(t, 0, elo, 1e-9)
	assert.Less(t, lower, elo)
	assert.Greater(t, upper, elo)

	_, elo, _ = session.Elo(15, 0, 5)
	assert.Greater(t, elo, 0.0)

	_, elo, _ = session.Elo(5, 0, 15)
	assert.Less(t, elo, 0.0)
}
