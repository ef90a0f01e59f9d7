package tetris

import (
	"fmt"
	"strings"
)

// Command is one engine command as recorded in a journal.
// Each command encodes as a single letter.
type Command byte

const (
	CmdMoveLeft    Command = 'L'
	CmdMoveRight   Command = 'R'
	CmdRotate      Command = 'U'
	CmdHardDrop    Command = 'D'
	CmdTick        Command = 'T'
	CmdTogglePause Command = 'P'
	CmdReset       Command = 'X'
)

// Valid reports whether c is a known command.
func (c Command) Valid() bool {
	switch c {
	case CmdMoveLeft, CmdMoveRight, CmdRotate, CmdHardDrop, CmdTick, CmdTogglePause, CmdReset:
		return true
	}
	return false
}

// Journal is everything needed to re-simulate a game: the randomizer and
// its seed, the scoring rule, and the commands in delivery order.
type Journal struct {
	GameID        string
	Randomizer    string
	Seed          int64
	PointsPerLine int
	Commands      []Command
}

// Record appends a command.
func (j *Journal) Record(c Command) {
	j.Commands = append(j.Commands, c)
}

// EncodeCommands returns the compact string form of the command stream.
func (j Journal) EncodeCommands() string {
	var sb strings.Builder
	sb.Grow(len(j.Commands))
	for _, c := range j.Commands {
		sb.WriteByte(byte(c))
	}
	return sb.String()
}

// ParseCommands decodes a string produced by EncodeCommands.
func ParseCommands(s string) ([]Command, error) {
	cmds := make([]Command, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := Command(s[i])
		if !c.Valid() {
			return nil, fmt.Errorf("tetris: invalid command %q at offset %d", s[i], i)
		}
		cmds = append(cmds, c)
	}
	return cmds, nil
}

// Replay re-simulates the journal on a fresh engine and returns it.
func Replay(j Journal) (*Engine, error) {
	r, err := NewRandomizer(j.Randomizer, j.Seed)
	if err != nil {
		return nil, err
	}
	e := NewEngine(r, WithPointsPerLine(j.PointsPerLine))
	for _, c := range j.Commands {
		if !c.Valid() {
			return nil, fmt.Errorf("tetris: invalid command %q in journal", byte(c))
		}
		e.Apply(c)
	}
	return e, nil
}

// JournalSaver persists finished games so they can be replayed later.
type JournalSaver interface {
	SaveJournal(j Journal) (int64, error)
}
