package tape

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
)

// Player steps through a parsed script.
type Player struct {
	commands []Command
	index    int
}

// NewPlayer creates a player positioned at the first command.
func NewPlayer(commands []Command) *Player {
	return &Player{commands: commands}
}

// NextCommand returns the current command, or nil when finished.
func (p *Player) NextCommand() *Command {
	if p.IsFinished() {
		return nil
	}
	return &p.commands[p.index]
}

// Advance moves past the current command.
func (p *Player) Advance() {
	if !p.IsFinished() {
		p.index++
	}
}

// IsFinished reports whether every command was played.
func (p *Player) IsFinished() bool { return p.index >= len(p.commands) }

// Progress returns how many commands were played out of the total.
func (p *Player) Progress() (done, total int) { return p.index, len(p.commands) }

// Reset rewinds to the first command.
func (p *Player) Reset() { p.index = 0 }

// Run plays the remaining commands in order, sleeping for Sleep commands.
// It stops at the first failing command or when ctx is done.
func (p *Player) Run(ctx context.Context, ce *CommandExecutor, logger *log.Logger) error {
	if logger == nil {
		logger = log.Default()
	}
	for cmd := p.NextCommand(); cmd != nil; cmd = p.NextCommand() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if cmd.Type == CommandTypeSleep {
			if err := sleep(ctx, cmd.Delay); err != nil {
				return err
			}
		} else {
			logger.Debug("tape command", "line", cmd.Line, "command", cmd.String())
			if err := ce.Execute(cmd); err != nil {
				return fmt.Errorf("line %d: %s: %w", cmd.Line, cmd.Type, err)
			}
		}
		p.Advance()
	}
	return nil
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
