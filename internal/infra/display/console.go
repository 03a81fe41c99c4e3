package display

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"biometric-terminal/internal/terminal/domain"
	"biometric-terminal/internal/terminal/usecases"
)

const _defaultColumns = domain.DisplayColumns

func NewConsole(out io.Writer, columns int) *Console {
	if columns <= 0 {
		columns = _defaultColumns
	}
	return &Console{out: out, columns: columns}
}

var _ usecases.Display = (*Console)(nil)

// Console renders the two-line character display as a framed box on a
// writer, one frame per update.
type Console struct {
	mu      sync.Mutex
	out     io.Writer
	columns int
	last    domain.Screen
	updates int
}

func (c *Console) Show(line1, line2 string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	screen := domain.Screen{
		Line1: domain.Truncate(line1, c.columns),
		Line2: domain.Truncate(line2, c.columns),
	}
	c.last = screen
	c.updates++

	border := "+" + strings.Repeat("-", c.columns) + "+"
	frame := fmt.Sprintf("%s\n|%-*s|\n|%-*s|\n%s\n", border, c.columns, screen.Line1, c.columns, screen.Line2, border)
	if _, err := io.WriteString(c.out, frame); err != nil {
		slog.Warn("writing display frame", slog.Any("error", err))
	}
}

func (c *Console) Last() domain.Screen {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.last
}

func (c *Console) Updates() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.updates
}
