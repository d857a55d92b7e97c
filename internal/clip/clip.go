// Package clip copies text to the system clipboard.
package clip

import (
	"github.com/atotto/clipboard"
	"github.com/cockroachdb/errors"
)

// Writer puts text on a clipboard.
type Writer interface {
	WriteAll(text string) error
}

// System is the host clipboard (pbcopy, xclip/xsel/wl-copy, or the Windows API).
type System struct{}

func (System) WriteAll(text string) error {
	if clipboard.Unsupported {
		return errors.New("no clipboard utility found")
	}
	if err := clipboard.WriteAll(text); err != nil {
		return errors.Wrap(err, "write clipboard")
	}
	return nil
}

// Memory keeps the last write. Useful where no clipboard exists.
type Memory struct {
	Text   string
	Writes int
}

func (m *Memory) WriteAll(text string) error {
	m.Text = text
	m.Writes++
	return nil
}
