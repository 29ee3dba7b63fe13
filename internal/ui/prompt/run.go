package prompt

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/colorprofile"
	"github.com/mattn/go-isatty"
)

// host is the full-screen program that owns a single modal.
type host struct {
	modal  *Modal
	width  int
	height int
}

func (h *host) Init() tea.Cmd {
	return h.modal.Show()
}

func (h *host) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h.width = msg.Width
		h.height = msg.Height
		return h, nil
	case ClosedMsg:
		if msg.ID == h.modal.ID() {
			return h, tea.Quit
		}
		return h, nil
	}

	_, cmd := h.modal.Update(msg)
	return h, cmd
}

func (h *host) View() tea.View {
	v := tea.NewView(h.modal.Render(h.width, h.height))
	v.AltScreen = true
	v.MouseMode = tea.MouseModeCellMotion
	return v
}

// Run shows req in a full-screen program on stderr and blocks until the
// prompt closes. Callbacks run on the program's event loop before Run
// returns. If ctx is cancelled or the program fails first, the modal is
// dismissed so OnClosed still fires exactly once.
//
// The TUI renders to stderr so stdout remains available for piping
// (e.g. name=$(tprompt ask --title Name) works correctly).
func Run(ctx context.Context, req Request, opts ...Option) (Outcome, error) {
	m := New(req, opts...)

	// Detect color profile for stderr (handles piped output, NO_COLOR, etc.)
	profile := colorprofile.Detect(os.Stderr, os.Environ())

	popts := []tea.ProgramOption{
		tea.WithContext(ctx),
		tea.WithOutput(os.Stderr),
		tea.WithColorProfile(profile),
	}

	// Stdin may carry piped data (tprompt save); read keys from the terminal instead.
	if !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		tty, err := os.Open("/dev/tty")
		if err != nil {
			return Outcome{}, fmt.Errorf("open terminal: %w", err)
		}
		defer tty.Close()
		popts = append(popts, tea.WithInput(tty))
	}

	p := tea.NewProgram(&host{modal: m}, popts...)
	_, err := p.Run()

	if m.State() != StateClosed {
		m.Close()
	}
	if err != nil {
		return m.Outcome(), fmt.Errorf("run prompt: %w", err)
	}
	return m.Outcome(), nil
}
