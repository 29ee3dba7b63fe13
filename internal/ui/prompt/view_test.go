package prompt

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
)

func hitFor(m *Modal, action Action) (hitRegion, bool) {
	for _, h := range m.hits {
		if h.action == action {
			return h, true
		}
	}
	return hitRegion{}, false
}

func TestRender_ContainsLabels(t *testing.T) {
	t.Parallel()

	m := shown(Request{
		Title:          "Save file",
		InitialValue:   "received.txt",
		PrimaryLabel:   "Save",
		AlternateLabel: "Save & print dir",
		OnAlternate:    func(string) {},
	})

	out := ansi.Strip(m.Render(80, 24))
	for _, want := range []string{"Save file", "received.txt", "Save & print dir", DefaultCancelLabel} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q:\n%s", want, out)
		}
	}
}

func TestRender_HitRegions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		alternate bool
		want      []Action
	}{
		{name: "two buttons", want: []Action{ActionNone, ActionPrimary, ActionCancel}},
		{name: "three buttons", alternate: true, want: []Action{ActionNone, ActionPrimary, ActionAlternate, ActionCancel}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := Request{Title: "t", PrimaryLabel: "OK"}
			if tt.alternate {
				req.AlternateLabel = "Other"
				req.OnAlternate = func(string) {}
			}
			m := shown(req)
			m.Render(80, 24)

			if len(m.hits) != len(tt.want) {
				t.Fatalf("got %d hit regions, want %d", len(m.hits), len(tt.want))
			}
			for i, a := range tt.want {
				if m.hits[i].action != a {
					t.Errorf("hits[%d].action = %v, want %v", i, m.hits[i].action, a)
				}
			}
		})
	}
}

func TestRender_ButtonsOnOneRowLeftToRight(t *testing.T) {
	t.Parallel()

	m := shown(Request{Title: "t", PrimaryLabel: "OK", AlternateLabel: "Other", OnAlternate: func(string) {}})
	m.Render(80, 24)

	primary, _ := hitFor(m, ActionPrimary)
	alternate, _ := hitFor(m, ActionAlternate)
	cancel, _ := hitFor(m, ActionCancel)
	field, _ := hitFor(m, ActionNone)

	if primary.y != alternate.y || alternate.y != cancel.y {
		t.Errorf("buttons on different rows: %d %d %d", primary.y, alternate.y, cancel.y)
	}
	if primary.y <= field.y {
		t.Errorf("buttons (y=%d) should be below the field (y=%d)", primary.y, field.y)
	}
	if !(primary.x+primary.w <= alternate.x && alternate.x+alternate.w <= cancel.x) {
		t.Errorf("buttons overlap or out of order: %+v %+v %+v", primary, alternate, cancel)
	}
}

func TestRender_Centered(t *testing.T) {
	t.Parallel()

	m := shown(Request{Title: "t", PrimaryLabel: "OK"})
	m.Render(0, 0)
	origin, _ := hitFor(m, ActionNone)

	m.Render(120, 40)
	centered, _ := hitFor(m, ActionNone)

	if centered.x <= origin.x || centered.y <= origin.y {
		t.Errorf("field not offset when centered: origin=%+v centered=%+v", origin, centered)
	}
}

func TestRender_Closed(t *testing.T) {
	t.Parallel()

	m := shown(Request{Title: "t", PrimaryLabel: "OK"})
	m.Render(80, 24)
	m.Close()

	if got := m.Render(80, 24); got != "" {
		t.Errorf("closed modal rendered %q", got)
	}
	if len(m.hits) != 0 {
		t.Errorf("closed modal kept %d hit regions", len(m.hits))
	}
}

func TestRender_LongTitleTruncated(t *testing.T) {
	t.Parallel()

	m := shown(Request{Title: strings.Repeat("x", 200), PrimaryLabel: "OK"}, WithWidth(30))
	out := ansi.Strip(m.Render(0, 0))

	if !strings.Contains(out, ellipsis) {
		t.Errorf("long title not truncated:\n%s", out)
	}
	for _, line := range strings.Split(out, "\n") {
		if w := ansi.StringWidth(line); w > 30+2*(boxPadX+boxBorder) {
			t.Errorf("line wider than box (%d): %q", w, line)
		}
	}
}

func TestClick_OutsideIgnored(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	m := shown(renameRequest(rec))
	m.Render(80, 24)

	for _, pos := range [][2]int{{0, 0}, {79, 23}, {0, 12}} {
		m.Update(tea.MouseClickMsg{X: pos[0], Y: pos[1], Button: tea.MouseLeft})
	}

	if m.State() != StateShown {
		t.Errorf("State() = %v, want shown", m.State())
	}
	if len(rec.calls) != 0 {
		t.Errorf("calls = %v, want none", rec.calls)
	}
}

func TestClick_RightButtonIgnored(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	m := shown(renameRequest(rec))
	m.Render(80, 24)
	h, _ := hitFor(m, ActionPrimary)

	m.Update(tea.MouseClickMsg{X: h.x, Y: h.y, Button: tea.MouseRight})

	if m.State() != StateShown {
		t.Errorf("State() = %v, want shown", m.State())
	}
}

func TestClick_FieldRefocuses(t *testing.T) {
	t.Parallel()

	m := shown(Request{Title: "t", PrimaryLabel: "OK"})
	m.Update(keyMsg("tab"))
	if m.focus == fieldFocusIndex {
		t.Fatal("tab did not move focus off the field")
	}

	m.Render(80, 24)
	h, _ := hitFor(m, ActionNone)
	m.Update(tea.MouseClickMsg{X: h.x, Y: h.y, Button: tea.MouseLeft})

	if m.focus != fieldFocusIndex {
		t.Errorf("focus = %d, want field", m.focus)
	}
	if m.State() != StateShown {
		t.Errorf("State() = %v, want shown", m.State())
	}
}

func TestHitRegion_Contains(t *testing.T) {
	t.Parallel()

	r := hitRegion{x: 10, y: 5, w: 4, h: 1}
	tests := []struct {
		x, y int
		want bool
	}{
		{10, 5, true},
		{13, 5, true},
		{14, 5, false},
		{9, 5, false},
		{10, 6, false},
		{10, 4, false},
	}
	for _, tt := range tests {
		if got := r.contains(tt.x, tt.y); got != tt.want {
			t.Errorf("contains(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

// cellText returns the plain text under region h in a rendered screen.
func cellText(screen string, h hitRegion) string {
	lines := strings.Split(screen, "\n")
	if h.y >= len(lines) {
		return ""
	}
	return strings.TrimSpace(ansi.Strip(ansi.Cut(lines[h.y], h.x, h.x+h.w)))
}

func TestRender_WideButtonsStayClickable(t *testing.T) {
	t.Parallel()

	newRequest := func(rec *recorder) Request {
		return Request{
			Title:          "New session",
			PrimaryLabel:   "Create new session",
			AlternateLabel: "Failsafe session",
			OnPrimary:      rec.text("primary"),
			OnAlternate:    rec.text("alternate"),
			OnCancel:       rec.text("cancel"),
			OnClosed:       rec.closed,
		}
	}

	tests := []struct {
		action Action
		label  string
		want   string
	}{
		{ActionPrimary, "Create new session", "primary:"},
		{ActionAlternate, "Failsafe session", "alternate:"},
		{ActionCancel, DefaultCancelLabel, "cancel:"},
	}

	for _, tt := range tests {
		t.Run(tt.action.String(), func(t *testing.T) {
			t.Parallel()

			rec := &recorder{}
			m := shown(newRequest(rec))
			screen := m.Render(120, 30)

			h, ok := hitFor(m, tt.action)
			if !ok {
				t.Fatalf("no hit region for %v", tt.action)
			}
			if got := cellText(screen, h); got != tt.label {
				t.Fatalf("hit region %+v covers %q, want %q\n%s", h, got, tt.label, ansi.Strip(screen))
			}

			m.Update(tea.MouseClickMsg{X: h.x, Y: h.y, Button: tea.MouseLeft})
			want := []string{tt.want, "closed"}
			if strings.Join(rec.calls, ",") != strings.Join(want, ",") {
				t.Errorf("calls = %v, want %v", rec.calls, want)
			}
		})
	}

	t.Run("blank padding beside a button", func(t *testing.T) {
		t.Parallel()

		rec := &recorder{}
		m := shown(newRequest(rec))
		m.Render(120, 30)

		for _, a := range []Action{ActionPrimary, ActionAlternate, ActionCancel} {
			h, _ := hitFor(m, a)
			m.Update(tea.MouseClickMsg{X: h.x + h.w + 1, Y: h.y, Button: tea.MouseLeft})
		}

		if m.State() != StateShown {
			t.Errorf("State() = %v, want shown", m.State())
		}
		if len(rec.calls) != 0 {
			t.Errorf("calls = %v, want none", rec.calls)
		}
	})
}

func TestRender_NarrowBoxKeepsHitsInside(t *testing.T) {
	t.Parallel()

	m := shown(Request{
		Title:          "t",
		PrimaryLabel:   "Create a brand new session now",
		AlternateLabel: "Failsafe session",
		OnAlternate:    func(string) {},
	}, WithWidth(minWidth))
	screen := m.Render(120, 30)

	boxWidth := minWidth + 2*(boxPadX+boxBorder)
	left := (120 - boxWidth) / 2
	innerLeft, innerRight := left+boxBorder, left+boxWidth-boxBorder

	for _, h := range m.hits {
		if h.x < innerLeft || h.x+h.w > innerRight {
			t.Errorf("hit %+v outside box interior [%d, %d)", h, innerLeft, innerRight)
		}
		if h.action == ActionNone {
			continue
		}
		if got := cellText(screen, h); got == "" {
			t.Errorf("hit %+v covers blank cells", h)
		}
	}

	primary, _ := hitFor(m, ActionPrimary)
	if got := cellText(screen, primary); !strings.HasSuffix(got, ellipsis) {
		t.Errorf("long label not truncated: %q", got)
	}
}
