package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/reyanb/MindManager-to-Md/layout"
)

func TestSupportedFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.mmap", "a.xmmap", "notes.txt", "readme.md"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "sub.mmap"), 0o755); err != nil {
		t.Fatal(err)
	}

	files, err := supportedFiles(dir)
	if err != nil {
		t.Fatal(err)
	}

	want := []string{filepath.Join(dir, "a.xmmap"), filepath.Join(dir, "b.mmap")}
	if len(files) != len(want) {
		t.Fatalf("files = %v, want %v", files, want)
	}
	for i := range want {
		if files[i] != want[i] {
			t.Errorf("files[%d] = %q, want %q", i, files[i], want[i])
		}
	}
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestPickerModel_Navigation(t *testing.T) {
	m := newPickerModel([]string{"a.mmap", "b.mmap", "c.mmap"}, testLogger(), convertOptions{})

	next, _ := m.Update(keyMsg("down"))
	m = next.(pickerModel)
	if m.cursor != 1 {
		t.Errorf("cursor = %d, want 1", m.cursor)
	}

	next, _ = m.Update(keyMsg("down"))
	next, _ = next.(pickerModel).Update(keyMsg("down")) // clamp at bottom
	m = next.(pickerModel)
	if m.cursor != 2 {
		t.Errorf("cursor = %d, want 2", m.cursor)
	}

	next, _ = m.Update(keyMsg("up"))
	m = next.(pickerModel)
	if m.cursor != 1 {
		t.Errorf("cursor = %d, want 1", m.cursor)
	}
}

func TestPickerModel_EnterConverts(t *testing.T) {
	path := writeSample(t)
	m := newPickerModel([]string{path}, testLogger(), convertOptions{tolerance: layout.DefaultTolerance})

	next, cmd := m.Update(keyMsg("enter"))
	m = next.(pickerModel)
	if cmd == nil {
		t.Fatal("enter did not schedule a conversion")
	}

	msg := cmd()
	done, ok := msg.(convertedMsg)
	if !ok {
		t.Fatalf("cmd produced %T, want convertedMsg", msg)
	}
	if done.err != nil {
		t.Fatalf("conversion failed: %v", done.err)
	}

	next, _ = m.Update(done)
	m = next.(pickerModel)
	if !strings.Contains(m.status, "Markdown file created") {
		t.Errorf("status = %q", m.status)
	}

	if _, err := os.Stat(outputPath(path)); err != nil {
		t.Errorf("converted file missing: %v", err)
	}
}

func TestPickerModel_ViewListsFiles(t *testing.T) {
	m := newPickerModel([]string{"a.mmap", "b.mmap"}, testLogger(), convertOptions{})
	view := m.View()
	for _, want := range []string{"a.mmap", "b.mmap", "mm2md"} {
		if !strings.Contains(view, want) {
			t.Errorf("view lacks %q:\n%s", want, view)
		}
	}
}
