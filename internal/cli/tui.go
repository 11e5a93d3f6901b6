package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/reyanb/MindManager-to-Md/format"
)

// runPicker starts the interactive file picker: it lists the supported
// mind maps in the working directory and converts the selected one.
func runPicker(logger *log.Logger, opts convertOptions) error {
	files, err := supportedFiles(".")
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no .mmap or .xmmap files in the current directory")
	}

	m := newPickerModel(files, logger, opts)
	_, err = tea.NewProgram(m).Run()
	return err
}

// supportedFiles lists the convertible files directly under dir, sorted
// by name.
func supportedFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if format.Detect(e.Name()) != format.Unknown {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(files)
	return files, nil
}

// convertedMsg reports the outcome of a conversion started from the picker.
type convertedMsg struct {
	path string
	err  error
}

// pickerModel is the bubbletea model for interactive file selection.
type pickerModel struct {
	files  []string
	cursor int
	status string
	logger *log.Logger
	opts   convertOptions
}

func newPickerModel(files []string, logger *log.Logger, opts convertOptions) pickerModel {
	return pickerModel{
		files:  files,
		logger: logger,
		opts:   opts,
		status: "Pick a mind map to convert.",
	}
}

func (m pickerModel) Init() tea.Cmd {
	return nil
}

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.files)-1 {
				m.cursor++
			}
		case "enter":
			path := m.files[m.cursor]
			m.status = "Converting " + path + "..."
			return m, func() tea.Msg {
				return convertedMsg{path: path, err: convertFile(m.logger, path, m.opts)}
			}
		}

	case convertedMsg:
		if msg.err != nil {
			m.status = styleError.Render(msg.err.Error())
		} else {
			m.status = styleSuccess.Render("Markdown file created: " + outputPath(msg.path))
		}
	}
	return m, nil
}

func (m pickerModel) View() string {
	var b strings.Builder

	b.WriteString(styleTitle.Render("mm2md"))
	b.WriteString("\n")
	b.WriteString(styleDim.Render("↑/↓ navigate  ⏎ convert  q quit"))
	b.WriteString("\n\n")

	for i, f := range m.files {
		cursor := "  "
		style := styleNormal
		if i == m.cursor {
			cursor = "▸ "
			style = styleSelected
		}
		b.WriteString(cursor)
		b.WriteString(style.Render(f))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.status)
	b.WriteString("\n")
	return b.String()
}
