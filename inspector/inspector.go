// Package inspector provides a single-step terminal UI for the msp430
// core, built on bubbletea and lipgloss the way gone/cpu's 6502
// debugger was.
package inspector

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"

	"github.com/rgeosits-msp430/msp430-emulator-core/mem"
	"github.com/rgeosits-msp430/msp430-emulator-core/msp430"
)

type model struct {
	core *msp430.Core
	bus  *mem.Bus

	program []byte
	offset  uint16

	prevPC uint16
	last   msp430.Disassembly
	error  error
}

const pages = 65536 / 16

// Init loads the program image at offset and seats PC there.
func (m model) Init() tea.Cmd {
	m.bus.LoadImage(m.offset, m.program)
	m.core.Registers().SetPC(m.offset)
	return nil
}

// Update steps the core once per space/j keypress, or quits on q/error.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q":
			return m, tea.Quit

		case " ", "j":
			m.prevPC = m.core.Registers().PC()
			var d msp430.Disassembly
			_, err := m.core.Step(&d)
			m.last = d
			if err != nil {
				m.error = err
				return m, tea.Quit
			}
		}
	}
	return m, nil
}

func (m model) renderPage(start uint16) string {
	if start%16 != 0 {
		panic("start must be a multiple of 16")
	}
	s := fmt.Sprintf("%04x | ", start)
	pc := m.core.Registers().PC()
	for i, b := range m.bus.Ram[start : start+16] {
		if start+uint16(i) == pc {
			s += fmt.Sprintf("[%02x] ", b)
		} else {
			s += fmt.Sprintf(" %02x  ", b)
		}
	}
	return s
}

func (m model) status() string {
	r := m.core.Registers()
	var flags string
	for _, flag := range []bool{
		r.GetNegative(),
		r.GetOverflow(),
		r.GetZero(),
		r.GetCarry(),
	} {
		if flag {
			flags += "/ "
		} else {
			flags += "  "
		}
	}
	return fmt.Sprintf(`
PC: %04x (%04x)
SP: %04x
SR: %04x
R4: %04x  R5: %04x  R6: %04x  R7: %04x
N V Z C
`,
		r.PC(), m.prevPC,
		r.SP(),
		r.SR(),
		r.Get(4), r.Get(5), r.Get(6), r.Get(7),
	) + flags
}

func (m model) pageTable() string {
	header := "page | "
	for b := range 16 {
		header += fmt.Sprintf("  %01x  ", b)
	}

	rows := []string{header}

	pc := int(m.core.Registers().PC())
	offsets := []int{
		0, 16, 32, 48, 64,
		pc - (pc % 16),
		pc - (pc % 16) + 16,
		pc - (pc % 16) + 32,
	}
	for _, i := range offsets {
		if i < 0 || i+16 > 65536 {
			continue
		}
		rows = append(rows, m.renderPage(uint16(i)))
	}
	return strings.Join(rows, "\n")
}

// View renders the page table, register/flag status, and a go-spew dump
// of the last decoded instruction.
func (m model) View() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.JoinHorizontal(
			lipgloss.Top,
			m.pageTable(),
			m.status(),
		),
		"",
		spew.Sdump(m.last),
	)
}

// Run loads program into bus at offset, binds it to core, and starts an
// interactive single-step TUI.
func Run(core *msp430.Core, bus *mem.Bus, program []byte, offset uint16) error {
	m, err := tea.NewProgram(model{
		core:    core,
		bus:     bus,
		program: program,
		offset:  offset,
	}).Run()
	if err != nil {
		return err
	}
	x := m.(model)
	return x.error
}
