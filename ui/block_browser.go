package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"srr-reader/srr"
	"srr-reader/srr/block"
)

// BlockBrowser lists the blocks of a decoded file and shows details for the
// selected one.
type BlockBrowser struct {
	path     string
	file     srr.File
	selected int
	expanded bool
}

func CreateBlockBrowser(path string, file srr.File) BlockBrowser {
	return BlockBrowser{
		path:     path,
		file:     file,
		selected: 0,
		expanded: false,
	}
}

func (s BlockBrowser) Init() tea.Cmd {
	return nil
}

func (s BlockBrowser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	switch keyMsg.String() {
	case "q", "ctrl+c", "esc":
		return s, tea.Quit
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
	case "down", "j":
		if s.selected < len(s.file.Blocks)-1 {
			s.selected++
		}
	case "enter", " ":
		s.expanded = !s.expanded
	}
	return s, nil
}

func (s BlockBrowser) View() string {
	output := "SRR READER\n\n"
	output += "File: " + s.path + "\n"
	output += "Application: " + s.file.ApplicationName + "\n\n"

	if len(s.file.Blocks) == 0 {
		output += "No blocks after the file header.\n"
	}
	for i, record := range s.file.Blocks {
		cursor := "  "
		if i == s.selected {
			cursor = "> "
		}
		output += cursor + recordTitle(record) + "\n"
		if i == s.selected && s.expanded {
			output += recordDetails(record)
		}
	}

	output += "\nup/down: move - enter: details - q: quit\n"
	return output
}

func recordTitle(record srr.Record) string {
	switch body := record.Body.(type) {
	case *block.StoredFile:
		return fmt.Sprintf("%v %s", record.Header.Type, body.Name)
	case *block.RarFile:
		return fmt.Sprintf("%v %s", record.Header.Type, body.FileName)
	default:
		return record.Header.Type.String()
	}
}

func recordDetails(record srr.Record) string {
	lines := []string{
		fmt.Sprintf("offset: %d", record.Offset),
		record.Header.String(),
	}
	if storedFile, ok := record.Body.(*block.StoredFile); ok {
		lines = append(
			lines,
			fmt.Sprintf("payload: %d bytes at [%d, %d)", storedFile.FileSize, storedFile.DataOffset, storedFile.DataEnd),
		)
	}
	return "      " + strings.Join(lines, "\n      ") + "\n"
}
