package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"srr-reader/srr"
)

func Start(path string, file srr.File) error {
	blockBrowser := CreateBlockBrowser(path, file)
	return tea.NewProgram(blockBrowser).Start()
}
