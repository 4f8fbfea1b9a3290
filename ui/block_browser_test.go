package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"srr-reader/srr"
	"srr-reader/srr/srrtest"
)

func press(t *testing.T, model tea.Model, msg tea.KeyMsg) tea.Model {
	t.Helper()
	next, _ := model.Update(msg)
	return next
}

func TestBlockBrowser_Navigation(t *testing.T) {
	file, err := srr.Decode(srrtest.Concat(
		srrtest.FileHeader("ReScene .NET 1.2"),
		srrtest.StoredFile("release.nfo", []byte("nfo")),
		srrtest.RarFile("release.rar"),
	))
	require.NoError(t, err)

	var model tea.Model = CreateBlockBrowser("release.srr", *file)
	assert.Contains(t, model.View(), "> StoredFile release.nfo")

	model = press(t, model, tea.KeyMsg{Type: tea.KeyDown})
	model = press(t, model, tea.KeyMsg{Type: tea.KeyDown})
	assert.Contains(t, model.View(), "> RarFile release.rar")

	model = press(t, model, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}})
	model = press(t, model, tea.KeyMsg{Type: tea.KeyEnter})
	view := model.View()
	assert.Contains(t, view, "> StoredFile release.nfo")
	assert.Contains(t, view, "payload: 3 bytes at [49, 52)")

	_, cmd := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestBlockBrowser_Empty(t *testing.T) {
	file, err := srr.Decode(srrtest.FileHeader("Hello"))
	require.NoError(t, err)

	model := CreateBlockBrowser("hello.srr", *file)
	assert.Contains(t, model.View(), "Application: Hello")
	assert.Contains(t, model.View(), "No blocks after the file header.")
}
