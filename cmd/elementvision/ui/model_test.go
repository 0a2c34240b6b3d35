package ui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"elementvision/internal/catalog"
	"elementvision/internal/present"
	"elementvision/internal/resolve"
)

func testRecord(name, nameCN, symbol string, number int) catalog.Record {
	return catalog.Record{
		Name:         name,
		NameCN:       nameCN,
		Symbol:       symbol,
		AtomicNumber: number,
		Safety:       catalog.Safety{HazardLevel: catalog.HazardLow},
	}
}

func testModel(t *testing.T) Model {
	t.Helper()
	cat, err := catalog.New([]catalog.Record{
		testRecord("Gold", "金", "Au", 79),
	})
	require.NoError(t, err)

	m := New(resolve.New(cat, resolve.Config{Mode: resolve.ModeStrict}), present.LocaleZH)
	sized, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return sized.(Model)
}

func press(m Model, key tea.KeyType) Model {
	next, _ := m.Update(tea.KeyMsg{Type: key})
	return next.(Model)
}

func submit(m Model, query string) Model {
	m.input.SetValue(query)
	return press(m, tea.KeyEnter)
}

func TestUpdate_EnterStartsLookup(t *testing.T) {
	m := testModel(t)

	m = submit(m, "gold")
	assert.True(t, m.loading)
	assert.True(t, m.session.Busy())
}

func TestUpdate_EmptyQueryIgnored(t *testing.T) {
	m := testModel(t)

	m = submit(m, "   ")
	assert.False(t, m.loading)
}

func TestUpdate_BusyGateBlocksSecondEnter(t *testing.T) {
	m := testModel(t)

	m = submit(m, "gold")
	require.True(t, m.loading)

	// A second enter while loading must not start a new generation.
	m = submit(m, "neon")
	assert.True(t, m.loading)
	assert.True(t, m.session.Accept(1), "generation should still be the first")
}

func TestUpdate_StaleResponseDropped(t *testing.T) {
	m := testModel(t)

	// First lookup, then abandon it and start a second.
	m = submit(m, "gold")
	m = press(m, tea.KeyEsc)
	require.False(t, m.loading)
	m = submit(m, "neon")
	require.True(t, m.loading)

	// The first lookup's response arrives late; it must be dropped.
	next, _ := m.Update(resolvedMsg{token: 1, record: testRecord("Gold", "金", "Au", 79)})
	m = next.(Model)
	assert.True(t, m.loading)
	assert.Nil(t, m.view)

	// The current generation's response lands.
	next, _ = m.Update(resolvedMsg{token: 2, record: testRecord("Neon", "氖", "Ne", 10)})
	m = next.(Model)
	assert.False(t, m.loading)
	require.NotNil(t, m.view)
	assert.Equal(t, "氖", m.view.Name)
}

func TestUpdate_StaleFailureDropped(t *testing.T) {
	m := testModel(t)

	m = submit(m, "gold")
	m = press(m, tea.KeyEsc)
	m = submit(m, "neon")

	next, _ := m.Update(resolveFailedMsg{token: 1, err: resolve.ErrNotFound})
	m = next.(Model)
	assert.True(t, m.loading)
	assert.NoError(t, m.lookupErr)
}

func TestUpdate_ResponseAcceptedOnce(t *testing.T) {
	m := testModel(t)

	m = submit(m, "gold")
	next, _ := m.Update(resolvedMsg{token: 1, record: testRecord("Gold", "金", "Au", 79)})
	m = next.(Model)
	require.NotNil(t, m.view)

	// A duplicate delivery of the same generation is dropped.
	next, _ = m.Update(resolveFailedMsg{token: 1, err: resolve.ErrNotFound})
	m = next.(Model)
	assert.NoError(t, m.lookupErr)
	assert.NotNil(t, m.view)
}

func TestUpdate_LocaleToggleReprojects(t *testing.T) {
	m := testModel(t)

	m = submit(m, "gold")
	next, _ := m.Update(resolvedMsg{token: 1, record: testRecord("Gold", "金", "Au", 79)})
	m = next.(Model)
	require.NotNil(t, m.view)
	assert.Equal(t, "金", m.view.Name)

	m = press(m, tea.KeyCtrlL)
	require.NotNil(t, m.view)
	assert.Equal(t, "Gold", m.view.Name)
	assert.Equal(t, present.MessagesFor(present.LocaleEN).SearchPrompt, m.input.Placeholder)

	m = press(m, tea.KeyCtrlL)
	assert.Equal(t, "金", m.view.Name)
}

func TestView_NotFoundShowsSuggestions(t *testing.T) {
	m := testModel(t)

	m = submit(m, "unobtainium")
	next, _ := m.Update(resolveFailedMsg{token: 1, err: resolve.ErrNotFound})
	m = next.(Model)

	out := m.View()
	assert.Contains(t, out, m.msgs.NotFound)
	for _, s := range present.Suggestions {
		assert.Contains(t, out, s)
	}
}

func TestView_UpstreamFailureShowsRetryCopy(t *testing.T) {
	m := testModel(t)

	m = submit(m, "technetium")
	next, _ := m.Update(resolveFailedMsg{
		token: 1,
		err:   &resolve.UpstreamError{Stage: "complete", Err: errors.New("boom")},
	})
	m = next.(Model)

	out := m.View()
	assert.Contains(t, out, m.msgs.UpstreamErr)
	// Upstream internals never reach the screen.
	assert.NotContains(t, out, "boom")
}

func TestView_LoadingShowsSpinnerCopy(t *testing.T) {
	m := testModel(t)

	m = submit(m, "gold")
	assert.Contains(t, m.View(), m.msgs.Searching)
}

func TestView_ResolvedShowsCard(t *testing.T) {
	m := testModel(t)

	m = submit(m, "gold")
	next, _ := m.Update(resolvedMsg{token: 1, record: testRecord("Gold", "金", "Au", 79)})
	m = next.(Model)

	out := m.View()
	assert.Contains(t, out, "Au")
	assert.True(t, strings.Contains(out, "金") && strings.Contains(out, "Gold"))
}
