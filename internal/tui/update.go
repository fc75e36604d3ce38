package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/helixml/antigone/domain/search"
	"github.com/helixml/antigone/internal/session"
)

func (m Model) updateRead(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Next):
		t, ok := m.passage.Next()
		if !ok {
			return m, nil
		}
		cmd := tea.Batch(m.fetchLines(t), m.spin())
		return m, cmd

	case key.Matches(msg, m.keys.Prev):
		t, ok := m.passage.Prev()
		if !ok {
			return m, nil
		}
		cmd := tea.Batch(m.fetchLines(t), m.spin())
		return m, cmd

	case key.Matches(msg, m.keys.Jump):
		m.view = viewJump
		m.jumpInput.SetValue("")
		cmd := m.jumpInput.Focus()
		return m, cmd

	case key.Matches(msg, m.keys.Search):
		m.view = viewSearch
		m.inputFocus = true
		cmd := m.queryInput.Focus()
		return m, cmd

	case key.Matches(msg, m.keys.NextWord):
		if len(m.tokens) > 0 {
			m.cursor = (m.cursor + 1) % len(m.tokens)
		}
		return m, nil

	case key.Matches(msg, m.keys.PrevWord):
		if len(m.tokens) > 0 {
			m.cursor = (m.cursor - 1 + len(m.tokens)) % len(m.tokens)
		}
		return m, nil

	case key.Matches(msg, m.keys.Toggle):
		if len(m.tokens) == 0 {
			return m, nil
		}
		tok := m.tokens[m.cursor]
		t, ok := m.lookup.Toggle(tok.selection())
		if !ok {
			return m, nil
		}
		cmd := tea.Batch(m.fetchLookup(t, tok.word), m.spin())
		return m, cmd

	case key.Matches(msg, m.keys.Clear):
		m.lookup.Clear()
		return m, nil

	case key.Matches(msg, m.keys.Retry):
		if t, ok := m.passage.Retry(); ok {
			cmd := tea.Batch(m.fetchLines(t), m.spin())
			return m, cmd
		}
		if t, ok := m.lookup.Retry(); ok {
			cmd := tea.Batch(m.fetchLookup(t, m.lookup.Selection().Word), m.spin())
			return m, cmd
		}
		return m, nil
	}
	return m, nil
}

func (m Model) updateJump(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.jumpInput.Blur()
		m.view = viewRead
		return m, nil

	case key.Matches(msg, m.keys.Submit):
		m.jumpInput.Blur()
		m.view = viewRead
		a := m.passage.Navigator().ParseAddress(m.jumpInput.Value())
		t := m.passage.JumpToRange(a.Start(), a.End())
		cmd := tea.Batch(m.fetchLines(t), m.spin())
		return m, cmd
	}

	var cmd tea.Cmd
	m.jumpInput, cmd = m.jumpInput.Update(msg)
	return m, cmd
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.inputFocus {
		return m.updateQueryInput(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.view = viewRead
		return m, nil

	case key.Matches(msg, m.keys.Edit):
		m.inputFocus = true
		cmd := m.queryInput.Focus()
		return m, cmd

	case key.Matches(msg, m.keys.Up):
		if m.resultIdx > 0 {
			m.resultIdx--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.resultIdx < len(m.search.Visible())-1 {
			m.resultIdx++
		}
		return m, nil

	case key.Matches(msg, m.keys.NextPage):
		m.search.NextPage()
		m.resultIdx = 0
		return m, nil

	case key.Matches(msg, m.keys.PrevPage):
		m.search.PrevPage()
		m.resultIdx = 0
		return m, nil

	case key.Matches(msg, m.keys.Retry):
		t, ok := m.search.Retry()
		if !ok {
			return m, nil
		}
		cmd := tea.Batch(m.fetchSearch(t, m.search.Pending()), m.spin())
		return m, cmd

	case key.Matches(msg, m.keys.Speaker):
		return m.cycleSpeaker(), nil

	case key.Matches(msg, m.keys.Submit):
		visible := m.search.Visible()
		if m.resultIdx >= len(visible) {
			return m, nil
		}
		line := visible[m.resultIdx].Info().LineNumber()
		m.view = viewRead
		t := m.passage.JumpToLine(line)
		cmd := tea.Batch(m.fetchLines(t), m.spin())
		return m, cmd
	}
	return m, nil
}

func (m Model) updateQueryInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.queryInput.Blur()
		m.inputFocus = false
		if m.search.State() == session.StateIdle {
			m.view = viewRead
		}
		return m, nil

	case key.Matches(msg, m.keys.ToggleMode):
		m.mode = m.mode.Toggle()
		return m, nil

	case key.Matches(msg, m.keys.Speaker):
		return m.cycleSpeaker(), nil

	case key.Matches(msg, m.keys.Submit):
		q := search.NewQuery(m.mode, m.queryInput.Value(), m.currentSpeaker())
		t, ok := m.search.Submit(q)
		if !ok {
			return m, nil
		}
		m.queryInput.Blur()
		m.inputFocus = false
		m.resultIdx = 0
		cmd := tea.Batch(m.fetchSearch(t, q), m.spin())
		return m, cmd
	}

	var cmd tea.Cmd
	m.queryInput, cmd = m.queryInput.Update(msg)
	return m, cmd
}

// cycleSpeaker moves the speaker filter to the next speaker, wrapping back
// to everyone after the last.
func (m Model) cycleSpeaker() Model {
	m.speakerIdx = (m.speakerIdx + 1) % (len(m.speakers) + 1)
	m.search.SetSpeaker(m.currentSpeaker())
	m.resultIdx = 0
	return m
}
