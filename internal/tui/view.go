package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/helixml/antigone/domain/lexicon"
	"github.com/helixml/antigone/internal/session"
)

const previewDefinitions = 3

// View renders the current screen.
func (m Model) View() string {
	var sections []string
	sections = append(sections, m.header())

	switch m.view {
	case viewSearch:
		sections = append(sections, m.searchView())
	default:
		sections = append(sections, m.linesView())
		if m.view == viewJump {
			sections = append(sections, m.jumpInput.View())
		}
		if details := m.detailsView(); details != "" {
			sections = append(sections, m.pane().Render(details))
		}
	}

	sections = append(sections, m.helpView())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) pane() lipgloss.Style {
	if m.width > 4 {
		return m.theme.Pane.Width(m.width - 4)
	}
	return m.theme.Pane
}

func (m Model) header() string {
	title := m.theme.Title.Render("Antigone")
	addr := m.passage.Address()
	if addr.IsZero() {
		return title
	}

	nav := m.passage.Navigator()
	status := m.theme.Status.Render(fmt.Sprintf("lines %s  page %d/%d", addr, nav.PageOf(addr.Start()), nav.PageCount()))
	switch m.passage.State() {
	case session.StateLoading:
		status += " " + m.spinner.View() + m.theme.Status.Render(" loading")
	case session.StateError:
		status += " " + m.theme.Error.Render("error: "+m.passage.Err().Error()+" (r to retry)")
	}
	return title + "  " + status
}

func (m Model) linesView() string {
	lines := m.passage.Lines()
	if len(lines) == 0 {
		return m.theme.Muted.Render("(nothing to show)")
	}

	var b strings.Builder
	speaker := ""
	k := 0
	for _, l := range lines {
		if l.HasSpeaker() && l.Speaker() != speaker {
			speaker = l.Speaker()
			b.WriteString(m.theme.Speaker.Render(strings.ToUpper(speaker)))
			b.WriteString("\n")
		}

		b.WriteString(m.theme.LineNum.Render(strconv.Itoa(l.Number())))
		b.WriteString("  ")
		if !l.HasText() {
			b.WriteString(m.theme.Missing.Render("(no text)"))
			b.WriteString("\n")
			continue
		}

		words := l.Words()
		for i, w := range words {
			if i > 0 {
				b.WriteString(" ")
			}
			if k < len(m.tokens) {
				b.WriteString(m.renderToken(m.tokens[k], k == m.cursor))
			} else {
				b.WriteString(m.theme.Text.Render(w))
			}
			k++
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m Model) renderToken(t token, atCursor bool) string {
	switch {
	case m.lookup.IsSelected(t.selection()):
		return m.theme.Selected.Render(t.word)
	case atCursor:
		return m.theme.Cursor.Render(t.word)
	default:
		return m.theme.Text.Render(t.word)
	}
}

func (m Model) detailsView() string {
	sel := m.lookup.Selection()
	switch m.lookup.State() {
	case session.StateLoading:
		return m.spinner.View() + " looking up " + sel.Word
	case session.StateError:
		return m.theme.Error.Render("lookup failed: " + m.lookup.Err().Error() + " (r to retry)")
	case session.StateDisplayed:
	default:
		return ""
	}

	primary, ok := m.lookup.Primary()
	if !ok {
		return m.theme.Muted.Render("No results for " + sel.Word)
	}
	return m.entryDetails(primary, len(m.lookup.Entries())-1)
}

func (m Model) entryDetails(e lexicon.Entry, others int) string {
	info := e.Info()
	rows := []string{
		m.theme.Lemma.Render(info.Lemma()) + "  " + m.theme.Label.Render("form ") + info.Form() +
			"  " + m.theme.Label.Render("line ") + strconv.Itoa(info.LineNumber()),
	}
	if morph := e.Morphology().String(); morph != "" {
		rows = append(rows, m.theme.Label.Render("morphology ")+morph)
	}
	for _, d := range e.Preview(previewDefinitions) {
		rows = append(rows, fmt.Sprintf("%d. %s", d.Number(), d.Short()))
	}
	if others > 0 {
		rows = append(rows, m.theme.Muted.Render(fmt.Sprintf("+%d more entries", others)))
	}
	return strings.Join(rows, "\n")
}

func (m Model) searchView() string {
	speaker := m.currentSpeaker()
	if speaker == "" {
		speaker = "all"
	}
	rows := []string{
		m.queryInput.View(),
		m.theme.Label.Render("mode ") + string(m.mode) + "  " + m.theme.Label.Render("speaker ") + speaker,
	}

	switch m.search.State() {
	case session.StateLoading:
		rows = append(rows, m.spinner.View()+" searching")
	case session.StateError:
		rows = append(rows, m.theme.Error.Render("search failed: "+m.search.Err().Error()+" (r to retry)"))
	case session.StateDisplayed:
		if m.search.IsEmpty() {
			rows = append(rows, m.theme.Muted.Render("No results"))
			break
		}
		for i, e := range m.search.Visible() {
			info := e.Info()
			row := fmt.Sprintf("%4d  %s  %s", info.LineNumber(), info.Lemma(), info.Form())
			if s := info.Speaker(); s != "" {
				row += "  " + m.theme.Speaker.Render(s)
			}
			if i == m.resultIdx && !m.inputFocus {
				row = m.theme.Cursor.Render("> ") + row
			} else {
				row = "  " + row
			}
			rows = append(rows, row)
		}
		p := m.search.Pager()
		rows = append(rows, m.theme.Muted.Render(fmt.Sprintf("page %d/%d  (%d results)", p.Current()+1, p.TotalPages(), p.Len())))
	}
	return strings.Join(rows, "\n")
}

func (m Model) helpView() string {
	h := help.New()
	return m.theme.Help.Render(h.ShortHelpView(m.bindings()))
}

// bindings lists the keys that do something in the current view.
func (m Model) bindings() []key.Binding {
	k := m.keys
	switch m.view {
	case viewJump:
		return []key.Binding{k.Submit, k.Cancel}
	case viewSearch:
		if m.inputFocus {
			return []key.Binding{k.Submit, k.ToggleMode, k.Speaker, k.Cancel}
		}
		b := []key.Binding{k.Up, k.Down}
		p := m.search.Pager()
		if p.HasNext() {
			b = append(b, k.NextPage)
		}
		if p.HasPrev() {
			b = append(b, k.PrevPage)
		}
		return append(b, k.Submit, k.Edit, k.Speaker, k.Cancel)
	}

	var b []key.Binding
	if m.passage.CanAdvance() {
		b = append(b, k.Next)
	}
	if m.passage.CanRetreat() {
		b = append(b, k.Prev)
	}
	b = append(b, k.NextWord, k.Toggle, k.Jump, k.Search)
	if m.passage.State() == session.StateError || m.lookup.State() == session.StateError {
		b = append(b, k.Retry)
	}
	return append(b, k.Quit)
}
