package tui

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/tarea/internal/models"
	"github.com/thenoetrevino/tarea/internal/tui/components"
	"github.com/thenoetrevino/tarea/internal/tui/layers"
	"github.com/thenoetrevino/tarea/internal/tui/notifications"
	"github.com/thenoetrevino/tarea/internal/tui/state"
	"github.com/thenoetrevino/tarea/internal/tui/theme"
)

// headerHeight is the title line plus the search line
const headerHeight = 2

// View renders the current state of the application
// This implements the "View" part of the Model-View-Update pattern
func (m Model) View() tea.View {
	var view tea.View
	view.AltScreen = true
	view.BackgroundColor = lipgloss.Color(theme.Background)

	// Wait for terminal size to be initialized
	if m.UiState.Width() == 0 {
		view.Content = "Loading..."
		return view
	}

	// Always show the lists, with modal overlays on top
	layerStack := []*lipgloss.Layer{
		lipgloss.NewLayer(m.renderLists()),
	}

	var modalLayer *lipgloss.Layer
	switch m.UiState.Mode() {
	case state.FormMode:
		modalLayer = m.renderFormLayer()
	case state.HelpMode:
		modalLayer = m.renderHelpLayer()
	case state.DeleteConfirmMode:
		modalLayer = m.renderDeleteConfirmLayer()
	}
	if modalLayer != nil {
		layerStack = append(layerStack, modalLayer)
	}

	layerStack = append(layerStack, m.NotificationState.GetLayers(notifications.RenderFromState)...)

	view.Content = lipgloss.NewCanvas(layerStack...).Render()
	return view
}

// renderLists renders the header, both panes side by side and the status bar
func (m Model) renderLists() string {
	width := m.UiState.Width()
	paneHeight := max(m.UiState.Height()-headerHeight-1, 5)
	leftWidth := width / 2
	rightWidth := width - leftWidth

	pending := m.currentView(models.ListPending)
	completed := m.currentView(models.ListCompleted)

	panes := lipgloss.JoinHorizontal(lipgloss.Top,
		components.RenderPane(components.PaneProps{
			Title:     "Pending",
			Tasks:     pending,
			Selected:  m.UiState.SelectedIn(models.ListPending),
			Active:    m.UiState.ActiveList() == models.ListPending,
			IsOverdue: m.App.TaskStore.IsOverdue,
			Width:     leftWidth,
			Height:    paneHeight,
		}),
		components.RenderPane(components.PaneProps{
			Title:     "Completed",
			Tasks:     completed,
			Selected:  m.UiState.SelectedIn(models.ListCompleted),
			Active:    m.UiState.ActiveList() == models.ListCompleted,
			Completed: true,
			Width:     rightWidth,
			Height:    paneHeight,
		}),
	)

	counts := m.App.TaskStore.Counts()
	status := components.RenderStatusBar(components.StatusBarProps{
		Pending:   counts.Pending,
		Completed: counts.Completed,
		Overdue:   counts.Overdue,
		Category:  m.FilterState.CategoryLabel(),
		Search:    m.FilterState.Query(),
		Hint:      m.help.ShortHelpView(m.keys.ShortHelp()),
		Width:     width,
	})

	return lipgloss.JoinVertical(lipgloss.Left, m.renderHeader(), panes, status)
}

// renderHeader renders the app title and the search box
func (m Model) renderHeader() string {
	title := components.PaneTitleStyle.Render("tarea")

	search := components.MetaStyle.Render(fmt.Sprintf("press %s to search", m.Config.KeyMappings.Search))
	if m.UiState.Mode() == state.SearchMode || m.FilterState.Query() != "" {
		search = m.FilterState.Input.View()
	}

	return lipgloss.JoinVertical(lipgloss.Left, title, search)
}

// renderFormLayer renders the add/edit task form modal as a layer
func (m Model) renderFormLayer() *lipgloss.Layer {
	form := m.FormState.Form()
	if form == nil {
		return nil
	}

	layerWidth, _ := layers.ModalSize(m.UiState.Width(), m.UiState.Height(), 50, 20)

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.Highlight))
	formTitle := titleStyle.Render("New Task")
	box := components.FormBoxStyle
	if m.App.Editor.Editing() {
		formTitle = titleStyle.Render("Edit Task")
		box = components.EditBoxStyle
	}

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle))
	helpText := helpStyle.Render(fmt.Sprintf("%s: %s  esc: cancel", m.Config.KeyMappings.SaveForm, m.App.Editor.SubmitLabel()))

	content := lipgloss.JoinVertical(lipgloss.Left,
		formTitle,
		"",
		form.View(),
		"",
		helpText,
	)

	return layers.CreateCenteredLayer(box.Width(layerWidth).Render(content), m.UiState.Width(), m.UiState.Height())
}

// renderHelpLayer renders the keyboard shortcuts overlay
func (m Model) renderHelpLayer() *lipgloss.Layer {
	title := components.PaneTitleStyle.Render("tarea - Keyboard Shortcuts")
	content := lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		m.help.FullHelpView(m.keys.FullHelp()),
		"",
		components.MetaStyle.Render("Press "+m.Config.KeyMappings.ShowHelp+" or esc to close"),
	)
	return layers.CreateCenteredLayer(components.HelpBoxStyle.Render(content), m.UiState.Width(), m.UiState.Height())
}

// renderDeleteConfirmLayer asks before deleting the target task
func (m Model) renderDeleteConfirmLayer() *lipgloss.Layer {
	task, list, ok := m.App.TaskStore.Find(m.UiState.DeleteTarget())
	if !ok {
		return nil
	}
	content := fmt.Sprintf("Delete '%s' from %s?\n\n[y]es  [n]o", task.Text, list)
	return layers.CreateCenteredLayer(components.DeleteBoxStyle.Width(50).Render(content), m.UiState.Width(), m.UiState.Height())
}
