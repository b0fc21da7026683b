package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ami-friedman/budget-compass/internal/models"
)

type categoriesMode int

const (
	categoriesBrowsing categoriesMode = iota
	categoriesAdding
	categoriesRenaming
	categoriesConfirmingArchive
)

type categoriesState struct {
	mode categoriesMode

	// tab indexes models.CategoryTypes; new categories take the active
	// tab's type, which is immutable after creation.
	tab    int
	cursor int

	name   field
	editID int64
}

func newCategoriesState() categoriesState {
	return categoriesState{name: newField("Name")}
}

func (s categoriesState) typ() models.CategoryType {
	return models.CategoryTypes[s.tab]
}

func (m Model) handleCategoriesKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keys

	switch {
	case keyMatches(msg, keys.NextTab):
		m.categories.tab = (m.categories.tab + 1) % len(models.CategoryTypes)
		m.categories.cursor = 0
		return m, nil

	case keyMatches(msg, keys.PrevTab):
		m.categories.tab = (m.categories.tab + len(models.CategoryTypes) - 1) % len(models.CategoryTypes)
		m.categories.cursor = 0
		return m, nil

	case keyMatches(msg, keys.Up):
		if m.categories.cursor > 0 {
			m.categories.cursor--
		}
		return m, nil

	case keyMatches(msg, keys.Down):
		if m.categories.cursor < len(m.categoryRows())-1 {
			m.categories.cursor++
		}
		return m, nil

	case keyMatches(msg, keys.New):
		m.categories.mode = categoriesAdding
		m.categories.editID = 0
		m.categories.name.Reset()
		return m, nil

	case keyMatches(msg, keys.Edit):
		rows := m.categoryRows()
		if len(rows) == 0 || m.categories.cursor >= len(rows) {
			return m, nil
		}
		category := rows[m.categories.cursor]
		m.categories.mode = categoriesRenaming
		m.categories.editID = category.ID
		m.categories.name.SetValue(category.Name)
		return m, nil

	case keyMatches(msg, keys.Delete):
		if len(m.categoryRows()) == 0 {
			return m, nil
		}
		m.categories.mode = categoriesConfirmingArchive
		return m, nil
	}
	return m, nil
}

func (m Model) handleCategoriesFormKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.categories.mode == categoriesConfirmingArchive {
		return m.handleCategoriesArchiveKeys(msg)
	}

	switch msg.Type {
	case tea.KeyEsc:
		m.categories.mode = categoriesBrowsing
		return m, nil

	case tea.KeyEnter:
		name := strings.TrimSpace(m.categories.name.Value())
		if name == "" {
			m.status = "Category name must not be empty"
			return m, nil
		}

		categories := m.stores.Categories
		if m.categories.mode == categoriesRenaming {
			id := m.categories.editID
			m.categories.mode = categoriesBrowsing
			return m, opCmd(func(ctx context.Context) error {
				_, err := categories.Update(ctx, id, models.CategoryUpdate{Name: name})
				return err
			})
		}

		in := models.CategoryCreate{Name: name, Type: m.categories.typ()}
		m.categories.mode = categoriesBrowsing
		return m, opCmd(func(ctx context.Context) error {
			_, err := categories.Create(ctx, in)
			return err
		})
	}

	m.categories.name.handleKey(msg)
	return m, nil
}

func (m Model) handleCategoriesArchiveKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keys
	switch {
	case keyMatches(msg, keys.Cancel):
		m.categories.mode = categoriesBrowsing
		return m, nil

	case keyMatches(msg, keys.Confirm):
		rows := m.categoryRows()
		m.categories.mode = categoriesBrowsing
		if len(rows) == 0 || m.categories.cursor >= len(rows) {
			return m, nil
		}
		id := rows[m.categories.cursor].ID
		if m.categories.cursor > 0 {
			m.categories.cursor--
		}
		categories := m.stores.Categories
		return m, opCmd(func(ctx context.Context) error {
			return categories.Archive(ctx, id)
		})
	}
	return m, nil
}

func (m Model) categoryRows() []models.Category {
	return m.stores.Views.CategoriesByType(m.categories.typ())
}

func (m Model) viewCategories() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("Categories"))
	b.WriteString("  ")
	b.WriteString(viewTypeTabs(m.categories.tab))
	b.WriteString("\n\n")

	rows := m.categoryRows()
	if len(rows) == 0 {
		b.WriteString(mutedStyle.Render("No categories of this type. Press n to add one."))
		b.WriteString("\n")
	}
	for i, category := range rows {
		line := category.Name
		if category.Description != "" {
			line += "  " + mutedStyle.Render(category.Description)
		}
		if i == m.categories.cursor && m.categories.mode == categoriesBrowsing {
			line = selectedStyle.Render(category.Name)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	switch m.categories.mode {
	case categoriesAdding, categoriesRenaming:
		b.WriteString("\n")
		if m.categories.mode == categoriesAdding {
			b.WriteString(mutedStyle.Render("New " + string(m.categories.typ()) + " category"))
			b.WriteString("\n")
		}
		b.WriteString(m.categories.name.view(true))
		b.WriteString("\n")
		b.WriteString(mutedStyle.Render("enter: save · esc: cancel"))
		b.WriteString("\n")

	case categoriesConfirmingArchive:
		if m.categories.cursor < len(rows) {
			b.WriteString("\n")
			b.WriteString(errorStyle.Render(fmt.Sprintf(
				"Archive %s? Its history stays visible as %q. (enter/esc)",
				rows[m.categories.cursor].Name, "Unknown Category")))
			b.WriteString("\n")
		}
	}

	return boxStyle.Render(b.String())
}
