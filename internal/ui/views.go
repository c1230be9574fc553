package ui

import (
	"fmt"
	"strings"
)

func (m *Model) View() string {
	if m.screen == screenWelcome {
		return m.viewWelcome()
	}
	return m.viewTasks()
}

func (m *Model) viewWelcome() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("taskpad"))
	b.WriteString("\n\n")
	b.WriteString(greetingStyle.Render("Hello, world."))
	b.WriteString("\n\n")
	if m.helloOnly {
		b.WriteString(hintStyle.Render("press any key to exit"))
	} else {
		b.WriteString(hintStyle.Render("press any key to open your tasks · q to quit"))
	}
	return welcomeBox.Render(b.String()) + "\n"
}

func (m *Model) viewTasks() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Tasks"))
	b.WriteString("\n\n")

	tasks := m.ctrl.Tasks()
	if len(tasks) == 0 && m.mode != inputAdd {
		b.WriteString(hintStyle.Render("No tasks yet. Press a to add one."))
		b.WriteString("\n")
	}

	editing := m.ctrl.Editing()
	for i, t := range tasks {
		marker := "  "
		if i == m.cursor && m.mode == inputNone {
			marker = cursorStyle.Render("> ")
		}

		check := "[ ]"
		if t.Completed {
			check = "[x]"
		}

		if m.mode == inputEdit && t.ID == editing {
			b.WriteString(fmt.Sprintf("%s%s %s\n", marker, check, m.input.View()))
			continue
		}

		text := t.Text
		style := fadeStyle(m.ctrl.Presence(t.ID))
		if t.Completed {
			style = doneStyle
		}
		b.WriteString(fmt.Sprintf("%s%s %s\n", marker, check, style.Render(text)))
	}

	if m.mode == inputAdd {
		b.WriteString("\n")
		b.WriteString("add: " + m.input.View())
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")
	return b.String()
}
