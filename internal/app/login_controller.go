package app

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"lavka/internal/api"
)

type loginField int

const (
	loginFieldEmail loginField = iota
	loginFieldPassword
	loginFieldName
)

// LoginController runs the sign-in form shown while no server session is
// valid. ctrl+r flips between login and registration (which adds the
// name field).
type LoginController struct {
	registering bool
	email       textinput.Model
	password    textinput.Model
	name        textinput.Model
	focus       loginField
	errText     string
	busy        bool
	width       int
}

func NewLoginController(width int) *LoginController {
	email := textinput.New()
	email.Placeholder = "email"
	email.CharLimit = 120

	password := textinput.New()
	password.Placeholder = "пароль"
	password.EchoMode = textinput.EchoPassword
	password.CharLimit = 120

	name := textinput.New()
	name.Placeholder = "имя"
	name.CharLimit = 120

	c := &LoginController{email: email, password: password, name: name}
	c.Resize(width)
	return c
}

func (c *LoginController) Resize(width int) {
	width = max(30, width)
	c.width = width
	inner := width - 6
	c.email.Width = inner
	c.password.Width = inner
	c.name.Width = inner
}

func (c *LoginController) Enter() tea.Cmd {
	c.errText = ""
	c.busy = false
	c.password.SetValue("")
	return c.focusField(loginFieldEmail)
}

func (c *LoginController) SetError(message string) {
	c.busy = false
	c.errText = strings.TrimSpace(message)
}

// Update handles form input and returns a login/register command when
// the form is submitted.
func (c *LoginController) Update(msg tea.Msg, auth AuthAPI) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c.updateFocused(msg)
	}
	if c.busy {
		return nil
	}
	switch keyMsg.String() {
	case "tab", "shift+tab", "up", "down":
		return c.cycleFocus(keyMsg.String() == "shift+tab" || keyMsg.String() == "up")
	case "ctrl+r":
		c.registering = !c.registering
		c.errText = ""
		return c.focusField(loginFieldEmail)
	case "enter":
		return c.submit(auth)
	}
	return c.updateFocused(keyMsg)
}

func (c *LoginController) submit(auth AuthAPI) tea.Cmd {
	email := strings.TrimSpace(c.email.Value())
	password := c.password.Value()
	if email == "" || password == "" {
		c.errText = "Укажите email и пароль"
		return nil
	}
	c.busy = true
	c.errText = ""
	if c.registering {
		return registerCmd(auth, api.RegisterRequest{
			Email:    email,
			Password: password,
			Name:     strings.TrimSpace(c.name.Value()),
		})
	}
	return loginCmd(auth, api.LoginRequest{Email: email, Password: password})
}

func (c *LoginController) View() string {
	heading := "Вход"
	action := "ctrl+r регистрация"
	if c.registering {
		heading = "Регистрация"
		action = "ctrl+r вход"
	}
	lines := []string{
		titleStyle.Render(heading),
		"",
		c.email.View(),
		c.password.View(),
	}
	if c.registering {
		lines = append(lines, c.name.View())
	}
	if c.errText != "" {
		lines = append(lines, "", errorTextStyle.Render(truncateToWidth(c.errText, c.width-6)))
	}
	status := "enter отправить · " + action
	if c.busy {
		status = "..."
	}
	lines = append(lines, "", helpStyle.Render(status))
	return editorStyle.Width(c.width).Render(strings.Join(lines, "\n"))
}

func (c *LoginController) cycleFocus(backward bool) tea.Cmd {
	fields := 2
	if c.registering {
		fields = 3
	}
	next := (int(c.focus) + 1) % fields
	if backward {
		next = (int(c.focus) + fields - 1) % fields
	}
	return c.focusField(loginField(next))
}

func (c *LoginController) focusField(field loginField) tea.Cmd {
	c.focus = field
	c.email.Blur()
	c.password.Blur()
	c.name.Blur()
	switch field {
	case loginFieldPassword:
		return c.password.Focus()
	case loginFieldName:
		return c.name.Focus()
	default:
		return c.email.Focus()
	}
}

func (c *LoginController) updateFocused(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch c.focus {
	case loginFieldPassword:
		c.password, cmd = c.password.Update(msg)
	case loginFieldName:
		c.name, cmd = c.name.Update(msg)
	default:
		c.email, cmd = c.email.Update(msg)
	}
	return cmd
}
