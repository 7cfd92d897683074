package app

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"lavka/internal/logging"
	"lavka/internal/types"
)

const (
	tickInterval         = 250 * time.Millisecond
	defaultToastDuration = 2 * time.Second
	minContentHeight     = 6
	minPanelWidth        = 28
)

type view int

const (
	viewLogin view = iota
	viewShop
	viewNotes
	viewAdmin
)

type shopPane int

const (
	paneProducts shopPane = iota
	paneCart
)

// Model owns every UI singleton the views share: the toast region, the
// confirm prompt, and the note editor. Server state (products, cart,
// notes) is only ever replaced wholesale from fetch responses, never
// patched in place.
type Model struct {
	catalog CatalogAPI
	notes   NotesAPI
	auth    AuthAPI
	admin   AdminAPI
	logger  *slog.Logger

	toastDuration time.Duration

	view   view
	width  int
	height int
	status string

	user    *types.User
	started bool

	toastText  string
	toastLevel toastLevel
	toastUntil time.Time

	shopSearch    textinput.Model
	shopSearching bool
	shopQuery     string
	shopSeq       int
	products      []*types.Product
	productIndex  int
	cart          *types.Cart
	cartIndex     int
	shopPane      shopPane

	notesSearch    textinput.Model
	notesSearching bool
	notesQuery     string
	notesSeq       int
	noteList       []*types.Note
	noteIndex      int
	pendingEditID  int
	confirmNoteID  int

	adminUsers    []*types.User
	adminOrders   []*types.Order
	adminFeedback []*types.Feedback

	editor  *NoteEditorController
	confirm *ConfirmController
	login   *LoginController

	readerOpen bool
	readerNote *types.Note
	reader     viewport.Model
}

type Options struct {
	Logger        *slog.Logger
	ToastDuration time.Duration
}

func NewModel(client API, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Nop()
	}
	toastDuration := opts.ToastDuration
	if toastDuration <= 0 {
		toastDuration = defaultToastDuration
	}

	shopSearch := textinput.New()
	shopSearch.Placeholder = "поиск товаров"
	shopSearch.Prompt = "/ "

	notesSearch := textinput.New()
	notesSearch.Placeholder = "поиск заметок"
	notesSearch.Prompt = "/ "

	return Model{
		catalog:       client,
		notes:         client,
		auth:          client,
		admin:         client,
		logger:        logger,
		toastDuration: toastDuration,
		view:          viewLogin,
		shopSearch:    shopSearch,
		notesSearch:   notesSearch,
		cart:          &types.Cart{},
		editor:        NewNoteEditorController(minPanelWidth * 2),
		confirm:       NewConfirmController(),
		login:         NewLoginController(minPanelWidth * 2),
		reader:        viewport.New(minPanelWidth*2, minContentHeight),
	}
}

func Run(client API, opts Options) error {
	model := NewModel(client, opts)
	p := tea.NewProgram(&model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(fetchMeCmd(m.auth), tickCmd())
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	case tickMsg:
		m.handleTick(msg)
		return m, tickCmd()
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}
	if cmd, handled := m.handleAsync(msg); handled {
		return m, cmd
	}
	return m, m.routeComponentMsg(msg)
}

func (m *Model) handleTick(msg tickMsg) {
	if m.toastText != "" && !m.toastActive(time.Time(msg)) {
		m.clearToast()
	}
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	panel := max(minPanelWidth, width/2-2)
	m.shopSearch.Width = panel - 4
	m.notesSearch.Width = width - 8
	m.editor.Resize(min(width-4, 72))
	m.login.Resize(min(width-4, 48))
	m.reader.Width = max(20, width-6)
	m.reader.Height = max(minContentHeight, height-8)
}

// handleKey routes keys by interaction priority: modals first, then the
// live search input, then the active view.
func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if msg.String() == "ctrl+c" {
		return tea.Quit
	}
	if m.view == viewLogin {
		return m.login.Update(msg, m.auth)
	}
	if m.confirm.IsOpen() {
		return m.handleConfirmKey(msg)
	}
	if m.editor.IsOpen() {
		_, submit, cmd := m.editor.Update(msg)
		if submit {
			return saveNoteCmd(m.notes, m.editor.Editing(), m.editor.Form())
		}
		return cmd
	}
	if m.readerOpen {
		return m.handleReaderKey(msg)
	}
	if m.view == viewShop && m.shopSearching {
		return m.handleShopSearchKey(msg)
	}
	if m.view == viewNotes && m.notesSearching {
		return m.handleNotesSearchKey(msg)
	}

	switch msg.String() {
	case "q":
		return tea.Quit
	case "tab":
		return m.cycleView()
	case "1":
		return m.switchView(viewShop)
	case "2":
		return m.switchView(viewNotes)
	case "3":
		return m.switchView(viewAdmin)
	case "r":
		return m.refreshView()
	case "ctrl+l":
		return logoutCmd(m.auth)
	}

	switch m.view {
	case viewShop:
		return m.handleShopKey(msg)
	case viewNotes:
		return m.handleNotesKey(msg)
	}
	return nil
}

func (m *Model) handleConfirmKey(msg tea.KeyMsg) tea.Cmd {
	handled, choice := m.confirm.HandleKey(msg)
	if !handled {
		return nil
	}
	switch choice {
	case confirmChoiceConfirm:
		id := m.confirmNoteID
		m.confirmNoteID = 0
		m.confirm.Close()
		if id != 0 {
			return deleteNoteCmd(m.notes, id)
		}
	case confirmChoiceCancel:
		m.confirmNoteID = 0
		m.confirm.Close()
	}
	return nil
}

func (m *Model) cycleView() tea.Cmd {
	next := viewShop
	switch m.view {
	case viewShop:
		next = viewNotes
	case viewNotes:
		if m.user.IsAdmin() {
			next = viewAdmin
		}
	}
	return m.switchView(next)
}

func (m *Model) switchView(next view) tea.Cmd {
	if next == viewAdmin && !m.user.IsAdmin() {
		// Display-only gate; the server rejects the calls regardless.
		return nil
	}
	if m.view == next {
		return nil
	}
	m.view = next
	if next == viewAdmin {
		return fetchAdminCmd(m.admin)
	}
	return nil
}

func (m *Model) refreshView() tea.Cmd {
	switch m.view {
	case viewShop:
		m.shopSeq++
		return tea.Batch(fetchProductsCmd(m.catalog, m.shopSeq, m.shopQuery), fetchCartCmd(m.catalog))
	case viewNotes:
		return m.reloadNotes()
	case viewAdmin:
		return fetchAdminCmd(m.admin)
	}
	return nil
}

// activate runs the initial loads once a session is established: the
// full catalog, the cart, and the note list.
func (m *Model) activate() tea.Cmd {
	m.view = viewShop
	m.started = true
	m.shopSeq++
	m.notesSeq++
	return tea.Batch(
		fetchProductsCmd(m.catalog, m.shopSeq, m.shopQuery),
		fetchCartCmd(m.catalog),
		fetchNotesCmd(m.notes, m.notesSeq, m.notesQuery),
	)
}

func (m *Model) reloadNotes() tea.Cmd {
	m.notesSeq++
	return fetchNotesCmd(m.notes, m.notesSeq, m.notesQuery)
}

func (m *Model) handleAsync(msg tea.Msg) (tea.Cmd, bool) {
	switch msg := msg.(type) {
	case meMsg:
		if !msg.res.OK || msg.user == nil {
			m.view = viewLogin
			return m.login.Enter(), true
		}
		m.user = msg.user
		return m.activate(), true

	case loginMsg:
		if !msg.res.OK || msg.user == nil {
			fallback := "Неверный email или пароль"
			if msg.registered {
				fallback = "Не удалось зарегистрироваться"
			}
			m.login.SetError(msg.res.ErrorMessage(fallback))
			return nil, true
		}
		m.user = msg.user
		if msg.registered {
			m.showInfoToast("Регистрация успешна")
		} else {
			m.showInfoToast("Вход выполнен")
		}
		return m.activate(), true

	case logoutMsg:
		m.user = nil
		m.started = false
		m.view = viewLogin
		m.showInfoToast("Вы вышли из системы")
		return m.login.Enter(), true

	case productsMsg:
		if msg.seq != m.shopSeq {
			// stale response from an abandoned keystroke
			return nil, true
		}
		if !msg.res.OK {
			m.status = "товары: " + msg.res.ErrorMessage("ошибка загрузки")
			m.logger.Warn("list products failed", "query", msg.query, "status", msg.res.Status)
			return nil, true
		}
		m.products = msg.products
		if m.productIndex >= len(m.products) {
			m.productIndex = max(0, len(m.products)-1)
		}
		m.status = fmt.Sprintf("товаров: %d", len(m.products))
		return nil, true

	case cartMsg:
		if !msg.res.OK {
			m.status = "корзина: " + msg.res.ErrorMessage("ошибка загрузки")
			m.logger.Warn("get cart failed", "status", msg.res.Status)
			return nil, true
		}
		m.cart = msg.cart
		if m.cartIndex >= len(m.cart.Items) {
			m.cartIndex = max(0, len(m.cart.Items)-1)
		}
		return nil, true

	case cartAddedMsg:
		if !msg.res.OK {
			// No toast here: the cart simply not changing is the signal.
			m.logger.Warn("add to cart failed", "product_id", msg.productID, "status", msg.res.Status)
			return nil, true
		}
		m.showInfoToast("Товар добавлен в корзину")
		return fetchCartCmd(m.catalog), true

	case cartItemRemovedMsg:
		if !msg.res.OK {
			m.logger.Warn("remove cart item failed", "product_id", msg.productID, "status", msg.res.Status)
			return nil, true
		}
		m.showInfoToast("Товар удалён")
		return fetchCartCmd(m.catalog), true

	case cartClearedMsg:
		if !msg.res.OK {
			m.logger.Warn("clear cart failed", "status", msg.res.Status)
			return nil, true
		}
		m.showInfoToast("Корзина очищена")
		return fetchCartCmd(m.catalog), true

	case checkoutMsg:
		if !msg.res.OK {
			m.showErrorToast(msg.res.ErrorMessage("Не удалось оформить заказ"))
			return nil, true
		}
		if msg.order != nil {
			m.showInfoToast(fmt.Sprintf("Заказ №%d оформлен", msg.order.ID))
		} else {
			m.showInfoToast("Заказ оформлен")
		}
		return fetchCartCmd(m.catalog), true

	case notesMsg:
		if msg.seq != m.notesSeq {
			return nil, true
		}
		if !msg.res.OK {
			m.status = "заметки: " + msg.res.ErrorMessage("ошибка загрузки")
			m.logger.Warn("list notes failed", "query", msg.query, "status", msg.res.Status)
			m.pendingEditID = 0
			return nil, true
		}
		m.noteList = msg.notes
		if m.noteIndex >= len(m.noteList) {
			m.noteIndex = max(0, len(m.noteList)-1)
		}
		var cmd tea.Cmd
		if m.pendingEditID != 0 {
			if note := findNote(m.noteList, m.pendingEditID); note != nil {
				cmd = m.editor.OpenEdit(note)
			} else {
				m.status = "заметка не найдена"
			}
			m.pendingEditID = 0
		}
		return cmd, true

	case noteSavedMsg:
		if !msg.res.OK {
			// Editor stays open so nothing typed is lost.
			m.logger.Warn("save note failed", "id", msg.id, "status", msg.res.Status)
			return nil, true
		}
		if msg.created {
			m.showInfoToast("Заметка создана")
		} else {
			m.showInfoToast("Заметка обновлена")
		}
		m.editor.Close()
		return m.reloadNotes(), true

	case noteDeletedMsg:
		if !msg.res.OK {
			m.logger.Warn("delete note failed", "id", msg.id, "status", msg.res.Status)
			return nil, true
		}
		m.showInfoToast("Заметка удалена")
		return m.reloadNotes(), true

	case adminUsersMsg:
		if msg.res.OK {
			m.adminUsers = msg.users
		}
		return nil, true
	case adminOrdersMsg:
		if msg.res.OK {
			m.adminOrders = msg.orders
		}
		return nil, true
	case feedbackListMsg:
		if msg.res.OK {
			m.adminFeedback = msg.entries
		}
		return nil, true
	}
	return nil, false
}

// routeComponentMsg forwards non-key messages (cursor blink ticks) to
// whichever input component is live.
func (m *Model) routeComponentMsg(msg tea.Msg) tea.Cmd {
	switch {
	case m.view == viewLogin:
		return m.login.Update(msg, m.auth)
	case m.editor.IsOpen():
		_, _, cmd := m.editor.Update(msg)
		return cmd
	case m.shopSearching:
		var cmd tea.Cmd
		m.shopSearch, cmd = m.shopSearch.Update(msg)
		return cmd
	case m.notesSearching:
		var cmd tea.Cmd
		m.notesSearch, cmd = m.notesSearch.Update(msg)
		return cmd
	}
	return nil
}

func findNote(notes []*types.Note, id int) *types.Note {
	for _, note := range notes {
		if note != nil && note.ID == id {
			return note
		}
	}
	return nil
}
