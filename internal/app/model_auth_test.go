package app

import (
	"testing"

	"lavka/internal/types"
)

func TestMeFailureShowsLoginForm(t *testing.T) {
	m := newTestModel(&fakeAPI{})
	m.user = nil

	if _, handled := m.handleAsync(meMsg{res: errRes(401, "Не авторизован")}); !handled {
		t.Fatalf("expected meMsg to be handled")
	}
	if m.view != viewLogin {
		t.Fatalf("expected the login view without a session, got %d", m.view)
	}
}

func TestMeSuccessRunsInitialLoads(t *testing.T) {
	m := newTestModel(&fakeAPI{})
	m.user = nil
	m.view = viewLogin
	m.started = false

	cmd, _ := m.handleAsync(meMsg{user: &types.User{ID: 1, Email: "user@example.com"}, res: okRes()})
	if m.view != viewShop {
		t.Fatalf("expected the shop view after auth, got %d", m.view)
	}
	if !m.started {
		t.Fatalf("expected the model to be activated")
	}
	if cmd == nil {
		t.Fatalf("expected initial load commands")
	}
}

func TestLoginFailureKeepsFormWithServerMessage(t *testing.T) {
	m := newTestModel(&fakeAPI{})
	m.user = nil
	m.view = viewLogin

	cmd, _ := m.handleAsync(loginMsg{res: errRes(401, "Неверный email или пароль")})
	if cmd != nil {
		t.Fatalf("did not expect commands on login failure")
	}
	if m.view != viewLogin {
		t.Fatalf("expected to stay on the login view, got %d", m.view)
	}
	if m.login.errText != "Неверный email или пароль" {
		t.Fatalf("expected the server message on the form, got %q", m.login.errText)
	}
}

func TestLogoutReturnsToLoginWithToast(t *testing.T) {
	m := newTestModel(&fakeAPI{})

	if _, handled := m.handleAsync(logoutMsg{res: okRes()}); !handled {
		t.Fatalf("expected logoutMsg to be handled")
	}
	if m.view != viewLogin {
		t.Fatalf("expected the login view after logout, got %d", m.view)
	}
	if m.user != nil {
		t.Fatalf("expected the user to be dropped")
	}
	if m.toastText != "Вы вышли из системы" {
		t.Fatalf("expected the logout toast, got %q", m.toastText)
	}
}

func TestAdminViewGatedByRole(t *testing.T) {
	m := newTestModel(&fakeAPI{})

	if cmd := m.switchView(viewAdmin); cmd != nil || m.view == viewAdmin {
		t.Fatalf("expected the admin view to be refused for a regular user")
	}

	m.user.Role = types.RoleAdmin
	cmd := m.switchView(viewAdmin)
	if m.view != viewAdmin {
		t.Fatalf("expected the admin view for an admin")
	}
	if cmd == nil {
		t.Fatalf("expected admin data to be fetched on entry")
	}
}
