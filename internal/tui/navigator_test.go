package tui

import (
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	mu   sync.Mutex
	msgs []tea.Msg
}

func (r *recorder) send(msg tea.Msg) {
	r.mu.Lock()
	r.msgs = append(r.msgs, msg)
	r.mu.Unlock()
}

func (r *recorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.msgs)
}

func TestNavigator_SendsWhenBound(t *testing.T) {
	rec := &recorder{}
	n := NewNavigator()
	n.setCurrent(PageHome)
	n.Bind(rec.send)

	n.RedirectToLogin()

	require.Equal(t, 1, rec.count())
	assert.Equal(t, NavigateTo{Page: PageLogin, Redirect: true}, rec.msgs[0])
}

func TestNavigator_PendingRedirectDeliveredOnBind(t *testing.T) {
	rec := &recorder{}
	n := NewNavigator()

	n.RedirectToLogin()
	assert.Zero(t, rec.count())

	n.Bind(rec.send)
	require.Eventually(t, func() bool { return rec.count() == 1 }, time.Second, 5*time.Millisecond)

	// delivered once
	n.Bind(rec.send)
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, 1, rec.count())
}

func TestNavigator_NoopOnLoginPage(t *testing.T) {
	rec := &recorder{}
	n := NewNavigator()
	n.setCurrent(PageLogin)

	n.RedirectToLogin()
	n.Bind(rec.send)
	n.RedirectToLogin()

	time.Sleep(20 * time.Millisecond)
	assert.Zero(t, rec.count())
}

func TestNavigator_UnbindQueuesAgain(t *testing.T) {
	rec := &recorder{}
	n := NewNavigator()
	n.setCurrent(PageProfile)
	n.Bind(rec.send)
	n.Bind(nil)

	n.RedirectToLogin()
	assert.Zero(t, rec.count())

	n.Bind(rec.send)
	require.Eventually(t, func() bool { return rec.count() == 1 }, time.Second, 5*time.Millisecond)
}
