package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/tuibee/internal/game"
)

const (
	toastDuration = 2 * time.Second
	maxToasts     = 3
)

type toast struct {
	id   int
	note game.Notification
}

type toastExpiredMsg struct {
	id int
}

// toastQueue holds visible notifications, newest last.
type toastQueue struct {
	items  []toast
	nextID int
}

// push enqueues notes and returns the commands that expire the
// non-sticky ones.
func (q *toastQueue) push(notes []game.Notification) tea.Cmd {
	var cmds []tea.Cmd
	for _, n := range notes {
		q.nextID++
		id := q.nextID
		q.items = append(q.items, toast{id: id, note: n})
		if !n.Sticky() {
			cmds = append(cmds, tea.Tick(toastDuration, func(time.Time) tea.Msg {
				return toastExpiredMsg{id: id}
			}))
		}
	}
	if len(q.items) > maxToasts {
		q.items = q.items[len(q.items)-maxToasts:]
	}
	return tea.Batch(cmds...)
}

func (q *toastQueue) expire(id int) {
	for i, t := range q.items {
		if t.id == id {
			q.items = append(q.items[:i], q.items[i+1:]...)
			return
		}
	}
}

// dismiss drops sticky notifications and reports whether any were
// removed.
func (q *toastQueue) dismiss() bool {
	kept := q.items[:0]
	for _, t := range q.items {
		if !t.note.Sticky() {
			kept = append(kept, t)
		}
	}
	removed := len(kept) != len(q.items)
	q.items = kept
	return removed
}

func (q *toastQueue) render(th theme) []string {
	out := make([]string, 0, len(q.items))
	for _, t := range q.items {
		style := th.toast
		switch t.note.Kind {
		case game.NotifyRejected, game.NotifyPersistFailed:
			style = th.toastError
		case game.NotifyPangram, game.NotifyTopRank:
			style = th.toastGold
		}
		out = append(out, style.Render(t.note.Message))
	}
	return out
}
