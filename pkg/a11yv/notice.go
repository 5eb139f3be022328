package a11yv

import (
	"time"

	"github.com/rivo/tview"
)

const defaultNoticeDuration = 4 * time.Second

var noticeAfterFunc = time.AfterFunc

// Notice shows a transient, self-clearing notification line.
type Notice struct {
	*tview.TextView
	duration        time.Duration
	queueUpdateDraw func(func())
	timer           *time.Timer
}

func NewNotice(queueUpdateDraw func(func())) *Notice {
	n := &Notice{
		TextView: tview.NewTextView().
			SetTextColor(Style.NoticeColor),
		duration:        defaultNoticeDuration,
		queueUpdateDraw: queueUpdateDraw,
	}
	return n
}

// Show displays text and clears it after the notice duration.
// A new message resets the clock of the previous one.
func (n *Notice) Show(text string) {
	if n.timer != nil {
		n.timer.Stop()
	}
	n.SetText(text)
	n.timer = noticeAfterFunc(n.duration, func() {
		n.queueUpdateDraw(func() {
			n.SetText("")
		})
	})
}
