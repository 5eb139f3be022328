package a11yv

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNotice_ShowAndClear(t *testing.T) {
	oldAfterFunc := noticeAfterFunc
	t.Cleanup(func() {
		noticeAfterFunc = oldAfterFunc
	})

	var fire func()
	noticeAfterFunc = func(d time.Duration, f func()) *time.Timer {
		fire = f
		return time.NewTimer(time.Hour)
	}

	n := NewNotice(func(f func()) { f() })
	n.Show("Speech playback failed")
	assert.Equal(t, "Speech playback failed", n.GetText(true))

	fire()
	assert.Equal(t, "", n.GetText(true))
}

func TestNotice_NewMessageResetsPrevious(t *testing.T) {
	oldAfterFunc := noticeAfterFunc
	t.Cleanup(func() {
		noticeAfterFunc = oldAfterFunc
	})

	var fired []func()
	noticeAfterFunc = func(d time.Duration, f func()) *time.Timer {
		fired = append(fired, f)
		return time.NewTimer(time.Hour)
	}

	n := NewNotice(func(f func()) { f() })
	n.Show("first")
	n.Show("second")
	assert.Equal(t, "second", n.GetText(true))
	assert.Len(t, fired, 2)
}
