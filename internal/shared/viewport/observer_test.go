package viewport

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestClassify はブレークポイント境界（768）での分類を検証します。
func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		width    int
		expected Class
	}{
		{320, Mobile},
		{767, Mobile},
		{768, Desktop},
		{769, Desktop},
		{1440, Desktop},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, Classify(tt.width), "width %d", tt.width)
	}
}

// TestObserver_InitialState は計測前はDesktopかつ未計測であることを検証します。
func TestObserver_InitialState(t *testing.T) {
	t.Parallel()

	o := NewObserver()

	assert.Equal(t, Desktop, o.Class())
	assert.False(t, o.Measured())
	assert.Equal(t, Snapshot{}, o.Snapshot())
}

// TestObserver_Transitions は両方向の遷移と購読者への通知を検証します。
func TestObserver_Transitions(t *testing.T) {
	t.Parallel()

	o := NewObserver()
	var events [][2]Class
	unsubscribe := o.Subscribe(func(from, to Class) {
		events = append(events, [2]Class{from, to})
	})

	assert.Equal(t, Desktop, o.Observe(1024)) // no transition, but now measured
	assert.True(t, o.Measured())
	assert.Equal(t, Mobile, o.Observe(500))
	assert.Equal(t, Mobile, o.Observe(600)) // same class, no event
	assert.Equal(t, Desktop, o.Observe(900))

	assert.Equal(t, [][2]Class{{Desktop, Mobile}, {Mobile, Desktop}}, events)

	unsubscribe()
	o.Observe(400)
	assert.Len(t, events, 2, "unsubscribed callback must not be called")
}

// TestObserver_IgnoresInvalidWidth は0以下の幅が計測として扱われないことを検証します。
func TestObserver_IgnoresInvalidWidth(t *testing.T) {
	t.Parallel()

	o := NewObserver()
	assert.Equal(t, Desktop, o.Observe(0))
	assert.Equal(t, Desktop, o.Observe(-5))
	assert.False(t, o.Measured())
}

// TestRestore はスナップショットからの復元を検証します。
func TestRestore(t *testing.T) {
	t.Parallel()

	o := Restore(Snapshot{Width: 390, Measured: true})
	assert.Equal(t, Mobile, o.Class())
	assert.True(t, o.Measured())

	o = Restore(Snapshot{Width: 390, Measured: false})
	assert.Equal(t, Desktop, o.Class())
	assert.False(t, o.Measured())
}

// TestClass_String はクラス名の文字列表現を検証します。
func TestClass_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "mobile", Mobile.String())
	assert.Equal(t, "desktop", Desktop.String())
}
