package styles

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRelativeTime(t *testing.T) {
	tests := []struct {
		age  time.Duration
		want string
	}{
		{10 * time.Second, "just now"},
		{90 * time.Second, "1m ago"},
		{3 * time.Hour, "3h ago"},
		{50 * time.Hour, "2d ago"},
		{15 * 24 * time.Hour, "2w ago"},
		{65 * 24 * time.Hour, "2mo ago"},
		{800 * 24 * time.Hour, "2y ago"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, RelativeTime(time.Now().Add(-tt.age)))
		})
	}
}

func TestCountBadge(t *testing.T) {
	theme := NewTheme()
	assert.Contains(t, theme.CountBadge(1, "open"), "1 open")
	assert.Contains(t, theme.CountBadge(4, "open"), "4 opens")
}
