// pkg/render/engo/hud_test.go
package engo

import (
	"testing"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/opd-ai/go-spacewar/pkg/engine"
)

func TestScoreText(t *testing.T) {
	p := message.NewPrinter(language.English)
	tests := []struct {
		name string
		line engine.ScoreLine
		want string
	}{
		{
			name: "alive",
			line: engine.ScoreLine{Name: "Enterprise", Hull: 80, MaxHull: 100, Torpedoes: 2, MaxTorpedoes: 5, Kills: 1, Deaths: 0, Alive: true},
			want: "Enterprise  hull 80/100  torpedoes 2/5  kills 1  deaths 0",
		},
		{
			name: "destroyed",
			line: engine.ScoreLine{Name: "Warbird", Kills: 3, Deaths: 4},
			want: "Warbird  destroyed  kills 3  deaths 4",
		},
		{
			name: "grouped digits",
			line: engine.ScoreLine{Name: "Warbird", Kills: 12345, Deaths: 1},
			want: "Warbird  destroyed  kills 12,345  deaths 1",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ScoreText(p, tt.line); got != tt.want {
				t.Errorf("ScoreText() = %q, want %q", got, tt.want)
			}
		})
	}
}
