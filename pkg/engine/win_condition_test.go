// pkg/engine/win_condition_test.go
package engine

import (
	"testing"

	"github.com/opd-ai/go-spacewar/pkg/entity"
	"github.com/opd-ai/go-spacewar/pkg/event"
)

func TestLastShipStanding_CheckWinner(t *testing.T) {
	tests := []struct {
		name        string
		destroy     []int
		wantDecided bool
		wantWinner  int // index into Ships, -1 for none
	}{
		{"both alive", nil, false, -1},
		{"first destroyed", []int{0}, true, 1},
		{"second destroyed", []int{1}, true, 0},
		{"both destroyed", []int{0, 1}, true, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			game := startedGame(t, testConfig())
			for _, i := range tt.destroy {
				game.Ships[i].Destroy()
			}

			winner, decided := LastShipStanding{}.CheckWinner(game)
			if decided != tt.wantDecided {
				t.Fatalf("CheckWinner() decided = %v, want %v", decided, tt.wantDecided)
			}
			var want *entity.Ship
			if tt.wantWinner >= 0 {
				want = game.Ships[tt.wantWinner]
			}
			if winner != want {
				t.Errorf("CheckWinner() winner = %v, want %v", winner, want)
			}
		})
	}
}

func TestWinCondition_PublishesGameEnded(t *testing.T) {
	game := startedGame(t, testConfig())
	var ended *event.GameEndedEvent
	game.EventBus.Subscribe(event.GameEnded, func(e event.Event) {
		ended, _ = e.(*event.GameEndedEvent)
	})

	game.Ships[1].Destroy()
	game.Update(frame)

	if ended == nil {
		t.Fatal("no GameEnded event published")
	}
	if ended.Draw || ended.WinnerName != "Enterprise" {
		t.Errorf("GameEnded = draw %v winner %q, want Enterprise", ended.Draw, ended.WinnerName)
	}
	if game.Status != GameStatusEnded || game.Banner() != "Enterprise wins" {
		t.Errorf("Status/Banner = %v/%q, want ended/Enterprise wins", game.Status, game.Banner())
	}
}

func TestGame_DrawWhenBothDie(t *testing.T) {
	game := startedGame(t, testConfig())
	game.Ships[0].Destroy()
	game.Ships[1].Destroy()

	game.Update(frame)
	if game.Winner != nil || game.Banner() != "Draw" {
		t.Errorf("Winner/Banner = %v/%q, want nil/Draw", game.Winner, game.Banner())
	}
}

type afterTicks uint64

func (n afterTicks) CheckWinner(g *Game) (*entity.Ship, bool) {
	if g.CurrentTick < uint64(n) {
		return nil, false
	}
	return g.Ships[1], true
}

func TestGame_CustomWinCondition(t *testing.T) {
	game := startedGame(t, testConfig())
	game.CustomWinCondition = afterTicks(3)

	for i := 0; i < 2; i++ {
		game.Update(frame)
	}
	if game.Status != GameStatusActive {
		t.Fatalf("round ended after %d ticks", game.CurrentTick)
	}
	game.Update(frame)
	if game.Status != GameStatusEnded || game.Winner != game.Ships[1] {
		t.Errorf("status/winner = %v/%v, want ended/Warbird", game.Status, game.Winner)
	}
}
