package service

import (
	"errors"
	"testing"
	"time"

	"github.com/benbeisheim/chess-engine/internal/model"
	"github.com/benbeisheim/chess-engine/internal/player"
)

func newTestManager(t *testing.T) *GameManager {
	t.Helper()
	gm := NewGameManager(time.Hour)
	t.Cleanup(gm.Close)
	return gm
}

func TestQueueOrder(t *testing.T) {
	q := NewQueue()
	for _, id := range []string{"a", "b", "c"} {
		if err := q.AddPlayer(Player{ID: id}); err != nil {
			t.Fatalf("add %s: %v", id, err)
		}
	}
	if err := q.AddPlayer(Player{ID: "a"}); !errors.Is(err, ErrAlreadyQueued) {
		t.Fatalf("expected ErrAlreadyQueued, got %v", err)
	}
	q.RemovePlayer("b")
	p1, p2, ok := q.NextPair()
	if !ok || p1.ID != "a" || p2.ID != "c" {
		t.Fatalf("unexpected pair %v %v %v", p1, p2, ok)
	}
	if _, _, ok := q.NextPair(); ok || q.Size() != 0 {
		t.Fatalf("queue should be empty")
	}
}

func TestMatchmakingPairsPlayers(t *testing.T) {
	gm := newTestManager(t)
	ch := make(chan MatchFoundEvent, 1)
	gm.RegisterMatchmakingChannel("alice", ch)

	if err := gm.JoinMatchmaking("alice"); err != nil {
		t.Fatalf("join: %v", err)
	}
	if n := gm.matchPlayers(); n != 0 {
		t.Fatalf("one player cannot be matched, got %d games", n)
	}
	if err := gm.JoinMatchmaking("bob"); err != nil {
		t.Fatalf("join: %v", err)
	}
	if n := gm.matchPlayers(); n != 1 {
		t.Fatalf("expected one game, got %d", n)
	}

	event, ok := <-ch
	if !ok || event.Color != model.White {
		t.Fatalf("alice should be white: %+v %v", event, ok)
	}
	if _, open := <-ch; open {
		t.Fatalf("channel should be closed after the match")
	}

	bobMatch, ok := gm.Match("bob")
	if !ok || bobMatch.GameID != event.GameID || bobMatch.Color != model.Black {
		t.Fatalf("unexpected match for bob: %+v", bobMatch)
	}

	session, err := gm.GetGame(event.GameID)
	if err != nil {
		t.Fatalf("get game: %v", err)
	}
	if _, err := session.Play("alice", player.Notation("e4")); err != nil {
		t.Fatalf("matched players should be able to play: %v", err)
	}
}

func TestLateMatchmakingChannelGetsMatch(t *testing.T) {
	gm := newTestManager(t)
	_ = gm.JoinMatchmaking("alice")
	_ = gm.JoinMatchmaking("bob")
	gm.matchPlayers()

	ch := make(chan MatchFoundEvent, 1)
	gm.RegisterMatchmakingChannel("bob", ch)
	select {
	case event := <-ch:
		if event.Color != model.Black {
			t.Fatalf("bob should be black, got %s", event.Color)
		}
	default:
		t.Fatalf("match made before registering should be delivered")
	}
}

func TestMatchmakingTicker(t *testing.T) {
	gm := NewGameManager(10 * time.Millisecond)
	defer gm.Close()

	ch := make(chan MatchFoundEvent, 1)
	gm.RegisterMatchmakingChannel("alice", ch)
	_ = gm.JoinMatchmaking("alice")
	_ = gm.JoinMatchmaking("bob")

	select {
	case <-ch:
	case <-time.After(2 * time.Second):
		t.Fatalf("ticker never matched the players")
	}
}

func TestGameManagerLookups(t *testing.T) {
	gm := newTestManager(t)
	if _, err := gm.GetGame("nope"); !errors.Is(err, ErrGameNotFound) {
		t.Fatalf("expected ErrGameNotFound, got %v", err)
	}
	if _, err := gm.AddPlayerToGame("nope", "alice"); !errors.Is(err, ErrGameNotFound) {
		t.Fatalf("expected ErrGameNotFound, got %v", err)
	}
	s := NewSession("fixed", model.NewStandardGame())
	if err := gm.CreateGame(s); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := gm.CreateGame(s); !errors.Is(err, ErrGameExists) {
		t.Fatalf("expected ErrGameExists, got %v", err)
	}
	if err := gm.RegisterConnection("nope", "alice", &recordingConn{}); !errors.Is(err, ErrGameNotFound) {
		t.Fatalf("expected ErrGameNotFound, got %v", err)
	}
}

func TestGameServiceCreateGame(t *testing.T) {
	gs := NewGameService(newTestManager(t))

	id, color, err := gs.CreateGame("alice", CreateOptions{})
	if err != nil || color != model.White {
		t.Fatalf("create: %v %s", err, color)
	}
	if c, err := gs.JoinGame(id, "bob"); err != nil || c != model.Black {
		t.Fatalf("join: %v %s", err, c)
	}

	if _, _, err := gs.CreateGame("alice", CreateOptions{Opponent: "alien"}); !errors.Is(err, ErrBadRequest) {
		t.Fatalf("expected ErrBadRequest, got %v", err)
	}
	if _, _, err := gs.CreateGame("alice", CreateOptions{FEN: "not a fen"}); !errors.Is(err, model.ErrInvalidFEN) {
		t.Fatalf("expected ErrInvalidFEN, got %v", err)
	}
}

func TestGameServiceBotGame(t *testing.T) {
	gs := NewGameService(newTestManager(t))
	gs.newBot = func() player.MoveSource { return &scripted{"d4", "c4"} }

	id, color, err := gs.CreateGame("alice", CreateOptions{Opponent: OpponentBot, Color: model.Black})
	if err != nil || color != model.Black {
		t.Fatalf("create: %v %s", err, color)
	}
	st, _ := gs.GetGameState(id, "alice")
	if len(st.History) != 1 || st.ToMove != model.Black {
		t.Fatalf("bot should have opened: %+v", st.History)
	}
	if _, err := gs.HandleMove(id, "alice", "d5"); err != nil {
		t.Fatalf("d5: %v", err)
	}
	st, _ = gs.GetGameState(id, "alice")
	if len(st.History) != 3 {
		t.Fatalf("bot should have replied: %v", st.History)
	}
	if err := gs.Resign(id, "alice"); err != nil {
		t.Fatalf("resign: %v", err)
	}
	st, _ = gs.GetGameState(id, "alice")
	if st.Status != model.StatusConceded || st.Winner != model.White {
		t.Fatalf("unexpected result %s %q", st.Status, st.Winner)
	}
}

func TestGameServiceFromFEN(t *testing.T) {
	gs := NewGameService(newTestManager(t))
	id, _, err := gs.CreateGame("alice", CreateOptions{FEN: "7k/8/6Q1/8/8/8/8/K7 w - - 0 1"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	_, _ = gs.JoinGame(id, "bob")
	if _, err := gs.HandleMove(id, "alice", "Qf7"); err != nil {
		t.Fatalf("Qf7: %v", err)
	}
	st, _ := gs.GetGameState(id, "bob")
	if st.Status != model.StatusStalemate {
		t.Fatalf("expected stalemate, got %s", st.Status)
	}
	moves, err := gs.LegalMoves(id)
	if err != nil || len(moves) != 0 {
		t.Fatalf("no moves expected after stalemate: %v %v", moves, err)
	}
}
