package service

import (
	"sync"
	"time"

	"github.com/benbeisheim/chess-engine/internal/model"
	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
)

type GameManager struct {
	games            map[string]*Session
	queue            *Queue
	matchingChannels map[string]chan MatchFoundEvent
	matched          map[string]MatchFoundEvent
	interval         time.Duration
	done             chan struct{}
	closeOnce        sync.Once
	mu               sync.RWMutex
}

// NewGameManager starts a manager whose matchmaking runs every interval.
// Close stops it.
func NewGameManager(interval time.Duration) *GameManager {
	gm := &GameManager{
		games:            make(map[string]*Session),
		queue:            NewQueue(),
		matchingChannels: make(map[string]chan MatchFoundEvent),
		matched:          make(map[string]MatchFoundEvent),
		interval:         interval,
		done:             make(chan struct{}),
	}

	go gm.processMatchmaking()

	return gm
}

func (gm *GameManager) Close() {
	gm.closeOnce.Do(func() { close(gm.done) })
}

func (gm *GameManager) processMatchmaking() {
	ticker := time.NewTicker(gm.interval)
	defer ticker.Stop()

	for {
		select {
		case <-gm.done:
			return
		case <-ticker.C:
			gm.matchPlayers()
		}
	}
}

// matchPlayers pairs waiting players, longest waiting first, into new games
// and returns how many games it started.
func (gm *GameManager) matchPlayers() int {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	started := 0
	for {
		p1, p2, ok := gm.queue.NextPair()
		if !ok {
			return started
		}

		gameID := uuid.New().String()
		session := NewSession(gameID, model.NewStandardGame())
		c1, err := session.AddPlayer(p1.ID, model.White)
		if err != nil {
			log.Errorf("matchmaking: seat %s: %v", p1.ID, err)
			continue
		}
		c2, err := session.AddPlayer(p2.ID, model.Black)
		if err != nil {
			log.Errorf("matchmaking: seat %s: %v", p2.ID, err)
			continue
		}
		gm.games[gameID] = session
		log.Infof("matched %s and %s into game %s", p1.ID, p2.ID, gameID)

		gm.notifyMatch(p1.ID, MatchFoundEvent{GameID: gameID, Color: c1})
		gm.notifyMatch(p2.ID, MatchFoundEvent{GameID: gameID, Color: c2})
		started++
	}
}

// notifyMatch records the match and hands it to the player's channel, if one
// is registered. The channel is closed afterwards.
func (gm *GameManager) notifyMatch(playerID string, event MatchFoundEvent) {
	gm.matched[playerID] = event

	ch, ok := gm.matchingChannels[playerID]
	if !ok {
		return
	}
	select {
	case ch <- event:
	default:
		log.Warnf("matchmaking: channel of %s is full", playerID)
	}
	delete(gm.matchingChannels, playerID)
	close(ch)
}

// RegisterMatchmakingChannel makes ch receive playerID's next match. A
// match that already happened is delivered at once. ch should be buffered.
func (gm *GameManager) RegisterMatchmakingChannel(playerID string, ch chan MatchFoundEvent) {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	if existing, ok := gm.matchingChannels[playerID]; ok {
		delete(gm.matchingChannels, playerID)
		close(existing)
	}
	gm.matchingChannels[playerID] = ch
	if event, ok := gm.matched[playerID]; ok {
		gm.notifyMatch(playerID, event)
	}
}

// UnregisterMatchmakingChannel forgets playerID's channel without closing
// it; the caller owns it.
func (gm *GameManager) UnregisterMatchmakingChannel(playerID string) {
	gm.mu.Lock()
	defer gm.mu.Unlock()
	delete(gm.matchingChannels, playerID)
}

func (gm *GameManager) JoinMatchmaking(playerID string) error {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	delete(gm.matched, playerID)
	return gm.queue.AddPlayer(Player{ID: playerID})
}

func (gm *GameManager) LeaveMatchmaking(playerID string) {
	gm.queue.RemovePlayer(playerID)
}

// Match returns the last match made for playerID.
func (gm *GameManager) Match(playerID string) (MatchFoundEvent, bool) {
	gm.mu.RLock()
	defer gm.mu.RUnlock()
	event, ok := gm.matched[playerID]
	return event, ok
}

func (gm *GameManager) CreateGame(session *Session) error {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	if _, exists := gm.games[session.ID]; exists {
		return ErrGameExists
	}
	gm.games[session.ID] = session
	return nil
}

func (gm *GameManager) GetGame(gameID string) (*Session, error) {
	gm.mu.RLock()
	defer gm.mu.RUnlock()

	session, exists := gm.games[gameID]
	if !exists {
		return nil, ErrGameNotFound
	}
	return session, nil
}

func (gm *GameManager) AddPlayerToGame(gameID string, playerID string) (model.Color, error) {
	session, err := gm.GetGame(gameID)
	if err != nil {
		return "", err
	}
	return session.AddPlayer(playerID, "")
}

func (gm *GameManager) RegisterConnection(gameID string, playerID string, conn Conn) error {
	session, err := gm.GetGame(gameID)
	if err != nil {
		return err
	}
	session.Register(playerID, conn)
	return nil
}

func (gm *GameManager) UnregisterConnection(gameID string, playerID string) {
	session, err := gm.GetGame(gameID)
	if err != nil {
		return
	}
	session.Unregister(playerID)
}
