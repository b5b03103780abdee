package service

import (
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/rocketscienceinc/reversi-backend/internal/reversi"
)

var ErrNoLegalMove = errors.New("no legal move")

// Advisor picks a move for "play randomly" requests.
type Advisor interface {
	SuggestMove(state *reversi.State) (reversi.Position, error)
}

type advisor struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewSource - a fixed seed makes random play reproducible, zero seeds from the clock.
func NewSource(seed int64) rand.Source {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return rand.NewSource(seed)
}

func NewAdvisor(source rand.Source) Advisor {
	return &advisor{
		rnd: rand.New(source), //nolint: gosec // move choice, not security sensitive
	}
}

// SuggestMove - chooses a legal move at random, weighted by the number of captured pieces.
// When a corner is available only corners are considered.
func (that *advisor) SuggestMove(state *reversi.State) (reversi.Position, error) {
	weighted, corners := candidatePools(state)

	pool := weighted
	if len(corners) > 0 {
		pool = corners
	}

	if len(pool) == 0 {
		return reversi.Position{}, ErrNoLegalMove
	}

	that.mu.Lock()
	pick := pool[that.rnd.Intn(len(pool))]
	that.mu.Unlock()

	return pick, nil
}

// candidatePools - lists every legal cell once per captured piece, plus the corner subset of that list.
func candidatePools(state *reversi.State) (weighted, corners []reversi.Position) {
	last := state.Size() - 1

	for _, move := range state.LegalMoves() {
		isCorner := (move.Row == 0 || move.Row == last) && (move.Col == 0 || move.Col == last)

		for i := 0; i < move.Captures; i++ {
			weighted = append(weighted, move.Position)
			if isCorner {
				corners = append(corners, move.Position)
			}
		}
	}

	return weighted, corners
}
