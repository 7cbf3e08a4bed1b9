package game

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-wordle/internal/core"
)

// Selector picks secret words.
type Selector interface {
	Pick(rng *rand.Rand) (string, error)
}

// WordSource is a word list that can both validate guesses and pick secrets.
type WordSource interface {
	Dictionary
	Selector
}

// Session plays rounds back to back over one input stream.
type Session struct {
	words  WordSource
	reader *Reader
	sink   Sink
	policy Policy
	list   string
	rng    *rand.Rand
	logger *log.Logger

	results []Result
}

// NewSession wires a session. A zero cfg.Seed seeds from the current time.
// A nil logger discards log output.
func NewSession(in io.ByteReader, words WordSource, sink Sink, cfg core.RuntimeConfig, logger *log.Logger) (*Session, error) {
	policy, err := ParsePolicy(cfg.Policy)
	if err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &Session{
		words:  words,
		reader: NewReader(in, words, sink),
		sink:   sink,
		policy: policy,
		list:   cfg.WordList,
		rng:    rand.New(rand.NewSource(seed)),
		logger: logger,
	}, nil
}

// Results returns the summaries of all rounds won so far.
func (s *Session) Results() []Result {
	return s.results
}

// PlayRound picks a secret and reads guesses until it is found.
func (s *Session) PlayRound(ctx context.Context) (Result, error) {
	secret, err := s.words.Pick(s.rng)
	if err != nil {
		return Result{}, fmt.Errorf("game: pick secret: %w", err)
	}
	round, err := NewRound(secret, s.policy)
	if err != nil {
		return Result{}, err
	}
	s.reader.Reset()

	s.logger.Info("round started", "round", round.ID, "list", s.list, "policy", s.policy)
	s.logger.Debug("secret selected", "round", round.ID, "secret", secret)

	for {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}

		guess, err := s.reader.ReadGuess(round.Turn())
		if err != nil {
			s.logger.Info("round abandoned", "round", round.ID, "tries", round.Tries, "error", err)
			return Result{}, err
		}

		scores := round.Guess(guess)
		s.sink.Result(guess, scores)
		kb := round.Keyboard
		s.logger.Debug("guess", "round", round.ID, "guess", guess, "scores", scores.String(),
			"tried", kb.Tried.Len(), "near", kb.NearMiss.Len(), "exact", kb.ExactHit.Len())

		if round.Settle() == PhaseWon {
			s.sink.Win(round.Tries)
			res := round.Result()
			s.results = append(s.results, res)
			s.logger.Info("round won", "round", round.ID, "tries", res.Tries)
			return res, nil
		}
	}
}

// Run plays rounds until the input ends or ctx is cancelled.
// End of input is a clean shutdown and returns nil.
func (s *Session) Run(ctx context.Context) error {
	for {
		if _, err := s.PlayRound(ctx); err != nil {
			if errors.Is(err, ErrEndOfInput) {
				return nil
			}
			return err
		}
	}
}
