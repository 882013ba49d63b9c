package entry

import (
	"context"
	"errors"
	"log/slog"

	"tradehall/internal/tradedb"
)

// Session runs the interactive entry loop against an open store.
type Session struct {
	store  *tradedb.Store
	prompt *Prompter
	logger *slog.Logger
}

// NewSession wires a session. A nil logger falls back to slog.Default.
func NewSession(store *tradedb.Store, prompt *Prompter, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	return &Session{store: store, prompt: prompt, logger: logger}
}

// Run drives entry attempts until the user exits. Between attempts the
// session remembers context according to the last outcome: success and
// cancellation keep the villager and location, a full villager keeps only
// the location, and a storage error forgets both. The continuation prompts
// walk that remembered context from most to least specific.
func (s *Session) Run(ctx context.Context) error {
	var lastLocation, lastVillager string

	for {
		location, villager, outcome, err := s.attempt(ctx, lastLocation, lastVillager)
		if err != nil {
			if errors.Is(err, ErrInputClosed) {
				return nil
			}
			return err
		}

		switch outcome {
		case OutcomeSuccess, OutcomeCancelled:
			lastLocation, lastVillager = location, villager
		case OutcomeFull:
			lastLocation, lastVillager = location, ""
		case OutcomeError:
			lastLocation, lastVillager = "", ""
		}
		s.logger.Debug("entry attempt finished", "outcome", outcome.String())

		if lastVillager != "" {
			choice, err := s.prompt.Ask("\nAdd another trade for villager " + lastVillager + " at " + lastLocation + "? (y/n/exit):")
			if err != nil {
				return s.endOnInput(err)
			}
			switch choice {
			case ChoiceYes:
				continue
			case ChoiceExit:
				s.prompt.Printf("\nExiting...")
				return nil
			case ChoiceNo:
				lastVillager = ""
			}
		}

		if lastLocation != "" {
			choice, err := s.prompt.Ask("\nAdd a trade for a different villager at " + lastLocation + "? (y/n/exit):")
			if err != nil {
				return s.endOnInput(err)
			}
			switch choice {
			case ChoiceYes:
				continue
			case ChoiceExit:
				s.prompt.Printf("\nExiting...")
				return nil
			case ChoiceNo:
				lastLocation = ""
			}
		}

		again, err := s.prompt.Confirm("\nAdd another trade at a different location? (y/n):")
		if err != nil {
			return s.endOnInput(err)
		}
		if !again {
			s.prompt.Printf("\nExiting...")
			return nil
		}
	}
}

func (s *Session) endOnInput(err error) error {
	if errors.Is(err, ErrInputClosed) {
		return nil
	}
	return err
}
