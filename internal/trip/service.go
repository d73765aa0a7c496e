package trip

import (
	"context"
	"log"

	"travelbuddy/internal/ai"
)

type service struct {
	profiles ProfileStore
	history  HistoryStore
	llm      ai.Client
	enricher *Enricher
	archive  Archive // nil when no archive is configured
}

func NewService(profiles ProfileStore, history HistoryStore, llm ai.Client, enricher *Enricher, archive Archive) Service {
	return &service{
		profiles: profiles,
		history:  history,
		llm:      llm,
		enricher: enricher,
		archive:  archive,
	}
}

// HandleTurn runs one conversation turn: record the user message, extract
// facts (possibly advancing the stage), draft a reply with the model,
// enrich it with provider data, record and return the final reply.
// Turns for the same user must not run concurrently; turns for different
// users may interleave freely.
func (s *service) HandleTurn(ctx context.Context, userID, text string) (string, error) {
	log.Printf("[svc] user=%s text=%q", userID, text)

	s.history.Append(userID, "user", text)

	profile := s.profiles.GetOrCreate(userID)
	if Advance(profile, text) {
		log.Printf("[svc] user=%s stage=%s locations=%v", userID, profile.Stage, profile.Locations)
	}

	msgs := make([]ai.Message, 0, 2+MaxTurns*2)
	msgs = append(msgs, ai.System(PersonaPrompt), ai.System(StageInstruction(profile)))
	msgs = append(msgs, s.history.Get(userID)...)

	draft, err := s.llm.Complete(ctx, msgs)
	if err != nil {
		return "", err
	}

	final := s.enricher.Enrich(ctx, profile, draft)

	s.history.Append(userID, "assistant", final)
	s.archiveTurn(ctx, userID, "user", text)
	s.archiveTurn(ctx, userID, "assistant", final)

	return final, nil
}

// Reset clears the dialogue history and reinitializes the profile
// together. Callers serialize per-user operations, so the two store
// updates are not observable half-done.
func (s *service) Reset(ctx context.Context, userID string) {
	log.Printf("[svc] reset user=%s", userID)
	s.history.Reset(userID)
	s.profiles.Reset(userID)
}

func (s *service) archiveTurn(ctx context.Context, userID, role, content string) {
	if s.archive == nil {
		return
	}
	if err := s.archive.SaveTurn(ctx, userID, role, content); err != nil {
		log.Printf("[svc] archive user=%s: %v", userID, err)
	}
}
