package codegen

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/marcelsud/webhook-capture/capture"
)

// ErrNoWebhookIDs is returned when a generation request selects no
// webhooks. An empty selection would produce an empty prompt, so it is
// rejected up front.
var ErrNoWebhookIDs = errors.New("no webhook ids provided")

// ErrUpstream marks failures coming from the generation backend, as
// opposed to the store. The HTTP layer reports them as a bad gateway.
var ErrUpstream = errors.New("generating handler code")

// UseCase defines the handler-generation operation
type UseCase interface {
	GenerateHandler(ctx context.Context, webhookIDs []string) (string, error)
}

type Service struct {
	Repo capture.Reader
	Gen  Generator
}

// NewService creates a new codegen service with dependency injection
func NewService(repo capture.Reader, gen Generator) *Service {
	return &Service{
		Repo: repo,
		Gen:  gen,
	}
}

// GenerateHandler fetches the selected records, joins their bodies with
// a blank-line separator in the order the store returns them, and asks
// the model for a handler module. The generated text is returned
// verbatim; nothing validates it here.
func (s *Service) GenerateHandler(ctx context.Context, webhookIDs []string) (string, error) {
	if len(webhookIDs) == 0 {
		return "", ErrNoWebhookIDs
	}

	records, err := s.Repo.SelectByIDs(ctx, webhookIDs)
	if err != nil {
		return "", fmt.Errorf("selecting webhooks: %w", err)
	}

	bodies := make([]string, 0, len(records))
	for _, rec := range records {
		// A record without a body still contributes its (empty) slot,
		// matching how the selection joins on the wire.
		if rec.Body != nil {
			bodies = append(bodies, *rec.Body)
		} else {
			bodies = append(bodies, "")
		}
	}

	code, err := s.Gen.Generate(ctx, buildPrompt(strings.Join(bodies, "\n\n")))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrUpstream, err)
	}

	return code, nil
}
