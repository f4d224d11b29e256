// README: Planner service; orchestrates model calls, sessions, and extraction.
package planner

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"roam/internal/llm"
)

// ClientSource supplies chat clients per provider. *llm.Factory satisfies it;
// tests substitute stubs.
type ClientSource interface {
	GetClient(providerID string) (llm.Client, error)
}

// ItineraryArchiver receives saved itineraries. Save failures are the
// archiver's to report; the planner only logs them.
type ItineraryArchiver interface {
	Save(ctx context.Context, sessionID, filename, content string) error
}

// Defaults are the provider/model/generation settings applied when a request
// leaves them blank.
type Defaults struct {
	Provider    string
	Model       string
	Temperature float64
	MaxTokens   int
}

// Service implements the planning conversation flow. All state lives in the
// injected Store; the Service itself only holds defaults and per-session
// mutation locks.
type Service struct {
	store    Store
	clients  ClientSource
	registry *llm.Registry
	archiver ItineraryArchiver

	mu       sync.Mutex
	defaults Defaults

	// locks serializes mutations per session id so concurrent refinements
	// never interleave history.
	locks sync.Map
}

func NewService(store Store, clients ClientSource, registry *llm.Registry, defaults Defaults) *Service {
	return &Service{
		store:    store,
		clients:  clients,
		registry: registry,
		defaults: defaults,
	}
}

// SetArchiver wires the save-to-storage collaborator. Saving is disabled
// while unset.
func (s *Service) SetArchiver(a ItineraryArchiver) {
	s.archiver = a
}

type GenerateInput struct {
	Description string
	Provider    string
	Model       string
}

type RefineInput struct {
	SessionID string
	Feedback  string
}

// Result is the response shape shared by generate, refine, and session reads.
type Result struct {
	SessionID string             `json:"session_id"`
	Itinerary string             `json:"itinerary"`
	FollowUps []FollowUpQuestion `json:"follow_up_questions"`
	Provider  string             `json:"provider"`
	Model     string             `json:"model"`
}

// Generate creates a fresh session from a holiday description. No session is
// created unless the model call succeeds.
func (s *Service) Generate(ctx context.Context, in GenerateInput) (*Result, error) {
	desc := strings.TrimSpace(in.Description)
	if n := utf8.RuneCountInString(desc); n < MinDescriptionLen || n > MaxDescriptionLen {
		return nil, fmt.Errorf("%w: description must be %d-%d characters", ErrInvalidInput, MinDescriptionLen, MaxDescriptionLen)
	}

	provider, model := s.resolveTarget(in.Provider, in.Model)
	pd, err := s.registry.Get(provider)
	if err != nil {
		return nil, err
	}
	if model == "" {
		model = pd.DefaultModel
	}

	client, err := s.clients.GetClient(provider)
	if err != nil {
		return nil, err
	}

	msgs := BuildMessages(SystemPrompt, nil, desc)
	text, err := client.Complete(ctx, model, msgs, s.params())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProviderCall, err)
	}

	sess := &Session{
		ID:        uuid.NewString(),
		Provider:  provider,
		Model:     model,
		CreatedAt: time.Now(),
	}
	if err := s.store.Create(ctx, sess); err != nil {
		return nil, err
	}
	if err := s.store.AppendTurn(ctx, sess.ID, RoleUser, desc); err != nil {
		return nil, err
	}
	if err := s.store.AppendTurn(ctx, sess.ID, RoleAssistant, text); err != nil {
		return nil, err
	}

	return &Result{
		SessionID: sess.ID,
		Itinerary: text,
		FollowUps: ExtractFollowUps(text),
		Provider:  provider,
		Model:     model,
	}, nil
}

// Refine continues an existing session with user feedback. The per-session
// lock guarantees at most one in-flight mutation per session id.
func (s *Service) Refine(ctx context.Context, in RefineInput) (*Result, error) {
	feedback := strings.TrimSpace(in.Feedback)
	if n := utf8.RuneCountInString(feedback); n < MinFeedbackLen || n > MaxFeedbackLen {
		return nil, fmt.Errorf("%w: feedback must be %d-%d characters", ErrInvalidInput, MinFeedbackLen, MaxFeedbackLen)
	}

	mu := s.sessionLock(in.SessionID)
	mu.Lock()
	defer mu.Unlock()

	sess, err := s.store.Get(ctx, in.SessionID)
	if err != nil {
		return nil, err
	}

	client, err := s.clients.GetClient(sess.Provider)
	if err != nil {
		return nil, err
	}

	prompt := RefinementPrompt(feedback)
	msgs := BuildMessages(SystemPrompt, sess.History, prompt)
	text, err := client.Complete(ctx, sess.Model, msgs, s.params())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProviderCall, err)
	}

	if err := s.store.AppendTurn(ctx, sess.ID, RoleUser, prompt); err != nil {
		return nil, err
	}
	if err := s.store.AppendTurn(ctx, sess.ID, RoleAssistant, text); err != nil {
		return nil, err
	}

	return &Result{
		SessionID: sess.ID,
		Itinerary: text,
		FollowUps: ExtractFollowUps(text),
		Provider:  sess.Provider,
		Model:     sess.Model,
	}, nil
}

// GetSession returns the current itinerary with freshly re-extracted
// follow-up questions; questions are derived data, never stored.
func (s *Service) GetSession(ctx context.Context, id string) (*Result, error) {
	sess, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &Result{
		SessionID: sess.ID,
		Itinerary: sess.CurrentItinerary,
		FollowUps: ExtractFollowUps(sess.CurrentItinerary),
		Provider:  sess.Provider,
		Model:     sess.Model,
	}, nil
}

func (s *Service) DeleteSession(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}
	s.locks.Delete(id)
	return nil
}

// Providers lists enabled providers in registry declaration order.
func (s *Service) Providers() []llm.ProviderDescriptor {
	return s.registry.Enabled()
}

// Save hands the session's itinerary to the archiver and returns the chosen
// filename immediately; the write itself is fire-and-forget and only logged
// on failure.
func (s *Service) Save(ctx context.Context, sessionID, filename string) (string, error) {
	if s.archiver == nil {
		return "", fmt.Errorf("%w: saving is disabled", ErrInvalidInput)
	}

	sess, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return "", err
	}
	if sess.CurrentItinerary == "" {
		return "", fmt.Errorf("%w: session has no itinerary yet", ErrInvalidInput)
	}

	name := SafeFilename(filename, sessionID)
	content := sess.CurrentItinerary

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := s.archiver.Save(ctx, sessionID, name, content); err != nil {
			log.Error("itinerary save failed", "session_id", sessionID, "filename", name, "err", err)
		}
	}()

	return name, nil
}

// SetDefaults updates the default provider/model pair used when requests
// leave them blank. The provider must be enabled.
func (s *Service) SetDefaults(provider, model string) error {
	desc, err := s.registry.Get(provider)
	if err != nil {
		return err
	}
	if model == "" {
		model = desc.DefaultModel
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.defaults.Provider = provider
	s.defaults.Model = model
	return nil
}

func (s *Service) resolveTarget(provider, model string) (string, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if provider == "" {
		provider = s.defaults.Provider
		if model == "" {
			model = s.defaults.Model
		}
	}
	return provider, model
}

func (s *Service) params() llm.Params {
	s.mu.Lock()
	defer s.mu.Unlock()
	return llm.Params{
		Temperature: s.defaults.Temperature,
		MaxTokens:   s.defaults.MaxTokens,
	}.Clamp()
}

func (s *Service) sessionLock(id string) *sync.Mutex {
	v, _ := s.locks.LoadOrStore(id, &sync.Mutex{})
	return v.(*sync.Mutex)
}

// SafeFilename builds "itinerary_<name>.txt" from a caller-supplied name,
// falling back to the session id prefix. Path separators and spaces are
// flattened so the result is always a bare filename.
func SafeFilename(custom, sessionID string) string {
	name := strings.TrimSpace(custom)
	if name == "" {
		if len(sessionID) > 8 {
			sessionID = sessionID[:8]
		}
		name = sessionID
	}
	if utf8.RuneCountInString(name) > 100 {
		name = string([]rune(name)[:100])
	}
	r := strings.NewReplacer(" ", "_", "/", "_", "\\", "_")
	return "itinerary_" + r.Replace(name) + ".txt"
}
