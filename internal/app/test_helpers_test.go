package app

import (
	"context"
	"errors"

	"github.com/example/secondbrain/internal/ports/secondary"
)

// Ensure mocks implement their interfaces
var (
	_ secondary.InboxRepository = (*mockInboxRepository)(nil)
	_ secondary.OutcomeStore    = (*mockOutcomeStore)(nil)
	_ secondary.Classifier      = (*mockClassifier)(nil)
)

// mockInboxRepository implements secondary.InboxRepository for testing.
type mockInboxRepository struct {
	items   []*secondary.InboxRecord
	listErr error
	nextID  int64
}

func newMockInboxRepository() *mockInboxRepository {
	return &mockInboxRepository{nextID: 1}
}

func (m *mockInboxRepository) addUnprocessed(rawText string) *secondary.InboxRecord {
	item := &secondary.InboxRecord{
		ID:      m.nextID,
		RawText: rawText,
		Status:  secondary.StatusUnprocessed,
	}
	m.nextID++
	m.items = append(m.items, item)
	return item
}

func (m *mockInboxRepository) Add(ctx context.Context, rawText string) (int64, error) {
	return m.addUnprocessed(rawText).ID, nil
}

func (m *mockInboxRepository) GetByID(ctx context.Context, id int64) (*secondary.InboxRecord, error) {
	for _, item := range m.items {
		if item.ID == id {
			return item, nil
		}
	}
	return nil, errors.New("inbox item not found")
}

func (m *mockInboxRepository) ListUnprocessed(ctx context.Context, limit int) ([]*secondary.InboxRecord, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	var result []*secondary.InboxRecord
	for _, item := range m.items {
		if item.Status != secondary.StatusUnprocessed {
			continue
		}
		result = append(result, item)
		if limit > 0 && len(result) == limit {
			break
		}
	}
	return result, nil
}

func (m *mockInboxRepository) List(ctx context.Context, filters secondary.InboxFilters) ([]*secondary.InboxRecord, error) {
	var result []*secondary.InboxRecord
	for _, item := range m.items {
		if filters.Status != "" && item.Status != filters.Status {
			continue
		}
		result = append(result, item)
	}
	return result, nil
}

// mockOutcomeStore implements secondary.OutcomeStore for testing. It
// records committed outcomes and mirrors the status transition onto the
// referenced mock inbox items.
type mockOutcomeStore struct {
	committed []*secondary.Outcome
	commitErr error
	inbox     *mockInboxRepository
}

func newMockOutcomeStore(inbox *mockInboxRepository) *mockOutcomeStore {
	return &mockOutcomeStore{inbox: inbox}
}

func (m *mockOutcomeStore) Commit(ctx context.Context, outcome *secondary.Outcome) error {
	if m.commitErr != nil {
		return m.commitErr
	}
	m.committed = append(m.committed, outcome)
	for _, item := range m.inbox.items {
		if item.ID == outcome.InboxID {
			item.Status = outcome.Status
			item.Category = outcome.Category
			item.Confidence = outcome.Confidence
			item.Model = outcome.Model
			item.Error = outcome.Error
		}
	}
	return nil
}

// lastOutcome returns the most recently committed outcome.
func (m *mockOutcomeStore) lastOutcome() *secondary.Outcome {
	if len(m.committed) == 0 {
		return nil
	}
	return m.committed[len(m.committed)-1]
}

// mockClassifier implements secondary.Classifier for testing. Each call
// consumes the next scripted response; calls past the end of the script
// repeat the last entry.
type mockClassifier struct {
	responses []classifierResponse
	calls     int
	model     string
}

type classifierResponse struct {
	output string
	err    error
}

func newMockClassifier(model string) *mockClassifier {
	return &mockClassifier{model: model}
}

func (m *mockClassifier) respond(output string) *mockClassifier {
	m.responses = append(m.responses, classifierResponse{output: output})
	return m
}

func (m *mockClassifier) fail(msg string) *mockClassifier {
	m.responses = append(m.responses, classifierResponse{err: errors.New(msg)})
	return m
}

func (m *mockClassifier) Classify(ctx context.Context, rawText string) (string, error) {
	idx := m.calls
	m.calls++
	if idx >= len(m.responses) {
		idx = len(m.responses) - 1
	}
	if idx < 0 {
		return "", errors.New("mock classifier has no scripted responses")
	}
	r := m.responses[idx]
	return r.output, r.err
}

func (m *mockClassifier) Model() string {
	return m.model
}
