package checklist

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

/* ==================== MOCKS ==================== */

type mockContactPoster struct {
	payloads []any
	err      error
}

func (m *mockContactPoster) Post(ctx context.Context, payload any) ([]byte, error) {
	m.payloads = append(m.payloads, payload)
	return nil, m.err
}

type memoryUnlockStore struct {
	unlocks map[string]*Unlock
	saveErr error
	getErr  error
}

func newMemoryUnlockStore() *memoryUnlockStore {
	return &memoryUnlockStore{unlocks: make(map[string]*Unlock)}
}

func (m *memoryUnlockStore) Save(ctx context.Context, u *Unlock) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.unlocks[u.VisitorID] = u
	return nil
}

func (m *memoryUnlockStore) GetByVisitor(ctx context.Context, visitorID string) (*Unlock, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.unlocks[visitorID], nil
}

func (m *memoryUnlockStore) Count(ctx context.Context) (int64, error) {
	return int64(len(m.unlocks)), nil
}

func validUnlockRequest() *UnlockRequest {
	return &UnlockRequest{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Phone:     "(415) 555-1234",
		Source:    "https://brrrr.com/checklist",
	}
}

const testDownloadURL = "https://brrrr.com/assets/document-checklist.pdf"

/* ==================== TESTS ==================== */

func TestUnlockHappyPath(t *testing.T) {
	poster := &mockContactPoster{}
	store := newMemoryUnlockStore()
	svc := NewService(store, poster, nil, testDownloadURL)

	res, err := svc.Unlock(context.Background(), validUnlockRequest(), "", "test-agent", "")
	require.NoError(t, err)

	assert.NotEmpty(t, res.VisitorID)
	assert.Equal(t, testDownloadURL, res.DownloadURL)
	assert.Contains(t, store.unlocks, res.VisitorID)
	require.Len(t, poster.payloads, 1)

	raw, err := json.Marshal(poster.payloads[0])
	require.NoError(t, err)
	var capture map[string]any
	require.NoError(t, json.Unmarshal(raw, &capture))
	assert.Equal(t, DefaultVariant, capture["variant"])
	assert.Equal(t, "Ada", capture["firstName"])
	assert.Equal(t, "test-agent", capture["userAgent"])
	assert.NotZero(t, capture["ts"])
}

func TestUnlockKeepsExistingVisitorID(t *testing.T) {
	svc := NewService(newMemoryUnlockStore(), &mockContactPoster{}, nil, testDownloadURL)

	res, err := svc.Unlock(context.Background(), validUnlockRequest(), "visitor-42", "", "")
	require.NoError(t, err)
	assert.Equal(t, "visitor-42", res.VisitorID)
}

func TestUnlockCustomVariant(t *testing.T) {
	poster := &mockContactPoster{}
	svc := NewService(newMemoryUnlockStore(), poster, nil, testDownloadURL)

	req := validUnlockRequest()
	req.Variant = "sow"
	_, err := svc.Unlock(context.Background(), req, "", "", "")
	require.NoError(t, err)

	raw, _ := json.Marshal(poster.payloads[0])
	var capture map[string]any
	require.NoError(t, json.Unmarshal(raw, &capture))
	assert.Equal(t, "sow", capture["variant"])
}

func TestUnlockWebhookFailureStillUnlocks(t *testing.T) {
	poster := &mockContactPoster{err: errors.New("connection refused")}
	store := newMemoryUnlockStore()
	svc := NewService(store, poster, nil, testDownloadURL)

	res, err := svc.Unlock(context.Background(), validUnlockRequest(), "", "", "")
	require.NoError(t, err)
	assert.Contains(t, store.unlocks, res.VisitorID)

	url, err := svc.DownloadURL(context.Background(), res.VisitorID, "")
	require.NoError(t, err)
	assert.Equal(t, testDownloadURL, url)
}

func TestUnlockStoreFailureStillReturnsDownload(t *testing.T) {
	store := newMemoryUnlockStore()
	store.saveErr = errors.New("disk full")
	svc := NewService(store, &mockContactPoster{}, nil, testDownloadURL)

	res, err := svc.Unlock(context.Background(), validUnlockRequest(), "", "", "")
	require.NoError(t, err)
	assert.Equal(t, testDownloadURL, res.DownloadURL)
}

func TestUnlockRejectsIncompleteContact(t *testing.T) {
	poster := &mockContactPoster{}
	svc := NewService(newMemoryUnlockStore(), poster, nil, testDownloadURL)

	req := validUnlockRequest()
	req.Phone = "555-1234"
	_, err := svc.Unlock(context.Background(), req, "", "", "")
	assert.ErrorIs(t, err, ErrInvalidContact)

	req = validUnlockRequest()
	req.Email = ""
	_, err = svc.Unlock(context.Background(), req, "", "", "")
	assert.ErrorIs(t, err, ErrInvalidContact)

	assert.Empty(t, poster.payloads)
}

func TestDownloadURLRequiresUnlock(t *testing.T) {
	svc := NewService(newMemoryUnlockStore(), &mockContactPoster{}, nil, testDownloadURL)

	_, err := svc.DownloadURL(context.Background(), "", "")
	assert.ErrorIs(t, err, ErrContactRequired)

	_, err = svc.DownloadURL(context.Background(), "unknown", "")
	assert.ErrorIs(t, err, ErrContactRequired)
}

func TestDownloadURLStoreFailureStaysLocked(t *testing.T) {
	store := newMemoryUnlockStore()
	store.getErr = errors.New("db down")
	svc := NewService(store, &mockContactPoster{}, nil, testDownloadURL)

	_, err := svc.DownloadURL(context.Background(), "visitor-42", "")
	assert.ErrorIs(t, err, ErrContactRequired)
}

func TestDownloadURLOverride(t *testing.T) {
	store := newMemoryUnlockStore()
	svc := NewService(store, &mockContactPoster{}, nil, testDownloadURL)

	res, err := svc.Unlock(context.Background(), validUnlockRequest(), "", "", "https://cdn.example.com/alt.pdf")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/alt.pdf", res.DownloadURL)

	url, err := svc.DownloadURL(context.Background(), res.VisitorID, "https://cdn.example.com/alt.pdf")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/alt.pdf", url)
}
