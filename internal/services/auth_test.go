package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hackorsnooze/snooze/internal/api"
	"github.com/hackorsnooze/snooze/internal/logging"
	"github.com/hackorsnooze/snooze/internal/models"
	"github.com/hackorsnooze/snooze/internal/storage"
)

// ---- fake transport client ----

type fakeClient struct {
	StoriesRet []models.Story
	StoriesErr error

	CreateStoryRet models.Story
	CreateStoryErr error

	DeleteStoryMsg string
	DeleteStoryErr error

	SignupRet *models.User
	SignupErr error

	LoginRet *models.User
	LoginErr error

	GetUserRet *models.User
	GetUserErr error

	AddFavoriteMsg string
	AddFavoriteErr error

	RemoveFavoriteMsg string
	RemoveFavoriteErr error

	// recorded arguments
	LastToken    string
	LastUsername string
	LastStoryID  string
	LastNewStory api.NewStory

	// optional hooks for concurrency tests
	AddFavoriteStarted chan struct{}
	AddFavoriteBlock   chan struct{}
}

func (f *fakeClient) Stories(ctx context.Context) ([]models.Story, error) {
	return f.StoriesRet, f.StoriesErr
}

func (f *fakeClient) CreateStory(ctx context.Context, token string, story api.NewStory) (models.Story, error) {
	f.LastToken = token
	f.LastNewStory = story
	return f.CreateStoryRet, f.CreateStoryErr
}

func (f *fakeClient) DeleteStory(ctx context.Context, token, storyID string) (string, error) {
	f.LastToken = token
	f.LastStoryID = storyID
	return f.DeleteStoryMsg, f.DeleteStoryErr
}

func (f *fakeClient) Signup(ctx context.Context, username, password, name string) (*models.User, error) {
	f.LastUsername = username
	return f.SignupRet, f.SignupErr
}

func (f *fakeClient) Login(ctx context.Context, username, password string) (*models.User, error) {
	f.LastUsername = username
	return f.LoginRet, f.LoginErr
}

func (f *fakeClient) GetUser(ctx context.Context, token, username string) (*models.User, error) {
	f.LastToken = token
	f.LastUsername = username
	return f.GetUserRet, f.GetUserErr
}

func (f *fakeClient) AddFavorite(ctx context.Context, token, username, storyID string) (string, error) {
	f.LastToken = token
	f.LastStoryID = storyID
	if f.AddFavoriteStarted != nil {
		close(f.AddFavoriteStarted)
	}
	if f.AddFavoriteBlock != nil {
		<-f.AddFavoriteBlock
	}
	return f.AddFavoriteMsg, f.AddFavoriteErr
}

func (f *fakeClient) RemoveFavorite(ctx context.Context, token, username, storyID string) (string, error) {
	f.LastToken = token
	f.LastStoryID = storyID
	return f.RemoveFavoriteMsg, f.RemoveFavoriteErr
}

// ---- fake session store ----

type fakeStore struct {
	Saved      []storage.Session
	SessionRet storage.Session
	SessionErr error
	SaveErr    error
	Cleared    bool
}

func (f *fakeStore) Session(ctx context.Context) (storage.Session, error) {
	return f.SessionRet, f.SessionErr
}

func (f *fakeStore) SaveSession(ctx context.Context, s storage.Session) error {
	f.Saved = append(f.Saved, s)
	return f.SaveErr
}

func (f *fakeStore) Clear(ctx context.Context) error {
	f.Cleared = true
	return nil
}

// ---- tests ----

func TestSignup_NewUserHasEmptyListsAndToken(t *testing.T) {
	client := &fakeClient{SignupRet: &models.User{
		Username:   "ann",
		Name:       "Ann A",
		Favorites:  []models.Story{},
		OwnStories: []models.Story{},
		LoginToken: "tok-1",
	}}
	store := &fakeStore{}
	svc := NewAuthService(client, store, logging.NewNopLogger())

	user, err := svc.Signup(context.Background(), "ann", "pw12345", "Ann A")
	require.NoError(t, err)
	require.Equal(t, "ann", user.Username)
	require.Empty(t, user.OwnStories)
	require.Empty(t, user.Favorites)
	require.NotEmpty(t, user.LoginToken)

	require.Len(t, store.Saved, 1)
	require.Equal(t, storage.Session{Token: "tok-1", Username: "ann"}, store.Saved[0])
}

func TestSignup_EmptyFields(t *testing.T) {
	svc := NewAuthService(&fakeClient{}, &fakeStore{}, logging.NewNopLogger())

	_, err := svc.Signup(context.Background(), "", "pw", "Name")
	require.ErrorIs(t, err, ErrEmptyCredentials)

	_, err = svc.Signup(context.Background(), "ann", "", "Name")
	require.ErrorIs(t, err, ErrEmptyCredentials)

	_, err = svc.Signup(context.Background(), "ann", "pw", "")
	require.ErrorIs(t, err, ErrEmptyCredentials)
}

func TestLogin_PropagatesAuthError(t *testing.T) {
	client := &fakeClient{LoginErr: &api.Error{StatusCode: 401, Message: "Invalid credentials."}}
	store := &fakeStore{}
	svc := NewAuthService(client, store, logging.NewNopLogger())

	_, err := svc.Login(context.Background(), "ann", "wrong")
	require.ErrorIs(t, err, api.ErrUnauthorized)
	require.Empty(t, store.Saved)
}

func TestLogin_PersistFailureDoesNotFailLogin(t *testing.T) {
	client := &fakeClient{LoginRet: &models.User{Username: "ann", LoginToken: "tok"}}
	store := &fakeStore{SaveErr: errors.New("disk full")}
	svc := NewAuthService(client, store, logging.NewNopLogger())

	user, err := svc.Login(context.Background(), "ann", "pw")
	require.NoError(t, err)
	require.Equal(t, "ann", user.Username)
}

func TestRestore_NoStoredSession(t *testing.T) {
	svc := NewAuthService(&fakeClient{}, &fakeStore{}, logging.NewNopLogger())

	user, err := svc.Restore(context.Background())
	require.NoError(t, err)
	require.Nil(t, user)
}

func TestRestore_InvalidTokenSoftFails(t *testing.T) {
	client := &fakeClient{GetUserErr: &api.Error{StatusCode: 401, Message: "Token expired."}}
	store := &fakeStore{SessionRet: storage.Session{Token: "stale", Username: "ann"}}
	svc := NewAuthService(client, store, logging.NewNopLogger())

	user, err := svc.Restore(context.Background())
	require.NoError(t, err)
	require.Nil(t, user)
}

func TestRestore_StoreErrorSoftFails(t *testing.T) {
	store := &fakeStore{SessionErr: errors.New("corrupt db")}
	svc := NewAuthService(&fakeClient{}, store, logging.NewNopLogger())

	user, err := svc.Restore(context.Background())
	require.NoError(t, err)
	require.Nil(t, user)
}

func TestRestore_Success(t *testing.T) {
	client := &fakeClient{GetUserRet: &models.User{Username: "ann", LoginToken: "tok-old"}}
	store := &fakeStore{SessionRet: storage.Session{Token: "tok-old", Username: "ann"}}
	svc := NewAuthService(client, store, logging.NewNopLogger())

	user, err := svc.Restore(context.Background())
	require.NoError(t, err)
	require.NotNil(t, user)
	require.Equal(t, "ann", user.Username)
	require.Equal(t, "tok-old", client.LastToken)
}

func TestLogout_ClearsStore(t *testing.T) {
	store := &fakeStore{}
	svc := NewAuthService(&fakeClient{}, store, logging.NewNopLogger())

	require.NoError(t, svc.Logout(context.Background()))
	require.True(t, store.Cleared)
}
