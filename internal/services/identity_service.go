package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"travely/internal/domain"
	"travely/internal/domain/models"
	"travely/internal/repositories"
	"travely/internal/session"
	"travely/internal/utils"
)

// IdentityService manages user records and the session-persisted identity.
// The user collection in Store is the source of truth; the session entry is a
// cache of {id,name} for restoring identity across requests.
type IdentityService struct {
	Store     *repositories.Store
	Sessions  session.Store
	RequestID string
}

// Login looks the username up case-insensitively and persists the identity
// under the session id.
func (s IdentityService) Login(ctx context.Context, sessionID, username string) (models.User, error) {
	user, err := s.Store.GetUser(username)
	if err != nil {
		return models.User{}, domain.InvalidCredentialsError{}
	}
	if err := s.persistSession(ctx, sessionID, user); err != nil {
		return models.User{}, domain.InternalError{Msg: "failed to persist session", Err: err}
	}
	utils.LogEvent(s.RequestID, "identity", "login", "user_id="+user.ID)
	return user, nil
}

// Register creates a user with a lowercased id, keeping the original casing as
// the display name, and logs the user in immediately.
func (s IdentityService) Register(ctx context.Context, sessionID, username string) (models.User, error) {
	username = utils.TrimOrEmpty(username)
	if username == "" {
		return models.User{}, domain.ValidationError{Field: "username", Msg: "cannot be empty"}
	}

	user := models.User{ID: strings.ToLower(username), Name: username}
	if err := s.Store.AppendUser(user); err != nil {
		return models.User{}, err
	}

	// Registration succeeded against the source of truth; a session write
	// failure only costs the user a fresh login.
	if err := s.persistSession(ctx, sessionID, user); err != nil {
		utils.LogWarn(s.RequestID, "identity", "register", fmt.Sprintf("session persist failed: %v", err))
	}
	utils.LogEvent(s.RequestID, "identity", "register", "user_id="+user.ID)
	return user, nil
}

// UpdateProfile changes the display name. The session copy is refreshed only
// on success, so a failed update leaves the persisted identity untouched.
func (s IdentityService) UpdateProfile(ctx context.Context, sessionID, userID, newName string) (models.User, error) {
	newName = utils.NormalizeSpace(newName)
	if newName == "" {
		return models.User{}, domain.ValidationError{Field: "name", Msg: "cannot be empty"}
	}

	user, err := s.Store.UpdateUserName(userID, newName)
	if err != nil {
		return models.User{}, err
	}

	if err := s.persistSession(ctx, sessionID, user); err != nil {
		utils.LogWarn(s.RequestID, "identity", "update_profile", fmt.Sprintf("session persist failed: %v", err))
	}
	utils.LogEvent(s.RequestID, "identity", "update_profile", "user_id="+user.ID)
	return user, nil
}

// Logout clears the session entry. Safe to call with no active session.
func (s IdentityService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	return s.Sessions.Clear(ctx, sessionID)
}

// CurrentUser reads the persisted identity. Missing and corrupt entries both
// read as absent (nil user, no error); corruption is logged as a warning.
func (s IdentityService) CurrentUser(ctx context.Context, sessionID string) (*models.User, error) {
	if sessionID == "" {
		return nil, nil
	}
	payload, err := s.Sessions.Get(ctx, sessionID)
	if errors.Is(err, session.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		utils.LogWarn(s.RequestID, "identity", "current_user", fmt.Sprintf("session read failed: %v", err))
		return nil, nil
	}
	var user models.User
	if err := json.Unmarshal(payload, &user); err != nil {
		utils.LogWarn(s.RequestID, "identity", "current_user", fmt.Sprintf("corrupt session payload: %v", err))
		return nil, nil
	}
	return &user, nil
}

func (s IdentityService) persistSession(ctx context.Context, sessionID string, user models.User) error {
	payload, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return s.Sessions.Set(ctx, sessionID, payload)
}
