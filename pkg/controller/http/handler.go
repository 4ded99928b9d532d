package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/jimmyre420/overseerr-bulk-user-modify/pkg/domain/model"
	"github.com/jimmyre420/overseerr-bulk-user-modify/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

const defaultTake = 10

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, model.ServerStatus{
		Version:   s.version,
		CommitTag: "sandbox",
	})
}

func (s *Server) handleListUsers(w http.ResponseWriter, r *http.Request) {
	take, err := queryInt(r, "take", defaultTake)
	if err != nil {
		writeError(w, r, err, http.StatusBadRequest)
		return
	}
	skip, err := queryInt(r, "skip", 0)
	if err != nil {
		writeError(w, r, err, http.StatusBadRequest)
		return
	}

	if s.failingSkips[skip] {
		writeError(w, r, goerr.New("injected listing failure", goerr.V("skip", skip)), http.StatusInternalServerError)
		return
	}

	accounts, total, err := s.store.ListAccounts(r.Context(), skip, take)
	if err != nil {
		writeError(w, r, err, http.StatusBadRequest)
		return
	}

	resp := model.UserListResponse{
		Results: make([]model.RemoteUser, 0, len(accounts)),
	}
	for _, a := range accounts {
		resp.Results = append(resp.Results, a.ToRemoteUser())
	}
	if s.withPageInfo {
		pageSize := take
		if pageSize == 0 {
			pageSize = defaultTake
		}
		resp.PageInfo = &model.PageInfo{
			Pages:    (total + pageSize - 1) / pageSize,
			PageSize: pageSize,
			Results:  total,
			Page:     skip/pageSize + 1,
		}
	}

	writeJSON(w, r, http.StatusOK, resp)
}

func (s *Server) handleGetUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathUserID(r)
	if err != nil {
		writeError(w, r, err, http.StatusBadRequest)
		return
	}

	account, err := s.store.GetAccount(r.Context(), id)
	if err != nil {
		writeStoreError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, userResponse(account))
}

func (s *Server) handleUpdateUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathUserID(r)
	if err != nil {
		writeError(w, r, err, http.StatusBadRequest)
		return
	}
	if s.failingUsers[id.Int()] {
		writeError(w, r, goerr.New("injected update failure", goerr.V("id", id)), http.StatusInternalServerError)
		return
	}

	var req model.UserUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, goerr.Wrap(err, "invalid request body"), http.StatusBadRequest)
		return
	}

	current, err := s.store.GetAccount(r.Context(), id)
	if err != nil {
		writeStoreError(w, r, err)
		return
	}

	mask := model.NotificationMask(req.Settings.NotificationTypes.Email)
	account, err := s.store.UpdateEmailSettings(r.Context(), id, current.EmailEnabled || mask != 0, mask)
	if err != nil {
		writeStoreError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, userResponse(account))
}

func (s *Server) handleGetNotificationSettings(w http.ResponseWriter, r *http.Request) {
	id, err := pathUserID(r)
	if err != nil {
		writeError(w, r, err, http.StatusBadRequest)
		return
	}

	account, err := s.store.GetAccount(r.Context(), id)
	if err != nil {
		writeStoreError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, settingsResponse(account))
}

func (s *Server) handleUpdateNotificationSettings(w http.ResponseWriter, r *http.Request) {
	id, err := pathUserID(r)
	if err != nil {
		writeError(w, r, err, http.StatusBadRequest)
		return
	}
	if s.failingUsers[id.Int()] {
		writeError(w, r, goerr.New("injected update failure", goerr.V("id", id)), http.StatusInternalServerError)
		return
	}

	var req model.NotificationSettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, goerr.Wrap(err, "invalid request body"), http.StatusBadRequest)
		return
	}

	account, err := s.store.UpdateEmailSettings(r.Context(), id, req.EmailEnabled, model.NotificationMask(req.NotificationTypes.Email))
	if err != nil {
		writeStoreError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, settingsResponse(account))
}

type userDetail struct {
	model.RemoteUser
	Settings model.UserSettings `json:"settings"`
}

func userResponse(a *model.AccountRecord) userDetail {
	return userDetail{
		RemoteUser: a.ToRemoteUser(),
		Settings: model.UserSettings{
			NotificationTypes: model.NotificationTypes{Email: a.EmailMask.Int()},
		},
	}
}

func settingsResponse(a *model.AccountRecord) model.NotificationSettingsRequest {
	return model.NotificationSettingsRequest{
		EmailEnabled:      a.EmailEnabled,
		NotificationTypes: model.NotificationTypes{Email: a.EmailMask.Int()},
	}
}

func writeStoreError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, model.ErrAccountNotFound) {
		writeError(w, r, err, http.StatusNotFound)
		return
	}
	writeError(w, r, err, http.StatusInternalServerError)
}

func pathUserID(r *http.Request) (types.UserID, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, goerr.Wrap(err, "invalid user ID", goerr.V("id", raw))
	}
	return types.UserID(id), nil
}

func queryInt(r *http.Request, key string, def int) (int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return 0, goerr.New("invalid query parameter", goerr.V(key, raw))
	}
	return v, nil
}
