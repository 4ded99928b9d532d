package model

// PageInfo is the pagination metadata of the user listing
type PageInfo struct {
	Pages    int `json:"pages"`
	PageSize int `json:"pageSize"`
	Results  int `json:"results"`
	Page     int `json:"page"`
}

// UserListResponse is the body of GET /api/v1/user
type UserListResponse struct {
	PageInfo *PageInfo    `json:"pageInfo,omitempty"`
	Results  []RemoteUser `json:"results"`
}

// NotificationTypes holds the per-agent notification masks
type NotificationTypes struct {
	Email int `json:"email"`
}

// UserSettings is the settings object embedded in a user update
type UserSettings struct {
	NotificationTypes NotificationTypes `json:"notificationTypes"`
}

// UserUpdateRequest is the body of PUT /api/v1/user/{id}
type UserUpdateRequest struct {
	Email    string       `json:"email"`
	Settings UserSettings `json:"settings"`
}

// NotificationSettingsRequest is the body of
// POST /api/v1/user/{id}/settings/notifications
type NotificationSettingsRequest struct {
	EmailEnabled      bool              `json:"emailEnabled"`
	NotificationTypes NotificationTypes `json:"notificationTypes"`
}

// SuccessResponse is returned for simulated writes
type SuccessResponse struct {
	Success bool `json:"success"`
}
