package overseerr

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/jimmyre420/overseerr-bulk-user-modify/pkg/domain/model"
	"github.com/jimmyre420/overseerr-bulk-user-modify/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// ListUsers fetches one page of the user listing
func (c *Client) ListUsers(ctx context.Context, take, skip int) (*model.UserPage, error) {
	endpoint := fmt.Sprintf("/api/v1/user?take=%d&skip=%d", take, skip)

	raw, err := c.Call(ctx, http.MethodGet, endpoint, nil, false)
	if err != nil {
		return nil, err
	}

	var resp model.UserListResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, goerr.Wrap(err, "failed to decode user listing",
			goerr.V("endpoint", endpoint),
			goerr.T(model.ErrTagAPI))
	}

	page := &model.UserPage{Results: resp.Results}
	if resp.PageInfo != nil {
		page.Pages = resp.PageInfo.Pages
	}
	return page, nil
}

// UpdateEmailNotifications writes the email notification mask of a user
// through the write path of the configured API revision
func (c *Client) UpdateEmailNotifications(ctx context.Context, user model.RemoteUser, mask model.NotificationMask, dryRun bool) error {
	method, endpoint, body := c.notificationWrite(user, mask)

	if _, err := c.Call(ctx, method, endpoint, body, dryRun); err != nil {
		return goerr.Wrap(err, "failed to update email notifications",
			goerr.V("user_id", user.ID),
			goerr.V("email", user.Email))
	}
	return nil
}

func (c *Client) notificationWrite(user model.RemoteUser, mask model.NotificationMask) (string, string, any) {
	notificationTypes := model.NotificationTypes{Email: mask.Int()}

	if c.revision == types.APIRevisionUser {
		return http.MethodPut,
			fmt.Sprintf("/api/v1/user/%d", user.ID.Int()),
			model.UserUpdateRequest{
				Email:    user.Email,
				Settings: model.UserSettings{NotificationTypes: notificationTypes},
			}
	}

	return http.MethodPost,
		fmt.Sprintf("/api/v1/user/%d/settings/notifications", user.ID.Int()),
		model.NotificationSettingsRequest{
			EmailEnabled:      true,
			NotificationTypes: notificationTypes,
		}
}

// GetStatus fetches the server version information
func (c *Client) GetStatus(ctx context.Context) (*model.ServerStatus, error) {
	raw, err := c.Call(ctx, http.MethodGet, "/api/v1/status", nil, false)
	if err != nil {
		return nil, err
	}

	var status model.ServerStatus
	if err := json.Unmarshal(raw, &status); err != nil {
		return nil, goerr.Wrap(err, "failed to decode server status", goerr.T(model.ErrTagAPI))
	}
	return &status, nil
}
