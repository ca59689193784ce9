package withings

import (
	"context"
	"net/url"
	"strconv"
)

type NotifyUpdateParams struct {
	CallbackURL    string
	Appli          NotifyAppli
	NewCallbackURL string
	NewAppli       *NotifyAppli
	Comment        string
}

func (p *NotifyUpdateParams) values() url.Values {
	v := make(url.Values)

	v.Set("callbackurl", p.CallbackURL)
	v.Set("appli", strconv.Itoa(int(p.Appli)))
	v.Set("new_callbackurl", p.NewCallbackURL)
	if p.NewAppli != nil {
		v.Set("new_appli", strconv.Itoa(int(*p.NewAppli)))
	}
	if p.Comment != "" {
		v.Set("comment", p.Comment)
	}

	return v
}

type notifyService struct {
	client *Client
}

// Get returns the last notification service the user subscribed the callback
// to, and its expiry.
func (s *notifyService) Get(ctx context.Context, callbackURL string, appli *NotifyAppli) (NotifyGetResponse, error) {
	const route = "/notify"

	params := make(url.Values)
	params.Set("callbackurl", callbackURL)
	if appli != nil {
		params.Set("appli", strconv.Itoa(int(*appli)))
	}

	body, err := s.client.request(ctx, route, "get", params)
	if err != nil {
		return NotifyGetResponse{}, err
	}
	return NewNotifyGetResponse(body)
}

func (s *notifyService) List(ctx context.Context, appli *NotifyAppli) (NotifyListResponse, error) {
	const route = "/notify"

	params := make(url.Values)
	if appli != nil {
		params.Set("appli", strconv.Itoa(int(*appli)))
	}

	body, err := s.client.request(ctx, route, "list", params)
	if err != nil {
		return NotifyListResponse{}, err
	}
	return NewNotifyListResponse(body)
}

func (s *notifyService) Subscribe(ctx context.Context, callbackURL string, appli NotifyAppli, comment string) error {
	const route = "/notify"

	params := make(url.Values)
	params.Set("callbackurl", callbackURL)
	params.Set("appli", strconv.Itoa(int(appli)))
	if comment != "" {
		params.Set("comment", comment)
	}

	_, err := s.client.request(ctx, route, "subscribe", params)
	return err
}

// Revoke disables notifications to the callback for the given data category,
// or for all categories when appli is nil.
func (s *notifyService) Revoke(ctx context.Context, callbackURL string, appli *NotifyAppli) error {
	const route = "/notify"

	params := make(url.Values)
	params.Set("callbackurl", callbackURL)
	if appli != nil {
		params.Set("appli", strconv.Itoa(int(*appli)))
	}

	_, err := s.client.request(ctx, route, "revoke", params)
	return err
}

func (s *notifyService) Update(ctx context.Context, params *NotifyUpdateParams) error {
	const route = "/notify"

	_, err := s.client.request(ctx, route, "update", params.values())
	return err
}
