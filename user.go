package withings

import "context"

type userService struct {
	client *Client
}

func (s *userService) GetDevice(ctx context.Context) (UserGetDeviceResponse, error) {
	const route = "/v2/user"

	body, err := s.client.request(ctx, route, "getdevice", nil)
	if err != nil {
		return UserGetDeviceResponse{}, err
	}
	return NewUserGetDeviceResponse(body)
}
