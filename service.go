package withings

import "context"

type UserService interface {
	GetDevice(ctx context.Context) (UserGetDeviceResponse, error)
}

type MeasureService interface {
	GetMeas(ctx context.Context, params *MeasureGetMeasParams) (MeasureGetMeasResponse, error)
	GetActivity(ctx context.Context, params *MeasureGetActivityParams) (MeasureGetActivityResponse, error)
}

type SleepService interface {
	Get(ctx context.Context, params *SleepGetParams) (SleepGetResponse, error)
	GetSummary(ctx context.Context, params *SleepGetSummaryParams) (SleepGetSummaryResponse, error)
}

type HeartService interface {
	Get(ctx context.Context, signalID int) (HeartGetResponse, error)
	List(ctx context.Context, params *HeartListParams) (HeartListResponse, error)
}

type NotifyService interface {
	Get(ctx context.Context, callbackURL string, appli *NotifyAppli) (NotifyGetResponse, error)
	List(ctx context.Context, appli *NotifyAppli) (NotifyListResponse, error)
	Subscribe(ctx context.Context, callbackURL string, appli NotifyAppli, comment string) error
	Revoke(ctx context.Context, callbackURL string, appli *NotifyAppli) error
	Update(ctx context.Context, params *NotifyUpdateParams) error
}
