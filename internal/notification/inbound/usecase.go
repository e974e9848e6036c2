package inbound

import (
	"context"

	"github.com/codegate-id/codegate/internal/notification/usecase"
)

type uc interface {
	Dispatch(ctx context.Context, in usecase.DispatchInput) error

	SettingsList(ctx context.Context, in usecase.SettingsListInput) (*usecase.SettingsListOutput, error)
	SettingsCreate(ctx context.Context, in usecase.SettingsCreateInput) (*usecase.SettingsCreateOutput, error)
	SettingsUpdate(ctx context.Context, in usecase.SettingsUpdateInput) error
	SettingsDelete(ctx context.Context, in usecase.SettingsDeleteInput) error

	ConsumeOTPIssued(ctx context.Context, in usecase.ConsumeOTPIssuedInput) error
}
