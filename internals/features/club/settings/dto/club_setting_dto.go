package dto

type UpsertClubSettingRequest struct {
	ClubSettingMonthlyFee     *int    `json:"club_setting_monthly_fee,omitempty" validate:"omitempty,gt=0"`
	ClubSettingFundEnabled    *bool   `json:"club_setting_fund_enabled,omitempty"`
	ClubSettingFundStartMonth *string `json:"club_setting_fund_start_month,omitempty" validate:"omitempty,datetime=2006-01"`
}
