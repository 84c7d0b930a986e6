package aspen

import (
	"context"

	"github.com/atorresprocessa/go-aspen-client/aspen/model"
)

// SettingsClient exposes the per-application configuration resources.
type SettingsClient struct {
	c *Client
}

// GetMenu lists the menu options of the application.
func (s *SettingsClient) GetMenu(ctx context.Context) ([]model.MenuItemInfo, error) {
	var items []model.MenuItemInfo
	if err := s.get(ctx, "/settings/menu", &items); err != nil {
		return nil, err
	}
	return items, nil
}

// GetDocTypes lists the identification document types the app admits.
func (s *SettingsClient) GetDocTypes(ctx context.Context) ([]model.DocTypeInfo, error) {
	var docTypes []model.DocTypeInfo
	if err := s.get(ctx, "/settings/document-types", &docTypes); err != nil {
		return nil, err
	}
	return docTypes, nil
}

// GetTelcos lists the mobile carriers available for top-ups.
func (s *SettingsClient) GetTelcos(ctx context.Context) ([]model.TelcoInfo, error) {
	var telcos []model.TelcoInfo
	if err := s.get(ctx, "/settings/telcos", &telcos); err != nil {
		return nil, err
	}
	return telcos, nil
}

// GetTranTypes lists the transaction types recognized by the platform.
func (s *SettingsClient) GetTranTypes(ctx context.Context) ([]model.TranTypeInfo, error) {
	var tranTypes []model.TranTypeInfo
	if err := s.get(ctx, "/settings/tran-types", &tranTypes); err != nil {
		return nil, err
	}
	return tranTypes, nil
}

// GetPaymentTypes lists the payment types recognized by the platform.
func (s *SettingsClient) GetPaymentTypes(ctx context.Context) ([]model.PaymentTypeInfo, error) {
	var paymentTypes []model.PaymentTypeInfo
	if err := s.get(ctx, "/settings/payment-types", &paymentTypes); err != nil {
		return nil, err
	}
	return paymentTypes, nil
}

// GetTopUpValues lists the admitted mobile top-up values.
func (s *SettingsClient) GetTopUpValues(ctx context.Context) ([]model.TopUpInfo, error) {
	var values []model.TopUpInfo
	if err := s.get(ctx, "/settings/topups", &values); err != nil {
		return nil, err
	}
	return values, nil
}

// GetMiscellaneousValues fetches the free-form platform settings.
func (s *SettingsClient) GetMiscellaneousValues(ctx context.Context) (model.MiscellaneousInfo, error) {
	var values model.MiscellaneousInfo
	if err := s.get(ctx, "/settings/miscellaneous", &values); err != nil {
		return nil, err
	}
	return values, nil
}

func (s *SettingsClient) get(ctx context.Context, endpoint string, result any) error {
	headers, err := s.c.headers()
	if err != nil {
		return err
	}
	return s.c.invoker.Get(ctx, endpoint, headers, result)
}
