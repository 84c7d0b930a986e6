package aspen

import (
	"context"
	"fmt"

	"github.com/atorresprocessa/go-aspen-client/aspen/model"
)

// FinancialClient groups the account and balance operations.
type FinancialClient struct {
	c *Client
}

// GetAccounts lists the accounts of the current user.
func (f *FinancialClient) GetAccounts(ctx context.Context) ([]model.AccountInfo, error) {
	headers, err := f.c.headers()
	if err != nil {
		return nil, err
	}

	var accounts []model.AccountInfo
	if err := f.c.invoker.Get(ctx, "/financial/accounts", headers, &accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}

// GetBalances lists the balance buckets of one account.
func (f *FinancialClient) GetBalances(ctx context.Context, accountID string) ([]model.BalanceInfo, error) {
	headers, err := f.c.headers()
	if err != nil {
		return nil, err
	}

	var balances []model.BalanceInfo
	endpoint := fmt.Sprintf("/financial/accounts/%s/balances", accountID)
	if err := f.c.invoker.Get(ctx, endpoint, headers, &balances); err != nil {
		return nil, err
	}
	return balances, nil
}

// GetStatements lists the movements of one balance bucket.
func (f *FinancialClient) GetStatements(ctx context.Context, accountID, accountTypeID string) ([]model.StatementInfo, error) {
	headers, err := f.c.headers()
	if err != nil {
		return nil, err
	}

	var statements []model.StatementInfo
	endpoint := fmt.Sprintf("/financial/accounts/%s/balances/%s/statements", accountID, accountTypeID)
	if err := f.c.invoker.Get(ctx, endpoint, headers, &statements); err != nil {
		return nil, err
	}
	return statements, nil
}

// GetSingleUseToken exchanges the transactional pin for a one-time token.
func (f *FinancialClient) GetSingleUseToken(ctx context.Context, pinNumber string) (*model.SingleUseTokenInfo, error) {
	headers, err := f.c.headers()
	if err != nil {
		return nil, err
	}

	var token model.SingleUseTokenInfo
	body := map[string]string{"pinNumber": pinNumber}
	if err := f.c.invoker.Post(ctx, "/financial/tokens", headers, body, &token); err != nil {
		return nil, err
	}
	return &token, nil
}
