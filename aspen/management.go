package aspen

import (
	"context"
	"fmt"

	"github.com/atorresprocessa/go-aspen-client/aspen/model"
)

// ManagementClient groups the transfer account operations.
type ManagementClient struct {
	c *Client
}

// GetTransferAccounts lists the accounts linked for transfers.
func (m *ManagementClient) GetTransferAccounts(ctx context.Context) ([]model.TransferAccountInfo, error) {
	headers, err := m.c.headers()
	if err != nil {
		return nil, err
	}

	var accounts []model.TransferAccountInfo
	if err := m.c.invoker.Get(ctx, "/management/transferaccounts", headers, &accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}

// LinkTransferAccount registers an external account under an alias. The
// platform verifies the transactional pin inside the request.
func (m *ManagementClient) LinkTransferAccount(ctx context.Context, req model.TransferAccountRequest) error {
	headers, err := m.c.headers()
	if err != nil {
		return err
	}

	return m.c.invoker.Post(ctx, "/management/transferaccounts", headers, req, nil)
}

// UnlinkTransferAccount removes a linked account by its alias.
func (m *ManagementClient) UnlinkTransferAccount(ctx context.Context, alias string) error {
	headers, err := m.c.headers()
	if err != nil {
		return err
	}

	endpoint := fmt.Sprintf("/management/transferaccounts/%s", alias)
	return m.c.invoker.Delete(ctx, endpoint, headers, nil)
}
