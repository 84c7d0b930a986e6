package aspen

import (
	"context"

	"github.com/atorresprocessa/go-aspen-client/aspen/model"
)

// PushClient retrieves messages delivered through the push channel.
type PushClient struct {
	c *Client
}

func (p *PushClient) GetMessages(ctx context.Context) ([]model.PushMessageInfo, error) {
	headers, err := p.c.headers()
	if err != nil {
		return nil, err
	}

	var messages []model.PushMessageInfo
	if err := p.c.invoker.Get(ctx, "/push/messages", headers, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}
