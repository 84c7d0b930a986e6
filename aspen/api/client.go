package api

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/atorresprocessa/go-aspen-client/aspen/util"
)

// Headers every signed Aspen request carries.
const (
	HeaderAuthApp     = "X-PRO-Auth-App"
	HeaderAuthPayload = "X-PRO-Auth-Payload"
)

type Client interface {
	Get(ctx context.Context, endpoint string, headers map[string]string, result any) error
	Post(ctx context.Context, endpoint string, headers map[string]string, body, result any) error
	Delete(ctx context.Context, endpoint string, headers map[string]string, result any) error
}

type client struct {
	rest    *resty.Client
	baseURL string
}

func New(baseURL string) Client {
	restyClient := resty.New()
	return &client{rest: restyClient, baseURL: baseURL}
}

// NewWithRestyClient allows callers to bring a preconfigured transport, for
// example with custom timeouts or TLS settings.
func NewWithRestyClient(baseURL string, restyClient *resty.Client) Client {
	return &client{rest: restyClient, baseURL: baseURL}
}

func (c *client) Get(ctx context.Context, endpoint string, headers map[string]string, result any) error {
	r := c.request(ctx, headers)
	if result != nil {
		r.SetResult(result)
	}

	resp, err := r.Get(c.baseURL + endpoint)
	printTraceInfo(endpoint, err, resp)
	return checkError(resp, err)
}

func (c *client) Post(ctx context.Context, endpoint string, headers map[string]string, body, result any) error {
	r := c.request(ctx, headers)
	if body != nil {
		r.SetBody(body)
	}
	if result != nil {
		r.SetResult(result)
	}

	resp, err := r.Post(c.baseURL + endpoint)
	printTraceInfo(endpoint, err, resp)
	return checkError(resp, err)
}

func (c *client) Delete(ctx context.Context, endpoint string, headers map[string]string, result any) error {
	r := c.request(ctx, headers)
	if result != nil {
		r.SetResult(result)
	}

	resp, err := r.Delete(c.baseURL + endpoint)
	printTraceInfo(endpoint, err, resp)
	return checkError(resp, err)
}

func (c *client) request(ctx context.Context, headers map[string]string) *resty.Request {
	r := c.rest.R().SetContext(ctx)
	if util.HttpTraceEnabled() {
		r.EnableTrace()
	}
	r.SetHeader("Content-Type", "application/json")
	for k, v := range headers {
		r.SetHeader(k, v)
	}
	return r
}

// checkError funnels transport failures and error envelopes into a
// *ResponseError. Extra keys of the envelope beside eventId/message land in
// Content.
func checkError(resp *resty.Response, err error) error {
	if err != nil {
		return &ResponseError{
			StatusCode: 0,
			Message:    err.Error(),
			Err:        err,
		}
	}

	if !resp.IsError() {
		return nil
	}

	body := resp.String()
	var envelope map[string]any
	if body != "" {
		// UseNumber keeps integer content (remainingTimeLapse) exact.
		dec := json.NewDecoder(strings.NewReader(body))
		dec.UseNumber()
		_ = dec.Decode(&envelope)
	}

	re := &ResponseError{
		StatusCode: resp.StatusCode(),
		Message:    body,
	}

	if v, ok := envelope["eventId"].(string); ok {
		re.EventID = v
	}
	if v, ok := envelope["message"].(string); ok {
		re.Message = v
	}

	for k, v := range envelope {
		if k == "eventId" || k == "message" {
			continue
		}
		if re.Content == nil {
			re.Content = make(map[string]any)
		}
		re.Content[k] = v
	}

	return re
}

func printTraceInfo(endpoint string, err error, resp *resty.Response) {

	if !util.HttpTraceEnabled() || resp == nil {
		return
	}

	fmt.Println("Response Info:")
	fmt.Println("  Endpoint   :", endpoint)
	fmt.Println("  Error      :", err)
	fmt.Println("  Status Code:", resp.StatusCode())
	fmt.Println("  Status     :", resp.Status())
	fmt.Println("  Time       :", resp.Time())
	fmt.Println("  Received At:", resp.ReceivedAt())
	fmt.Println("  Body       :\n", resp)
	fmt.Println()
}
