// Package qr renders single-use transactional tokens as QR codes, the
// format POS terminals scan at payment time.
package qr

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/skip2/go-qrcode"
)

var logger = logrus.WithField("component", "aspen.qr")

const defaultSize = 300

// TokenContent builds the payload encoded in the QR image.
func TokenContent(token string) (string, error) {
	if token == "" {
		return "", errors.New("token is empty")
	}
	return fmt.Sprintf("aspen://token/%s", token), nil
}

// SingleUseTokenPNG encodes the token as a PNG image of size x size pixels.
// A size of 0 falls back to 300.
func SingleUseTokenPNG(token string, size int) ([]byte, error) {
	content, err := TokenContent(token)
	if err != nil {
		return nil, err
	}

	if size <= 0 {
		size = defaultSize
	}

	logger.Debugf("encoding token QR, size %d", size)
	return qrcode.Encode(content, qrcode.Medium, size)
}
