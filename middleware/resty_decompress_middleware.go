package middleware

import (
	"bytes"
	"compress/gzip"
	"io"

	"github.com/andybalholm/brotli"
	"github.com/go-resty/resty/v2"
)

// DecompressMiddleware inflates brotli and gzip response bodies. The market
// data endpoints honour the Accept-Encoding we send with the browser-style
// headers, so payloads regularly arrive compressed.
func DecompressMiddleware(c *resty.Client, resp *resty.Response) error {
	var reader io.Reader
	switch resp.Header().Get("Content-Encoding") {
	case "br":
		reader = brotli.NewReader(bytes.NewReader(resp.Body()))
	case "gzip":
		// resty inflates gzip bodies itself and leaves the header in
		// place; a body without the gzip magic is already plain.
		body := resp.Body()
		if len(body) < 2 || body[0] != 0x1f || body[1] != 0x8b {
			return nil
		}
		gz, err := gzip.NewReader(bytes.NewReader(body))
		if err != nil {
			return err
		}
		defer gz.Close()
		reader = gz
	default:
		return nil
	}

	decompressed, err := io.ReadAll(reader)
	if err != nil {
		return err
	}

	resp.SetBody(decompressed)
	return nil
}
