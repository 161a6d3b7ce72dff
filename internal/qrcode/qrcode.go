package qrcode

import (
	"net/url"

	qr "github.com/skip2/go-qrcode"
)

// Size is the edge length of generated PNGs in pixels.
const Size = 256

// JoinURL builds the link a phone opens to take a seat in gameID.
func JoinURL(scheme, host, gameID string) string {
	u := url.URL{
		Scheme:   scheme,
		Host:     host,
		Path:     "/player.html",
		RawQuery: url.Values{"game": {gameID}}.Encode(),
	}
	return u.String()
}

// Generate creates a QR code PNG image for the given URL.
func Generate(link string) ([]byte, error) {
	return qr.Encode(link, qr.Medium, Size)
}
