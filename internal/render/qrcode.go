package render

import (
	"image"

	"github.com/rook-computer/marquee/internal/render/layout"
	"github.com/skip2/go-qrcode"
	xdraw "golang.org/x/image/draw"
)

const defaultQRCodeSizePx = 256

// GenerateQRCodeImage returns a QR code image for the given payload.
// If payload is empty, it returns (nil, nil).
func GenerateQRCodeImage(payload string, sizePx int) (image.Image, error) {
	if payload == "" {
		return nil, nil
	}
	if sizePx <= 0 {
		sizePx = defaultQRCodeSizePx
	}

	qrCode, err := qrcode.New(payload, qrcode.Medium)
	if err != nil {
		return nil, err
	}
	return qrCode.Image(sizePx), nil
}

// QRCodePNG encodes payload as a PNG QR code.
func QRCodePNG(payload string, sizePx int) ([]byte, error) {
	if sizePx <= 0 {
		sizePx = defaultQRCodeSizePx
	}
	return qrcode.Encode(payload, qrcode.Medium, sizePx)
}

// QROverlay renders payload at sizePx and scales it into a square RGBA tile
// ready for Compositor.SetOverlay.
func QROverlay(payload string, sizePx int) (image.Image, error) {
	if sizePx <= 0 {
		sizePx = defaultQRCodeSizePx
	}
	img, err := GenerateQRCodeImage(payload, sizePx)
	if err != nil || img == nil {
		return nil, err
	}
	tile := image.NewRGBA(image.Rect(0, 0, sizePx, sizePx))
	xdraw.NearestNeighbor.Scale(tile, tile.Bounds(), img, img.Bounds(), xdraw.Over, nil)
	return tile, nil
}

// cornerRect places a sizePx square in the bottom-right of screen, inset by
// marginPx and shrunk to fit if the screen is small.
func cornerRect(screen image.Rectangle, marginPx, sizePx int) image.Rectangle {
	area := layout.Inset(screen, marginPx)
	return layout.FitSquare(layout.AnchorBottomRight(area, sizePx, sizePx))
}
