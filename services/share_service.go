package services

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image/png"
	"net/url"
	"strings"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/qr"

	"github.com/HSouheill/barrim_storefront/models"
)

const qrSize = 256

// ShareService builds the share-product sheet.
type ShareService struct {
	api     *APIClient
	baseURL string
}

func NewShareService(api *APIClient, publicBaseURL string) *ShareService {
	return &ShareService{api: api, baseURL: strings.TrimRight(publicBaseURL, "/")}
}

// ProductURL is the canonical shopper-facing URL of a product.
func (s *ShareService) ProductURL(id string) string {
	return s.baseURL + "/product/" + url.PathEscape(id)
}

func (s *ShareService) Links(ctx context.Context, productID string) (*models.ShareSheet, error) {
	product, err := s.api.Product(ctx, productID)
	if err != nil {
		return nil, err
	}
	link := s.ProductURL(productID)

	code, err := QRDataURI(link)
	if err != nil {
		return nil, err
	}
	return &models.ShareSheet{
		Product: *product,
		URL:     link,
		Targets: ShareTargets(product.Name, link),
		QRCode:  code,
	}, nil
}

// ShareTargets returns one share URL per supported network.
func ShareTargets(title, link string) []models.ShareTarget {
	u := url.QueryEscape(link)
	t := url.QueryEscape(title)
	text := url.QueryEscape(title + " " + link)
	return []models.ShareTarget{
		{Network: "facebook", Label: "Facebook", URL: "https://www.facebook.com/sharer/sharer.php?u=" + u},
		{Network: "x", Label: "X", URL: "https://twitter.com/intent/tweet?url=" + u + "&text=" + t},
		{Network: "whatsapp", Label: "WhatsApp", URL: "https://wa.me/?text=" + text},
		{Network: "telegram", Label: "Telegram", URL: "https://t.me/share/url?url=" + u + "&text=" + t},
		{Network: "linkedin", Label: "LinkedIn", URL: "https://www.linkedin.com/sharing/share-offsite/?url=" + u},
		{Network: "email", Label: "Email", URL: "mailto:?subject=" + url.PathEscape(title) + "&body=" + url.PathEscape(link)},
	}
}

// QRDataURI encodes content as a PNG QR code data URI.
func QRDataURI(content string) (string, error) {
	code, err := qr.Encode(content, qr.M, qr.Auto)
	if err != nil {
		return "", fmt.Errorf("failed to encode qr code: %w", err)
	}
	code, err = barcode.Scale(code, qrSize, qrSize)
	if err != nil {
		return "", fmt.Errorf("failed to scale qr code: %w", err)
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, code); err != nil {
		return "", fmt.Errorf("failed to encode png: %w", err)
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
