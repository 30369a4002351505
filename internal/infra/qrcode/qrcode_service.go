package qrcode

import (
	"encoding/json"
	"net/url"
	"strings"

	"careconnect/config"
	"careconnect/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const (
	inviteType  = "caretaker_invite"
	defaultSize = 256
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// InviteData is the payload encoded in an invitation QR code. Link lets a phone camera
// open the web client directly; the app itself reads CaretakerID.
type InviteData struct {
	Type        string `json:"type"`
	CaretakerID string `json:"caretaker_id"`
	Link        string `json:"link,omitempty"`
}

// NewQRCodeService creates the invitation QR code service from configuration.
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return newQRCodeService(defaultSize, "M", "")
	}

	return newQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.BaseURL)
}

func newQRCodeService(size int, errorCorrectionLevel, baseURL string) *qrcodeService {
	var level qrcode.RecoveryLevel
	switch strings.ToUpper(errorCorrectionLevel) {
	case "L":
		level = qrcode.Low
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}
	if size <= 0 {
		size = defaultSize
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		baseURL:              strings.TrimRight(baseURL, "/"),
	}
}

// GenerateInviteQR renders the invitation of caretakerID as a PNG.
func (s *qrcodeService) GenerateInviteQR(caretakerID string) ([]byte, error) {
	if strings.TrimSpace(caretakerID) == "" {
		return nil, errors.New("caretaker id is required")
	}

	data := InviteData{Type: inviteType, CaretakerID: caretakerID}
	if s.baseURL != "" {
		data.Link = s.baseURL + "/connect?caretaker=" + url.QueryEscape(caretakerID)
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal QR code data")
	}

	pngBytes, err := qrcode.Encode(string(jsonData), s.errorCorrectionLevel, s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate QR code")
	}

	return pngBytes, nil
}

// ParseInviteQR returns the caretaker id carried by scanned QR content.
func (s *qrcodeService) ParseInviteQR(qrData string) (string, error) {
	var data InviteData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return "", errors.Wrap(err, "failed to unmarshal QR code data")
	}

	if data.Type != inviteType {
		return "", errors.Errorf("invalid QR code type: %s", data.Type)
	}
	if strings.TrimSpace(data.CaretakerID) == "" {
		return "", errors.New("QR code carries no caretaker id")
	}

	return data.CaretakerID, nil
}
