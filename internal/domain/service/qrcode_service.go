package service

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateInviteQR generates a PNG QR code a patient scans to connect to a caretaker.
	GenerateInviteQR(caretakerID string) ([]byte, error)

	// ParseInviteQR extracts the caretaker id from scanned QR content.
	ParseInviteQR(qrData string) (string, error)
}
