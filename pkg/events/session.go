package events

// SessionStatusData is the payload of a session.status event. Status values
// mirror the remote session state machine: "connected", "disconnected",
// "need_scan", "logged_out".
type SessionStatusData struct {
	Status    string `json:"status"`
	SessionID string `json:"sessionId,omitempty"`
	Reason    string `json:"reason,omitempty"`
}

// QRCodeUpdatedData is the payload of a qrcode.updated event: a fresh QR
// login code for a session awaiting pairing.
type QRCodeUpdatedData struct {
	QR        string `json:"qr"`
	ExpiresAt int64  `json:"expiresAt,omitempty"`
}
