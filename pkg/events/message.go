package events

// MessageKey identifies a single message. It is the join key shared by
// message update, delete, reaction and receipt events.
type MessageKey struct {
	ID          string `json:"id"`
	FromMe      bool   `json:"fromMe"`
	RemoteJID   string `json:"remoteJid"`
	Participant string `json:"participant,omitempty"` // set for group-originated messages
}

// MessageContent is the message body. Only the fields relevant to the
// carried content are populated.
type MessageContent struct {
	Conversation    string                `json:"conversation,omitempty"`
	ExtendedText    *ExtendedTextContent  `json:"extendedTextMessage,omitempty"`
	Image           *MediaContent         `json:"imageMessage,omitempty"`
	Video           *MediaContent         `json:"videoMessage,omitempty"`
	Audio           *MediaContent         `json:"audioMessage,omitempty"`
	Document        *DocumentContent      `json:"documentMessage,omitempty"`
	Sticker         *MediaContent         `json:"stickerMessage,omitempty"`
	Location        *LocationContent      `json:"locationMessage,omitempty"`
	ProtocolMessage *ProtocolMessageStub  `json:"protocolMessage,omitempty"`
}

// Text returns the plain-text body regardless of which content field
// carries it.
func (m *MessageContent) Text() string {
	if m == nil {
		return ""
	}
	if m.Conversation != "" {
		return m.Conversation
	}
	if m.ExtendedText != nil {
		return m.ExtendedText.Text
	}
	if m.Image != nil && m.Image.Caption != "" {
		return m.Image.Caption
	}
	if m.Video != nil && m.Video.Caption != "" {
		return m.Video.Caption
	}
	if m.Document != nil {
		return m.Document.Caption
	}
	return ""
}

type ExtendedTextContent struct {
	Text string `json:"text"`
}

type MediaContent struct {
	URL      string `json:"url,omitempty"`
	Mimetype string `json:"mimetype,omitempty"`
	Caption  string `json:"caption,omitempty"`
	Seconds  int    `json:"seconds,omitempty"`
	PTT      bool   `json:"ptt,omitempty"`
}

type DocumentContent struct {
	URL      string `json:"url,omitempty"`
	Mimetype string `json:"mimetype,omitempty"`
	FileName string `json:"fileName,omitempty"`
	Caption  string `json:"caption,omitempty"`
}

type LocationContent struct {
	DegreesLatitude  float64 `json:"degreesLatitude"`
	DegreesLongitude float64 `json:"degreesLongitude"`
	Name             string  `json:"name,omitempty"`
	Address          string  `json:"address,omitempty"`
}

// ProtocolMessageStub surfaces protocol-level message containers (revokes,
// ephemeral settings) without decoding their internals.
type ProtocolMessageStub struct {
	Key  *MessageKey `json:"key,omitempty"`
	Type string      `json:"type,omitempty"`
}

// MessageUpsert is the payload of a messages.upsert event: one new inbound
// message.
type MessageUpsert struct {
	Key              MessageKey      `json:"key"`
	Message          *MessageContent `json:"message,omitempty"`
	MessageTimestamp int64           `json:"messageTimestamp,omitempty"`
	PushName         string          `json:"pushName,omitempty"`
	Broadcast        bool            `json:"broadcast,omitempty"`
}

// MessageUpdate is one entry of a messages.update batch: a delivery or read
// status change for a previously seen message.
type MessageUpdate struct {
	Key    MessageKey          `json:"key"`
	Update MessageStatusUpdate `json:"update"`
}

type MessageStatusUpdate struct {
	Status           string `json:"status,omitempty"` // e.g. "DELIVERY_ACK", "READ"
	MessageTimestamp int64  `json:"messageTimestamp,omitempty"`
}

// MessageDelete is the payload of a messages.delete event. Either Keys lists
// the deleted messages, or All is true and JID names the cleared chat.
type MessageDelete struct {
	Keys []MessageKey `json:"keys,omitempty"`
	JID  string       `json:"jid,omitempty"`
	All  bool         `json:"all,omitempty"`
}

// MessageReaction is one entry of a messages.reaction batch.
type MessageReaction struct {
	Key      MessageKey      `json:"key"`
	Reaction ReactionContent `json:"reaction"`
}

type ReactionContent struct {
	Text string      `json:"text"` // emoji, empty when the reaction was removed
	Key  *MessageKey `json:"key,omitempty"`
}

// MessageReceipt is one entry of a message-receipt.update batch.
type MessageReceipt struct {
	Key     MessageKey     `json:"key"`
	Receipt ReceiptContent `json:"receipt"`
}

type ReceiptContent struct {
	UserJID          string `json:"userJid,omitempty"`
	ReceiptTimestamp int64  `json:"receiptTimestamp,omitempty"`
	ReadTimestamp    int64  `json:"readTimestamp,omitempty"`
	PlayedTimestamp  int64  `json:"playedTimestamp,omitempty"`
}

// MessageSentData is the payload of a message.sent event: confirmation of a
// send performed by this session.
type MessageSentData struct {
	Key              MessageKey      `json:"key"`
	Message          *MessageContent `json:"message,omitempty"`
	MessageTimestamp int64           `json:"messageTimestamp,omitempty"`
}
