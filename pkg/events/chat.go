package events

// Chat is one entry of a chats.upsert or chats.update batch. Update batches
// carry partial objects, so every field besides the jid may be absent.
type Chat struct {
	ID                    string `json:"id"`
	Name                  string `json:"name,omitempty"`
	UnreadCount           int    `json:"unreadCount,omitempty"`
	ConversationTimestamp int64  `json:"conversationTimestamp,omitempty"`
	Archived              bool   `json:"archived,omitempty"`
	Pinned                int64  `json:"pinned,omitempty"`
	MuteEndTime           int64  `json:"muteEndTime,omitempty"`
}

// Contact is one entry of a contacts.upsert or contacts.update batch.
type Contact struct {
	ID           string `json:"id"`
	Name         string `json:"name,omitempty"`
	Notify       string `json:"notify,omitempty"` // push name chosen by the contact
	VerifiedName string `json:"verifiedName,omitempty"`
	ImgURL       string `json:"imgUrl,omitempty"`
	Status       string `json:"status,omitempty"`
}
