package events

import "encoding/json"

// Event is the decoded representation of one inbound webhook notification.
// Type uniquely determines the concrete type held in Data:
//
//	chats.upsert, chats.update        []Chat
//	chats.delete                      []string
//	groups.upsert, groups.update      []GroupMetadata
//	contacts.upsert, contacts.update  []Contact
//	messages.update                   []MessageUpdate
//	messages.reaction                 []MessageReaction
//	message-receipt.update            []MessageReceipt
//	messages.upsert                   *MessageUpsert
//	messages.delete                   *MessageDelete
//	message.sent                      *MessageSentData
//	session.status                    *SessionStatusData
//	qrcode.updated                    *QRCodeUpdatedData
//	group-participants.update         *GroupParticipantsUpdateData
//
// For an unrecognized Type, Data is nil and Raw carries the undecoded data
// field so callers can log and ignore without losing the notification.
type Event struct {
	Type      EventType
	Timestamp int64
	SessionID string
	Data      any
	Raw       json.RawMessage
}

// envelope is the wire form of an Event.
type envelope struct {
	Type      string          `json:"type"`
	Timestamp int64           `json:"timestamp,omitempty"`
	SessionID string          `json:"sessionId,omitempty"`
	Data      json.RawMessage `json:"data,omitempty"`
}

// MarshalJSON renders the event back into its wire form. Unknown events are
// re-emitted with their retained raw data.
func (e *Event) MarshalJSON() ([]byte, error) {
	env := envelope{
		Type:      string(e.Type),
		Timestamp: e.Timestamp,
		SessionID: e.SessionID,
	}

	switch {
	case e.Data != nil:
		data, err := json.Marshal(e.Data)
		if err != nil {
			return nil, err
		}
		env.Data = data
	case len(e.Raw) > 0:
		env.Data = e.Raw
	}

	return json.Marshal(env)
}

// UnmarshalJSON decodes the wire form, shaping the data payload by the
// discriminant. It is equivalent to Decode.
func (e *Event) UnmarshalJSON(raw []byte) error {
	decoded, err := Decode(raw)
	if err != nil {
		return err
	}
	*e = *decoded
	return nil
}
