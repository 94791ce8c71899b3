// Package events defines the closed set of webhook event kinds delivered by
// the WaSender API and decodes raw notification bodies into typed envelopes.
//
// Consumers switch on Event.Type (or type-switch on Event.Data) to handle the
// payload shape for each kind:
//
//	evt, err := events.Decode(body)
//	...
//	switch data := evt.Data.(type) {
//	case *events.MessageUpsert:
//	    fmt.Println(data.Message.Conversation)
//	case []events.Chat:
//	    ...
//	}
package events

// EventType is the discriminant carried in the "type" field of every webhook
// notification. The set of known values is fixed at build time; unknown
// values are passed through verbatim so new remote-side kinds never break
// consumers.
type EventType string

const (
	ChatsUpsert    EventType = "chats.upsert"
	ChatsUpdate    EventType = "chats.update"
	ChatsDelete    EventType = "chats.delete"
	GroupsUpsert   EventType = "groups.upsert"
	GroupsUpdate   EventType = "groups.update"
	ContactsUpsert EventType = "contacts.upsert"
	ContactsUpdate EventType = "contacts.update"

	MessagesUpsert       EventType = "messages.upsert"
	MessagesUpdate       EventType = "messages.update"
	MessagesDelete       EventType = "messages.delete"
	MessagesReaction     EventType = "messages.reaction"
	MessageReceiptUpdate EventType = "message-receipt.update"
	MessageSent          EventType = "message.sent"

	GroupParticipantsUpdate EventType = "group-participants.update"
	SessionStatus           EventType = "session.status"
	QRCodeUpdated           EventType = "qrcode.updated"
)

// knownTypes lists every event kind this library understands.
var knownTypes = map[EventType]bool{
	ChatsUpsert:             true,
	ChatsUpdate:             true,
	ChatsDelete:             true,
	GroupsUpsert:            true,
	GroupsUpdate:            true,
	ContactsUpsert:          true,
	ContactsUpdate:          true,
	MessagesUpsert:          true,
	MessagesUpdate:          true,
	MessagesDelete:          true,
	MessagesReaction:        true,
	MessageReceiptUpdate:    true,
	MessageSent:             true,
	GroupParticipantsUpdate: true,
	SessionStatus:           true,
	QRCodeUpdated:           true,
}

// arrayShaped lists the kinds whose data field is an ordered batch of
// homogeneous entries. Every other known kind carries exactly one object.
// The split is fixed per kind, never inferred from the payload itself.
var arrayShaped = map[EventType]bool{
	ChatsUpsert:          true,
	ChatsUpdate:          true,
	ChatsDelete:          true,
	GroupsUpsert:         true,
	GroupsUpdate:         true,
	ContactsUpsert:       true,
	ContactsUpdate:       true,
	MessagesUpdate:       true,
	MessagesReaction:     true,
	MessageReceiptUpdate: true,
}

// Known reports whether t is part of the fixed taxonomy.
func (t EventType) Known() bool {
	return knownTypes[t]
}

// ArrayShaped reports whether the data payload for t is an array of entries.
// It is false for unknown types.
func (t EventType) ArrayShaped() bool {
	return arrayShaped[t]
}

func (t EventType) String() string {
	return string(t)
}

// Types returns all known event kinds in a stable order.
func Types() []EventType {
	return []EventType{
		ChatsUpsert, ChatsUpdate, ChatsDelete,
		GroupsUpsert, GroupsUpdate, GroupParticipantsUpdate,
		ContactsUpsert, ContactsUpdate,
		MessagesUpsert, MessagesUpdate, MessagesDelete,
		MessagesReaction, MessageReceiptUpdate, MessageSent,
		SessionStatus, QRCodeUpdated,
	}
}
