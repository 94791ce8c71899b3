package events

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/tidwall/gjson"
)

var (
	// ErrMalformedBody reports a body that is not a JSON object.
	ErrMalformedBody = errors.New("events: body is not a JSON object")

	// ErrMissingType reports a structurally valid body without the "type"
	// discriminant. A missing discriminant is a hard error, not an
	// unrecognized event: a body with no type at all is indistinguishable
	// from garbage, while a body with an unfamiliar type is a forward
	// compatibility case.
	ErrMissingType = errors.New("events: missing event type")
)

// Decode parses one raw webhook body into a typed Event.
//
// The discriminant alone selects the payload shape. An unknown discriminant
// never fails: the event is returned with Data nil and the data field
// retained in Raw.
func Decode(raw []byte) (*Event, error) {
	if !gjson.ValidBytes(raw) || !gjson.ParseBytes(raw).IsObject() {
		return nil, ErrMalformedBody
	}

	body := gjson.ParseBytes(raw)

	typeField := body.Get("type")
	if !typeField.Exists() || typeField.String() == "" {
		return nil, ErrMissingType
	}

	evt := &Event{
		Type:      EventType(typeField.String()),
		Timestamp: body.Get("timestamp").Int(),
		SessionID: body.Get("sessionId").String(),
	}

	dataField := body.Get("data")
	if dataField.Exists() {
		evt.Raw = json.RawMessage(dataField.Raw)
	}

	data, err := decodeData(evt.Type, evt.Raw)
	if err != nil {
		return nil, err
	}
	evt.Data = data

	return evt, nil
}

// decodeData interprets the raw data field per the discriminant. For
// unknown kinds it returns nil so the caller keeps only the raw bytes.
func decodeData(t EventType, raw json.RawMessage) (any, error) {
	if !t.Known() {
		return nil, nil
	}

	switch t {
	case ChatsUpsert, ChatsUpdate:
		return decodeBatch[Chat](t, raw)
	case ChatsDelete:
		return decodeBatch[string](t, raw)
	case GroupsUpsert, GroupsUpdate:
		return decodeBatch[GroupMetadata](t, raw)
	case ContactsUpsert, ContactsUpdate:
		return decodeBatch[Contact](t, raw)
	case MessagesUpdate:
		return decodeBatch[MessageUpdate](t, raw)
	case MessagesReaction:
		return decodeBatch[MessageReaction](t, raw)
	case MessageReceiptUpdate:
		return decodeBatch[MessageReceipt](t, raw)
	case MessagesUpsert:
		return decodeObject[MessageUpsert](t, raw)
	case MessagesDelete:
		return decodeObject[MessageDelete](t, raw)
	case MessageSent:
		return decodeObject[MessageSentData](t, raw)
	case SessionStatus:
		return decodeObject[SessionStatusData](t, raw)
	case QRCodeUpdated:
		return decodeObject[QRCodeUpdatedData](t, raw)
	case GroupParticipantsUpdate:
		return decodeObject[GroupParticipantsUpdateData](t, raw)
	}

	return nil, nil
}

// decodeBatch shapes an array payload. An absent or null data field decodes
// as an empty batch, never an error.
func decodeBatch[T any](t EventType, raw json.RawMessage) ([]T, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return []T{}, nil
	}
	var entries []T
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("events: decode %s data: %w", t, err)
	}
	if entries == nil {
		entries = []T{}
	}
	return entries, nil
}

// decodeObject shapes a single-object payload.
func decodeObject[T any](t EventType, raw json.RawMessage) (*T, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, fmt.Errorf("events: %s event has no data", t)
	}
	obj := new(T)
	if err := json.Unmarshal(raw, obj); err != nil {
		return nil, fmt.Errorf("events: decode %s data: %w", t, err)
	}
	return obj, nil
}
