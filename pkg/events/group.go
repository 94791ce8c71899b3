package events

// GroupMetadata is one entry of a groups.upsert or groups.update batch.
type GroupMetadata struct {
	ID           string             `json:"id"`
	Subject      string             `json:"subject,omitempty"`
	SubjectOwner string             `json:"subjectOwner,omitempty"`
	SubjectTime  int64              `json:"subjectTime,omitempty"`
	Owner        string             `json:"owner,omitempty"`
	Desc         string             `json:"desc,omitempty"`
	Creation     int64              `json:"creation,omitempty"`
	Size         int                `json:"size,omitempty"`
	Restrict     bool               `json:"restrict,omitempty"`
	Announce     bool               `json:"announce,omitempty"`
	Participants []GroupParticipant `json:"participants,omitempty"`
}

type GroupParticipant struct {
	ID    string `json:"id"`
	Admin string `json:"admin,omitempty"` // "admin", "superadmin" or empty
}

// GroupParticipantsUpdateData is the payload of a group-participants.update
// event: a single membership change applied to one group.
type GroupParticipantsUpdateData struct {
	JID          string   `json:"jid"`
	Participants []string `json:"participants"`
	Action       string   `json:"action"` // "add", "remove", "promote", "demote"
	Author       string   `json:"author,omitempty"`
}
