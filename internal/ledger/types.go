package ledger

import "encoding/json"

// EventNotification is one entry returned by an event query. ParsedJSON
// carries the contract-defined payload; for EventCreated notifications it
// holds the created object's id under "event_id".
type EventNotification struct {
	TxDigest   string          `json:"txDigest"`
	ParsedJSON json.RawMessage `json:"parsedJson"`
}

// EventID extracts the created event object id from the notification
// payload. Returns "" when the field is absent or the payload is not the
// expected shape.
func (n *EventNotification) EventID() string {
	var payload struct {
		EventID string `json:"event_id"`
	}
	if err := json.Unmarshal(n.ParsedJSON, &payload); err != nil {
		return ""
	}
	return payload.EventID
}

// FieldSet holds the string-valued fields of a move object. The ledger
// transmits scalar fields (including u64 counters) as JSON strings;
// fields of any other JSON type are dropped during decoding so one odd
// field cannot fail a whole batch lookup.
type FieldSet map[string]string

// UnmarshalJSON keeps only string-typed fields.
func (f *FieldSet) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	out := make(FieldSet, len(raw))
	for key, value := range raw {
		var s string
		if err := json.Unmarshal(value, &s); err == nil {
			out[key] = s
		}
	}
	*f = out
	return nil
}

// ObjectContent is the typed content of a ledger object. DataType
// identifies the content kind; only "moveObject" carries fields.
type ObjectContent struct {
	DataType string   `json:"dataType"`
	Fields   FieldSet `json:"fields"`
}

// DisplayData is the wallet-facing display metadata of an object.
type DisplayData struct {
	Data map[string]string `json:"data,omitempty"`
}

// ObjectData is one object returned by an object lookup.
type ObjectData struct {
	ObjectID string         `json:"objectId"`
	Content  *ObjectContent `json:"content,omitempty"`
	Display  *DisplayData   `json:"display,omitempty"`
}

// ObjectResult wraps an object lookup result; Data is nil when the object
// does not exist or was pruned.
type ObjectResult struct {
	Data *ObjectData `json:"data,omitempty"`
}

// Balance is the total coin balance of one address, in base units
// transmitted as a decimal string.
type Balance struct {
	CoinType     string `json:"coinType"`
	TotalBalance string `json:"totalBalance"`
}

// TransactionResult reports the outcome of a relayed transaction.
type TransactionResult struct {
	Digest string `json:"digest"`
	Status string `json:"status"`
}

// moveObjectDataType is the content kind carrying structured fields.
const moveObjectDataType = "moveObject"

// IsMoveObject reports whether the result holds structured move-object
// content with a non-empty field set.
func (r *ObjectResult) IsMoveObject() bool {
	return r.Data != nil && r.Data.Content != nil &&
		r.Data.Content.DataType == moveObjectDataType &&
		len(r.Data.Content.Fields) > 0
}
