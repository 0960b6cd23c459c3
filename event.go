package socketkit

import (
	"bytes"
	"encoding/json"
	"sort"
)

// EventType identifies one of the closed set of event schemas understood
// by the collection endpoint. The set is fixed at build time.
type EventType int

const (
	EventAppOpen EventType = iota
	EventInAppPurchase
	EventSetClient
	EventCustom
)

const (
	eventNameAppOpen       = "app_open"
	eventNameInAppPurchase = "in_app_purchase"
	eventNameSetClient     = "set_client"
	eventNameCustom        = "custom"
)

func (t EventType) String() string {
	switch t {
	case EventAppOpen:
		return eventNameAppOpen
	case EventInAppPurchase:
		return eventNameInAppPurchase
	case EventSetClient:
		return eventNameSetClient
	case EventCustom:
		return eventNameCustom
	}
	return "unknown"
}

// classifyEvent resolves an event name against the closed type set.
// It never fails hard; an unrecognized or empty name reports false.
func classifyEvent(name string) (EventType, bool) {
	switch name {
	case eventNameAppOpen:
		return EventAppOpen, true
	case eventNameInAppPurchase:
		return EventInAppPurchase, true
	case eventNameSetClient:
		return EventSetClient, true
	case eventNameCustom:
		return EventCustom, true
	}
	return 0, false
}

// Event is a single tracked action. Name must be one of the closed
// event-type set; Fields carries the type-specific values the schema
// for that type defines.
type Event struct {
	Name       string
	Timestamp  int64
	Properties map[string]any
	Fields     map[string]any
}

// SetField sets a type-specific field value.
func (e *Event) SetField(key string, value any) {
	if e.Fields == nil {
		e.Fields = make(map[string]any)
	}
	e.Fields[key] = value
}

// enrich attaches derived fields to the event before validation runs.
// app_open carries the SDK's own release version; a caller-supplied
// value is always overwritten.
func enrich(t EventType, e *Event) {
	switch t {
	case EventAppOpen:
		e.SetField(fieldLibraryVersion, Version)
	case EventInAppPurchase, EventSetClient, EventCustom:
	}
}

// MarshalJSON serializes the event with a stable field order: name,
// timestamp, properties when present, then type-specific fields sorted
// by key. Signatures are computed over these bytes, so the encoding
// must be deterministic.
func (e Event) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	writeMember := func(key string, value any) error {
		if buf.Len() > 1 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return err
		}
		v, err := json.Marshal(value)
		if err != nil {
			return err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
		return nil
	}

	if err := writeMember("name", e.Name); err != nil {
		return nil, err
	}
	if err := writeMember("timestamp", e.Timestamp); err != nil {
		return nil, err
	}
	if e.Properties != nil {
		if err := writeMember("properties", e.Properties); err != nil {
			return nil, err
		}
	}

	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if err := writeMember(k, e.Fields[k]); err != nil {
			return nil, err
		}
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}
