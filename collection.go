package headmeta

import (
	"bytes"
	"encoding/json"
)

// DecodeCollection decodes a JSON collection of metadata records.
//
// Decoding is lenient about shape: a top-level value that is not an array
// yields an empty collection, and entries that are not record objects are
// skipped. Only syntactically invalid JSON is an error.
func DecodeCollection(data []byte) ([]*Metadata, error) {
	var raw json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, Errorf(EINVALID, "invalid metadata collection: %v", err)
	}
	if !bytes.HasPrefix(raw, []byte("[")) {
		return []*Metadata{}, nil
	}

	var entries []json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, Errorf(EINVALID, "invalid metadata collection: %v", err)
	}

	records := make([]*Metadata, 0, len(entries))
	for _, entry := range entries {
		if !bytes.HasPrefix(entry, []byte("{")) {
			continue
		}
		var m Metadata
		if err := json.Unmarshal(entry, &m); err != nil {
			continue
		}
		records = append(records, &m)
	}
	return records, nil
}

// EncodeCollection encodes records as a JSON array. A nil collection encodes
// as an empty array.
func EncodeCollection(records []*Metadata) ([]byte, error) {
	if records == nil {
		records = []*Metadata{}
	}
	return json.Marshal(records)
}
