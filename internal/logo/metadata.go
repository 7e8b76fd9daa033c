package logo

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Files is the list of files attached to an entry. On the wire it is either
// a list of filenames or a list of {file, format, size} records; each element
// is tagged with its MetadataSource as it is decoded. A lone filename is read
// as a one-element list.
type Files []FileRef

// UnmarshalJSON accepts both catalog shapes, element by element.
func (f *Files) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if bytes.Equal(trimmed, []byte("null")) {
		*f = nil
		return nil
	}
	if len(trimmed) > 0 && trimmed[0] == '"' {
		ref, err := decodeFileRef(trimmed)
		if err != nil {
			return fmt.Errorf("logo files: %w", err)
		}
		*f = nil
		if ref.File != "" {
			*f = Files{ref}
		}
		return nil
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("logo files: %w", err)
	}

	out := make(Files, 0, len(raw))
	for i, elem := range raw {
		ref, err := decodeFileRef(elem)
		if err != nil {
			return fmt.Errorf("logo files[%d]: %w", i, err)
		}
		if ref.File == "" {
			continue
		}
		out = append(out, ref)
	}
	*f = out
	return nil
}

func decodeFileRef(elem json.RawMessage) (FileRef, error) {
	trimmed := bytes.TrimSpace(elem)
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var name string
		if err := json.Unmarshal(trimmed, &name); err != nil {
			return FileRef{}, err
		}
		return FileRef{File: name, Source: MetadataInferred}, nil
	}

	var ref FileRef
	if err := json.Unmarshal(trimmed, &ref); err != nil {
		return FileRef{}, err
	}
	ref.Source = MetadataInferred
	if ref.Format != "" || ref.Size != "" {
		ref.Source = MetadataExplicit
	}
	return ref, nil
}

// Normalize folds the single-file revision (path + format on the entry)
// into Files so that resolution only deals with one shape.
func (e Entry) Normalize() Entry {
	if len(e.Files) > 0 || e.Path == "" {
		return e
	}
	ref := FileRef{File: e.Path, Source: MetadataInferred}
	if e.Format != "" {
		ref.Format = e.Format
		ref.Source = MetadataExplicit
	}
	e.Files = Files{ref}
	return e
}
