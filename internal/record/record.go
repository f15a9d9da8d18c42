// Package record shapes engine output for the external tabular-store glue.
// The engine itself stays format-agnostic; serialization happens here, on
// the caller's side of the boundary.
package record

import (
	"encoding/json"

	"github.com/qiwen/ganzhictl/internal/cycle"
)

// Record is the flat day record downstream consumers expect. Energy and
// Focus stay null until a check-in fills them in.
type Record struct {
	Today       string  `json:"today"`
	Ganzhi      string  `json:"ganzhi"`
	Shishen     string  `json:"shishen"`
	Energy      *int    `json:"energy"`
	Focus       *string `json:"focus"`
	Status      string  `json:"status"`
	Approximate bool    `json:"approximate,omitempty"`
}

// Build flattens a designation into a record. The combined designation
// carries the 日 suffix and the shishen field joins both labels with a
// slash; undefined labels render as empty strings on the wire.
func Build(d cycle.Designation, status string) Record {
	return Record{
		Today:       d.Date.String(),
		Ganzhi:      d.Combined + "日",
		Shishen:     d.StemLabel.Text + "/" + d.BranchLabel.Text,
		Status:      status,
		Approximate: d.Approximate,
	}
}

// JSON renders the record as indented UTF-8 JSON.
func (r Record) JSON() ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}
