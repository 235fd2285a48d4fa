// SPDX-License-Identifier: EPL-2.0

package crafter

import "github.com/ik5/audcraft/audio"

// Record is the unit a crafter hands to the rest of the pipeline.
type Record struct {
	ID     int          `json:"id"`
	Offset int          `json:"offset"`
	Weight float64      `json:"weight"`
	Signal audio.Signal `json:"signal"`
}

// Map returns the record as a key/value mapping with the JSON field names.
func (r Record) Map() map[string]any {
	return map[string]any{
		"id":     r.ID,
		"offset": r.Offset,
		"weight": r.Weight,
		"signal": r.Signal,
	}
}
