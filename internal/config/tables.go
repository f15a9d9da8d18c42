package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/qiwen/ganzhictl/internal/calendar"
	"github.com/qiwen/ganzhictl/internal/cycle"
)

// Wire shapes of the two static lookup tables. The anchor table carries the
// reference days plus both symbol sequences; the shishen file carries the
// sparse symbol-to-label map.
type anchorFile struct {
	Anchors []anchorEntry `json:"anchors"`
	Gan     []string      `json:"gan"`
	Zhi     []string      `json:"zhi"`
}

type anchorEntry struct {
	Date   string `json:"date"`
	GanIdx int    `json:"gan_idx"`
	ZhiIdx int    `json:"zhi_idx"`
}

type shishenFile struct {
	Map map[string]string `json:"map"`
}

// LoadTables reads both table files and returns validated cycle tables.
// Validation covers sequence shape, anchor index ranges, distinct anchor
// dates, and pairwise anchor consistency.
func LoadTables(anchorPath, shishenPath string) (cycle.Tables, error) {
	var af anchorFile
	if err := loadJSON(anchorPath, &af); err != nil {
		return cycle.Tables{}, err
	}
	var sf shishenFile
	if err := loadJSON(shishenPath, &sf); err != nil {
		return cycle.Tables{}, err
	}

	anchors := make([]cycle.Anchor, 0, len(af.Anchors))
	for i, entry := range af.Anchors {
		date, err := calendar.Parse(entry.Date)
		if err != nil {
			return cycle.Tables{}, fmt.Errorf("anchor[%d] in %s: %w", i, anchorPath, err)
		}
		anchors = append(anchors, cycle.Anchor{
			Date:        date,
			StemIndex:   entry.GanIdx,
			BranchIndex: entry.ZhiIdx,
		})
	}

	classification := sf.Map
	if classification == nil {
		classification = map[string]string{}
	}

	tables := cycle.Tables{
		Stems:          af.Gan,
		Branches:       af.Zhi,
		Anchors:        anchors,
		Classification: classification,
	}
	if err := tables.Validate(); err != nil {
		return cycle.Tables{}, fmt.Errorf("table validation failed (%s): %w", anchorPath, err)
	}
	return tables, nil
}

func loadJSON(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("table load failed (%s): %w", path, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("table parse failed (%s): %w", path, err)
	}
	return nil
}
