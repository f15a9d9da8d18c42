package config

import (
	"fmt"
	"os"
	"strings"
)

func Template(kind string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "config":
		return configTemplate, nil
	case "anchors":
		return anchorsTemplate, nil
	case "shishen":
		return shishenTemplate, nil
	default:
		return "", fmt.Errorf("unknown template kind: %s", kind)
	}
}

func WriteTemplate(path, kind string, overwrite bool) error {
	template, err := Template(kind)
	if err != nil {
		return err
	}
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("file already exists: %s", path)
		}
	}
	return os.WriteFile(path, []byte(template), 0o600)
}

const configTemplate = `anchor_table = "data/ganzhi_anchor.json"
shishen_map = "data/shishen_map.json"
default_status = "未打卡"
`

// Anchor dates below are verified 甲子 or derived days; they must stay
// mutually consistent or the loader rejects the table.
const anchorsTemplate = `{
  "anchors": [
    {"date": "1949-10-01", "gan_idx": 0, "zhi_idx": 0},
    {"date": "2000-01-01", "gan_idx": 4, "zhi_idx": 6},
    {"date": "2024-01-01", "gan_idx": 0, "zhi_idx": 0}
  ],
  "gan": ["甲", "乙", "丙", "丁", "戊", "己", "庚", "辛", "壬", "癸"],
  "zhi": ["子", "丑", "寅", "卯", "辰", "巳", "午", "未", "申", "酉", "戌", "亥"]
}
`

// Labels relative to a 甲 day master; branches classify by their principal
// hidden stem. The map may be trimmed, absent symbols simply go unlabeled.
const shishenTemplate = `{
  "map": {
    "甲": "比肩",
    "乙": "劫财",
    "丙": "食神",
    "丁": "伤官",
    "戊": "偏财",
    "己": "正财",
    "庚": "七杀",
    "辛": "正官",
    "壬": "偏印",
    "癸": "正印",
    "子": "正印",
    "丑": "正财",
    "寅": "比肩",
    "卯": "劫财",
    "辰": "偏财",
    "巳": "食神",
    "午": "伤官",
    "未": "正财",
    "申": "七杀",
    "酉": "正官",
    "戌": "偏财",
    "亥": "偏印"
  }
}
`
