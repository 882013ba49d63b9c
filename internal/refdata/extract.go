package refdata

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"tradehall/internal/tradedb"
)

const (
	tradeableTagPath   = "data/minecraft/tags/enchantment/tradeable.json"
	nonTreasureTagPath = "data/minecraft/tags/enchantment/non_treasure.json"
	enchantmentPrefix  = "data/minecraft/enchantment/"
	jobSiteTagPath     = "data/minecraft/tags/point_of_interest_type/acquirable_job_site.json"
)

type tagFile struct {
	Values []string `json:"values"`
}

type enchantmentFile struct {
	Description struct {
		Translate string `json:"translate"`
	} `json:"description"`
	MaxLevel       int `json:"max_level"`
	SupportedItems any `json:"supported_items"`
}

// ExtractReference parses an in-memory client archive and returns the
// tradeable enchantments and villager job identifiers it declares, both
// sorted by name.
func ExtractReference(archive []byte) ([]tradedb.Enchantment, []string, error) {
	reader, err := zip.NewReader(bytes.NewReader(archive), int64(len(archive)))
	if err != nil {
		return nil, nil, fmt.Errorf("open archive: %w", err)
	}

	tradeable, err := tradeableIDs(reader)
	if err != nil {
		return nil, nil, err
	}

	enchantmentSet := make(map[string]tradedb.Enchantment)
	jobSet := make(map[string]struct{})

	for _, file := range reader.File {
		switch {
		case strings.HasPrefix(file.Name, enchantmentPrefix) && strings.HasSuffix(file.Name, ".json"):
			ench, ok, err := parseEnchantment(file)
			if err != nil {
				return nil, nil, err
			}
			if !ok {
				continue
			}
			if _, tradeableID := tradeable[ench.Name]; !tradeableID {
				continue
			}
			enchantmentSet[ench.Name] = ench

		case file.Name == jobSiteTagPath:
			var tag tagFile
			if err := decodeArchiveJSON(file, &tag); err != nil {
				return nil, nil, err
			}
			for _, raw := range tag.Values {
				jobSet[afterLast(raw, ":")] = struct{}{}
			}
		}
	}

	enchantments := make([]tradedb.Enchantment, 0, len(enchantmentSet))
	for _, ench := range enchantmentSet {
		enchantments = append(enchantments, ench)
	}
	sort.Slice(enchantments, func(i, j int) bool { return enchantments[i].Name < enchantments[j].Name })

	jobs := make([]string, 0, len(jobSet))
	for job := range jobSet {
		jobs = append(jobs, job)
	}
	sort.Strings(jobs)

	return enchantments, jobs, nil
}

// tradeableIDs collects enchantment ids from the tradeable and non-treasure
// tags. Tag references (entries starting with '#') are skipped.
func tradeableIDs(reader *zip.Reader) (map[string]struct{}, error) {
	ids := make(map[string]struct{})
	for _, path := range []string{tradeableTagPath, nonTreasureTagPath} {
		file := findFile(reader, path)
		if file == nil {
			continue
		}
		var tag tagFile
		if err := decodeArchiveJSON(file, &tag); err != nil {
			return nil, err
		}
		for _, value := range tag.Values {
			if strings.HasPrefix(value, "#") {
				continue
			}
			ids[afterLast(value, ":")] = struct{}{}
		}
	}
	return ids, nil
}

// parseEnchantment cleans one enchantment definition. Entries without a
// usable display name or a positive max level are skipped.
func parseEnchantment(file *zip.File) (tradedb.Enchantment, bool, error) {
	var def enchantmentFile
	if err := decodeArchiveJSON(file, &def); err != nil {
		return tradedb.Enchantment{}, false, err
	}

	name := afterLast(def.Description.Translate, ".")
	if name == "" || def.MaxLevel < 1 {
		return tradedb.Enchantment{}, false, nil
	}

	items := "unknown"
	if def.SupportedItems != nil {
		items = afterLast(fmt.Sprint(def.SupportedItems), "/")
	}

	return tradedb.Enchantment{
		Name:           name,
		MaxLevel:       def.MaxLevel,
		SupportedItems: items,
	}, true, nil
}

func decodeArchiveJSON(file *zip.File, dest any) error {
	rc, err := file.Open()
	if err != nil {
		return fmt.Errorf("open %s: %w", file.Name, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return fmt.Errorf("read %s: %w", file.Name, err)
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("parse %s: %w", file.Name, err)
	}
	return nil
}

func findFile(reader *zip.Reader, name string) *zip.File {
	for _, file := range reader.File {
		if file.Name == name {
			return file
		}
	}
	return nil
}

func afterLast(value, sep string) string {
	if idx := strings.LastIndex(value, sep); idx >= 0 {
		return value[idx+len(sep):]
	}
	return value
}
