package report

import (
	"fmt"
	"io"
	"os"

	"github.com/xuri/excelize/v2"

	"github.com/lutefd/skyblock-facade/internal/domain/dungeons"
	"github.com/lutefd/skyblock-facade/internal/domain/profiles"
	"github.com/lutefd/skyblock-facade/internal/domain/skills"
	"github.com/lutefd/skyblock-facade/internal/domain/slayers"
	"github.com/lutefd/skyblock-facade/internal/hypixel"
)

const (
	SheetProfiles = "Profiles"
	SheetSkills   = "Skills"
	SheetSlayers  = "Slayers"
	SheetDungeons = "Dungeons"
)

var headers = map[string][]any{
	SheetProfiles: {"Profile", "Profile ID", "Username", "Selected", "Weight", "Overflow", "Total", "Skill Average", "Slayer XP", "Catacombs Level", "Fairy Souls", "Purse", "Bank"},
	SheetSkills:   {"Profile", "Skill", "Level", "Experience", "Weight", "Overflow"},
	SheetSlayers:  {"Profile", "Boss", "Level", "Experience", "Weight", "Overflow", "T1 Kills", "T2 Kills", "T3 Kills", "T4 Kills", "T5 Kills"},
	SheetDungeons: {"Profile", "Category", "Level", "Experience", "Weight", "Overflow"},
}

var sheetOrder = []string{SheetProfiles, SheetSkills, SheetSlayers, SheetDungeons}

// Load builds a profile set from saved /player and /skyblock/profiles
// responses.
func Load(playerDoc, profilesDoc []byte, playerUUID string) (profiles.Set, error) {
	player, err := hypixel.ParsePlayer(playerDoc)
	if err != nil {
		return nil, fmt.Errorf("parse player: %w", err)
	}
	raw, err := hypixel.ParseProfiles(profilesDoc)
	if err != nil {
		return nil, fmt.Errorf("parse profiles: %w", err)
	}
	return profiles.BuildSet(player, playerUUID, raw)
}

// LoadFiles is Load over two files on disk.
func LoadFiles(playerPath, profilesPath, playerUUID string) (profiles.Set, error) {
	playerDoc, err := os.ReadFile(playerPath)
	if err != nil {
		return nil, err
	}
	profilesDoc, err := os.ReadFile(profilesPath)
	if err != nil {
		return nil, err
	}
	return Load(playerDoc, profilesDoc, playerUUID)
}

// Workbook lays the set out over one summary sheet and one sheet per
// category. Profiles without a category report are left out of that sheet.
func Workbook(set profiles.Set) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", SheetProfiles); err != nil {
		return nil, err
	}
	for _, sheet := range sheetOrder[1:] {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}

	rows := map[string][][]any{}
	for _, p := range set {
		rows[SheetProfiles] = append(rows[SheetProfiles], profileRow(p))
		rows[SheetSkills] = append(rows[SheetSkills], skillRows(p)...)
		rows[SheetSlayers] = append(rows[SheetSlayers], slayerRows(p)...)
		rows[SheetDungeons] = append(rows[SheetDungeons], dungeonRows(p)...)
	}

	for _, sheet := range sheetOrder {
		header := headers[sheet]
		if err := writeRow(f, sheet, 1, header); err != nil {
			return nil, err
		}
		last, err := excelize.CoordinatesToCellName(len(header), 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellStyle(sheet, "A1", last, headerStyle); err != nil {
			return nil, err
		}
		for i, row := range rows[sheet] {
			if err := writeRow(f, sheet, i+2, row); err != nil {
				return nil, err
			}
		}
		if err := f.SetColWidth(sheet, "A", "A", 16); err != nil {
			return nil, err
		}
	}
	return f, nil
}

// Write renders the workbook for set into w.
func Write(w io.Writer, set profiles.Set) error {
	f, err := Workbook(set)
	if err != nil {
		return err
	}
	defer f.Close()
	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func SaveAs(path string, set profiles.Set) error {
	f, err := Workbook(set)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.SaveAs(path)
}

func writeRow(f *excelize.File, sheet string, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &values)
}

func profileRow(p profiles.Stats) []any {
	var (
		skillAverage any = ""
		slayerXP     any = ""
		cataLevel    any = ""
		bank         any = ""
		purse        any = ""
	)
	if p.Skills != nil {
		skillAverage = p.Skills.AverageSkills
	}
	if p.Slayers != nil {
		slayerXP = p.Slayers.TotalExperience
	}
	if p.Dungeons != nil {
		cataLevel = p.Dungeons.Types.Catacombs.Level
	}
	if p.Coins.Bank != nil {
		bank = *p.Coins.Bank
	}
	if p.Coins.Purse != nil {
		purse = *p.Coins.Purse
	}
	return []any{
		p.Name, p.ID, p.Username, p.Selected,
		p.Weight.Weight, p.Overflow, p.Total(),
		skillAverage, slayerXP, cataLevel,
		p.FairySouls, purse, bank,
	}
}

func skillRows(p profiles.Stats) [][]any {
	if p.Skills == nil {
		return nil
	}
	out := make([][]any, 0, len(skills.All))
	for _, s := range skills.All {
		st := p.Skills.Get(s)
		out = append(out, []any{p.Name, s.String(), st.Level, st.Experience, st.Weight.Weight, st.Overflow})
	}
	return out
}

func slayerRows(p profiles.Stats) [][]any {
	if p.Slayers == nil {
		return nil
	}
	out := make([][]any, 0, len(slayers.Bosses))
	for _, b := range slayers.Bosses {
		st := p.Slayers.Bosses.Get(b)
		out = append(out, []any{
			p.Name, b.String(), st.Level, st.Experience, st.Weight.Weight, st.Overflow,
			st.Kills.Tier1, st.Kills.Tier2, st.Kills.Tier3, st.Kills.Tier4, st.Kills.Tier5,
		})
	}
	return out
}

func dungeonRows(p profiles.Stats) [][]any {
	if p.Dungeons == nil {
		return nil
	}
	cata := p.Dungeons.Types.Catacombs
	out := make([][]any, 0, len(dungeons.Classes)+1)
	out = append(out, []any{p.Name, "catacombs", cata.Level, cata.Experience, cata.Weight.Weight, cata.Overflow})
	for _, c := range dungeons.Classes {
		st := p.Dungeons.Classes.Get(c)
		out = append(out, []any{p.Name, c.String(), st.Level, st.Experience, st.Weight.Weight, st.Overflow})
	}
	return out
}
