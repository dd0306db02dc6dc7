package report

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/lutefd/skyblock-facade/internal/domain/profiles"
	"github.com/lutefd/skyblock-facade/internal/hypixel"
)

const playerUUID = "7f1a0b2c-3d4e-4f56-8a9b-0c1d2e3f4a5b"

const playerDoc = `{
	"success": true,
	"player": {
		"displayname": "Steve",
		"achievements": {"skyblock_combat": 20}
	}
}`

const profilesDoc = `{
	"success": true,
	"profiles": [
		{
			"profile_id": "abc",
			"cute_name": "Zucchini",
			"selected": true,
			"banking": {"balance": 1500.5},
			"members": {
				"7f1a0b2c3d4e4f568a9b0c1d2e3f4a5b": {
					"last_save": 1600000000000,
					"coin_purse": 99.5,
					"fairy_souls_collected": 42,
					"experience_skill_mining": 175,
					"slayer_bosses": {"zombie": {"xp": 15, "boss_kills_tier_0": 3}},
					"dungeons": {
						"selected_dungeon_class": "mage",
						"player_classes": {"mage": {"experience": 50}},
						"dungeon_types": {"catacombs": {"experience": 100, "tier_completions": {"0": 2}}}
					},
					"pets": []
				}
			}
		},
		{
			"profile_id": "def",
			"cute_name": "Lemon",
			"members": {"someoneelse": {"pets": []}}
		}
	]
}`

func loadFixture(t *testing.T) profiles.Set {
	t.Helper()
	set, err := Load([]byte(playerDoc), []byte(profilesDoc), playerUUID)
	require.NoError(t, err)
	require.Len(t, set, 1)
	return set
}

func TestLoadBuildsPlayedProfiles(t *testing.T) {
	set := loadFixture(t)

	p := set[0]
	assert.Equal(t, "Zucchini", p.Name)
	assert.Equal(t, "Steve", p.Username)
	require.NotNil(t, p.Skills)
	require.NotNil(t, p.Slayers)
	require.NotNil(t, p.Dungeons)
	assert.Equal(t, 1600.0, p.Coins.Total)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load([]byte(`{"player":null}`), []byte(profilesDoc), playerUUID)
	assert.ErrorIs(t, err, hypixel.ErrPlayerNotFound)

	_, err = Load([]byte(playerDoc), []byte(`{"profiles":[]}`), playerUUID)
	assert.ErrorIs(t, err, hypixel.ErrNoProfiles)

	_, err = Load([]byte(playerDoc), []byte(profilesDoc), "00000000-0000-0000-0000-000000000000")
	assert.ErrorIs(t, err, profiles.ErrNoProfiles)
}

func TestLoadFiles(t *testing.T) {
	dir := t.TempDir()
	playerPath := filepath.Join(dir, "player.json")
	profilesPath := filepath.Join(dir, "profiles.json")
	require.NoError(t, os.WriteFile(playerPath, []byte(playerDoc), 0o600))
	require.NoError(t, os.WriteFile(profilesPath, []byte(profilesDoc), 0o600))

	set, err := LoadFiles(playerPath, profilesPath, playerUUID)
	require.NoError(t, err)
	assert.Len(t, set, 1)

	_, err = LoadFiles(filepath.Join(dir, "missing.json"), profilesPath, playerUUID)
	assert.Error(t, err)
}

func TestWorkbookSheets(t *testing.T) {
	f, err := Workbook(loadFixture(t))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{SheetProfiles, SheetSkills, SheetSlayers, SheetDungeons}, f.GetSheetList())

	rows, err := f.GetRows(SheetProfiles)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Profile", rows[0][0])
	assert.Equal(t, "Zucchini", rows[1][0])
	assert.Equal(t, "abc", rows[1][1])
	assert.Equal(t, "Steve", rows[1][2])
	assert.Equal(t, "1500.5", rows[1][12])

	rows, err = f.GetRows(SheetSkills)
	require.NoError(t, err)
	require.Len(t, rows, 11)
	assert.Equal(t, "mining", rows[1][1])
	assert.Equal(t, "175", rows[1][3])

	rows, err = f.GetRows(SheetSlayers)
	require.NoError(t, err)
	require.Len(t, rows, 5)
	assert.Equal(t, "revenant", rows[1][1])
	assert.Equal(t, "15", rows[1][3])
	assert.Equal(t, "3", rows[1][6])

	rows, err = f.GetRows(SheetDungeons)
	require.NoError(t, err)
	require.Len(t, rows, 7)
	assert.Equal(t, "catacombs", rows[1][1])
	assert.Equal(t, "100", rows[1][3])
	assert.Equal(t, "healer", rows[2][1])
}

func TestWorkbookSkipsMissingCategories(t *testing.T) {
	f, err := Workbook(profiles.Set{{ID: "bare", Name: "Bare"}})
	require.NoError(t, err)
	defer f.Close()

	for _, sheet := range []string{SheetSkills, SheetSlayers, SheetDungeons} {
		rows, err := f.GetRows(sheet)
		require.NoError(t, err)
		assert.Len(t, rows, 1, sheet)
	}

	rows, err := f.GetRows(SheetProfiles)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Bare", rows[1][0])
}

func TestWriteProducesReadableWorkbook(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, loadFixture(t)))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	name, err := f.GetCellValue(SheetProfiles, "A2")
	require.NoError(t, err)
	assert.Equal(t, "Zucchini", name)
}

func TestSaveAs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.xlsx")
	require.NoError(t, SaveAs(path, loadFixture(t)))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()
	assert.Len(t, f.GetSheetList(), 4)
}
