package skyblock

// Player carries the account-level data used next to a profile: the display
// name and the skill levels recorded by achievements, which stay available
// when a player disables the skills API.
type Player struct {
	Username     string            `json:"username"`
	SkillLevels  SkillAchievements `json:"skyblock_skills"`
	SecretsFound int               `json:"secrets_found"`
}

type SkillAchievements struct {
	Mining     int `json:"mining"`
	Foraging   int `json:"foraging"`
	Enchanting int `json:"enchanting"`
	Farming    int `json:"farming"`
	Combat     int `json:"combat"`
	Fishing    int `json:"fishing"`
	Alchemy    int `json:"alchemy"`
	Taming     int `json:"taming"`
}
