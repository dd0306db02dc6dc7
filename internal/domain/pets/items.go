package pets

// Item is a pet held item. Stats are flat bonuses, MultStats multiply the
// pet's own stats and MultAllStats scales every stat at once.
type Item struct {
	Name         string             `json:"name"`
	Tier         string             `json:"tier"`
	Description  string             `json:"description"`
	Stats        map[string]float64 `json:"stats,omitempty"`
	MultStats    map[string]float64 `json:"multStats,omitempty"`
	MultAllStats float64            `json:"multAllStats,omitempty"`
}

const (
	symDefense           = "❈"
	symStrength          = "❁"
	symCritChance        = "☣"
	symCritDamage        = "☠"
	symIntelligence      = "✎"
	symSpeed             = "✦"
	symSeaCreatureChance = "α"
	symMagicFind         = "✯"
	symAttackSpeed       = "⚔️"
	symFerocity          = "⫽"
)

func expBoost(skill, tier, percent string) Item {
	return Item{
		Name:        skill + " Exp Boost",
		Tier:        tier,
		Description: "Gives +" + percent + "% pet exp for " + skill,
	}
}

// Catalog maps held item identifiers to their display data.
var Catalog = map[string]Item{
	"PET_ITEM_ALL_SKILLS_BOOST_COMMON": {
		Name:        "All Skills Exp Boost",
		Tier:        "COMMON",
		Description: "Gives +10% pet exp for all skills",
	},
	"PET_ITEM_BIG_TEETH_COMMON": {
		Name:        "Big Teeth",
		Tier:        "COMMON",
		Description: "Increases " + symCritChance + " Crit Chance by 5",
		Stats:       map[string]float64{"crit_chance": 5},
	},
	"PET_ITEM_IRON_CLAWS_COMMON": {
		Name:        "Iron Claws",
		Tier:        "COMMON",
		Description: "Increases the pet's " + symCritDamage + " Crit Damage by 40% and " + symCritChance + " Crit Chance by 40%",
		MultStats:   map[string]float64{"crit_chance": 1.4, "crit_damage": 1.4},
	},
	"PET_ITEM_SHARPENED_CLAWS_UNCOMMON": {
		Name:        "Sharpened Claws",
		Tier:        "UNCOMMON",
		Description: "Increases " + symCritDamage + " Crit Damage by 15",
		Stats:       map[string]float64{"crit_damage": 15},
	},
	"PET_ITEM_HARDENED_SCALES_UNCOMMON": {
		Name:        "Hardened Scales",
		Tier:        "UNCOMMON",
		Description: "Increases " + symDefense + " Defense by 25",
		Stats:       map[string]float64{"defense": 25},
	},
	"PET_ITEM_BUBBLEGUM": {
		Name:        "Bubblegum",
		Tier:        "RARE",
		Description: "Your pet fuses its power with placed Orbs to give them 2x duration",
	},
	"PET_ITEM_LUCKY_CLOVER": {
		Name:        "Lucky Clover",
		Tier:        "EPIC",
		Description: "Increases " + symMagicFind + " Magic Find by 7",
		Stats:       map[string]float64{"magic_find": 7},
	},
	"PET_ITEM_TEXTBOOK": {
		Name:        "Textbook",
		Tier:        "LEGENDARY",
		Description: "Increases the pet's " + symIntelligence + " Intelligence by 100%",
		MultStats:   map[string]float64{"intelligence": 2},
	},
	"PET_ITEM_SADDLE": {
		Name:        "Saddle",
		Tier:        "UNCOMMON",
		Description: "Increase horse speed by 50%  and jump boost by 100%",
	},
	"PET_ITEM_EXP_SHARE": {
		Name:        "Exp Share",
		Tier:        "EPIC",
		Description: "While unequipped this pet gains 25% of the equipped pet's xp, this is split between all pets holding the item.",
	},
	"PET_ITEM_TIER_BOOST": {
		Name:        "Tier Boost",
		Tier:        "LEGENDARY",
		Description: "Boosts the rarity of your pet by 1 tier!",
	},

	"PET_ITEM_COMBAT_SKILL_BOOST_COMMON":     expBoost("Combat", "COMMON", "20"),
	"PET_ITEM_COMBAT_SKILL_BOOST_UNCOMMON":   expBoost("Combat", "UNCOMMON", "30"),
	"PET_ITEM_COMBAT_SKILL_BOOST_RARE":       expBoost("Combat", "RARE", "40"),
	"PET_ITEM_COMBAT_SKILL_BOOST_EPIC":       expBoost("Combat", "EPIC", "50"),
	"PET_ITEM_FISHING_SKILL_BOOST_COMMON":    expBoost("Fishing", "COMMON", "20"),
	"PET_ITEM_FISHING_SKILL_BOOST_UNCOMMON":  expBoost("Fishing", "UNCOMMON", "30"),
	"PET_ITEM_FISHING_SKILL_BOOST_RARE":      expBoost("Fishing", "RARE", "40"),
	"PET_ITEM_FISHING_SKILL_BOOST_EPIC":      expBoost("Fishing", "EPIC", "50"),
	"PET_ITEM_FORAGING_SKILL_BOOST_COMMON":   expBoost("Foraging", "COMMON", "20"),
	"PET_ITEM_FORAGING_SKILL_BOOST_UNCOMMON": expBoost("Foraging", "UNCOMMON", "30"),
	"PET_ITEM_FORAGING_SKILL_BOOST_RARE":     expBoost("Foraging", "RARE", "40"),
	"PET_ITEM_FORAGING_SKILL_BOOST_EPIC":     expBoost("Foraging", "EPIC", "50"),
	"PET_ITEM_MINING_SKILL_BOOST_COMMON":     expBoost("Mining", "COMMON", "20"),
	"PET_ITEM_MINING_SKILL_BOOST_UNCOMMON":   expBoost("Mining", "UNCOMMON", "30"),
	"PET_ITEM_MINING_SKILL_BOOST_RARE":       expBoost("Mining", "RARE", "40"),
	"PET_ITEM_MINING_SKILL_BOOST_EPIC":       expBoost("Mining", "EPIC", "50"),
	"PET_ITEM_FARMING_SKILL_BOOST_COMMON":    expBoost("Farming", "COMMON", "20"),
	"PET_ITEM_FARMING_SKILL_BOOST_UNCOMMON":  expBoost("Farming", "UNCOMMON", "30"),
	"PET_ITEM_FARMING_SKILL_BOOST_RARE":      expBoost("Farming", "RARE", "40"),
	"PET_ITEM_FARMING_SKILL_BOOST_EPIC":      expBoost("Farming", "EPIC", "50"),

	"REINFORCED_SCALES": {
		Name:        "Reinforced Scales",
		Tier:        "RARE",
		Description: "Increases " + symDefense + " Defense by 40",
		Stats:       map[string]float64{"defense": 40},
	},
	"GOLD_CLAWS": {
		Name:        "Gold Claws",
		Tier:        "UNCOMMON",
		Description: "Increases the pet's " + symCritDamage + " Crit Damage by 50% and " + symCritChance + " Crit Chance by 50%",
		MultStats:   map[string]float64{"crit_chance": 1.5, "crit_damage": 1.5},
	},
	"ALL_SKILLS_SUPER_BOOST": {
		Name:        "All Skills Exp Super-Boost",
		Tier:        "COMMON",
		Description: "Gives +20% pet exp for all skills",
	},
	"BIGGER_TEETH": {
		Name:        "Bigger Teeth",
		Tier:        "UNCOMMON",
		Description: "Increases " + symCritChance + " Crit Chance by 10",
		Stats:       map[string]float64{"crit_chance": 10},
	},
	"SERRATED_CLAWS": {
		Name:        "Serrated Claws",
		Tier:        "RARE",
		Description: "Increases " + symCritDamage + " Crit Damage by 25",
		Stats:       map[string]float64{"crit_damage": 25},
	},
	"WASHED_UP_SOUVENIR": {
		Name:        "Washed-up Souvenir",
		Tier:        "LEGENDARY",
		Description: "Increases " + symSeaCreatureChance + " Sea Creature Chance by 5",
		Stats:       map[string]float64{"sea_creature_chance": 5},
	},
	"ANTIQUE_REMEDIES": {
		Name:        "Antique Remedies",
		Tier:        "EPIC",
		Description: "Increases the pet's " + symStrength + " Strength by 80%",
		MultStats:   map[string]float64{"strength": 1.8},
	},
	"CROCHET_TIGER_PLUSHIE": {
		Name:        "Crochet Tiger Plushie",
		Tier:        "EPIC",
		Description: "Increases " + symAttackSpeed + " Bonus Attack Speed by 35",
		Stats:       map[string]float64{"bonus_attack_speed": 35},
	},
	"DWARF_TURTLE_SHELMET": {
		Name:        "Dwarf Turtle Shelmet",
		Tier:        "RARE",
		Description: "Makes the pet's owner immune to knockback.",
	},
	"PET_ITEM_VAMPIRE_FANG": {
		Name:        "Vampire Fang",
		Tier:        "LEGENDARY",
		Description: "Upgrades a Bat pet from Legendary to Mythic adding a bonus perk and bonus stats!",
	},
	"PET_ITEM_SPOOKY_CUPCAKE": {
		Name:        "Spooky Cupcake",
		Tier:        "UNCOMMON",
		Description: "Increases " + symStrength + " Strength by 30 and " + symSpeed + " Speed by 20",
		Stats:       map[string]float64{"strength": 30, "speed": 20},
	},
	"MINOS_RELIC": {
		Name:         "Minos Relic",
		Tier:         "EPIC",
		Description:  "Increases all pet stats by 33.3%",
		MultAllStats: 1.333,
	},
	"PET_ITEM_TOY_JERRY": {
		Name:        "Jerry 3D Glasses",
		Tier:        "LEGENDARY",
		Description: "Upgrades a Jerry pet from Legendary to Mythic and granting it a new perk!",
	},
	"REAPER_GEM": {
		Name:        "Reaper Gem",
		Tier:        "LEGENDARY",
		Description: "Gain 8" + symFerocity + " Ferocity for 5s on kill",
	},
	"PET_ITEM_FLYING_PIG": {
		Name:        "Flying Pig",
		Tier:        "UNCOMMON",
		Description: "Grants your pig pet the ability to fly while on your private island! You also don't need to hold a carrot on a stick to control your pig.",
	},
}
