package gamedata

// Fields ending in Key are keys into the Texts table.

// A Hero is one star variant of a hero. Heroes with the same name at
// different grades are separate records.
type Hero struct {
	ID       string   `json:"id"`
	NameKey  string   `json:"name"`
	Stars    int      `json:"stars"`
	Class    string   `json:"class"`
	Faction  string   `json:"faction"`
	Gender   string   `json:"gender"`
	DescKey  string   `json:"desc"`
	HowToGet []string `json:"how_to_get"`
	StatID   string   `json:"stat_id"`

	// Stats is the resolved StatID, nil when the reference dangles.
	Stats *HeroStats `json:"-"`
}

// A Growth is a stat that scales with level.
type Growth struct {
	Initial float64
	Growth  float64
}

// HeroStats are the base numbers and skills of one hero variant.
type HeroStats struct {
	ID         string  `json:"id"`
	Stars      int     `json:"stars"`
	HAInitial  float64 `json:"ha_initial"`
	HAGrowth   float64 `json:"ha_growth"`
	HPInitial  float64 `json:"hp_initial"`
	HPGrowth   float64 `json:"hp_growth"`
	ArmInitial float64 `json:"arm_initial"`
	ArmGrowth  float64 `json:"arm_growth"`
	ResInitial float64 `json:"res_initial"`
	ResGrowth  float64 `json:"res_growth"`
	CC         float64 `json:"cc"`
	CD         float64 `json:"cd"`
	Acc        float64 `json:"acc"`
	Eva        float64 `json:"eva"`

	BlockNameKey   string `json:"block_name"`
	BlockDescKey   string `json:"block_desc"`
	PassiveNameKey string `json:"passive_name"`
	PassiveDescKey string `json:"passive_desc"`

	BerryID string `json:"berry_id"`

	// Berry is the resolved BerryID, nil when absent.
	Berry *BerryBonus `json:"-"`
}

// HA returns the attack power growth pair.
func (s *HeroStats) HA() Growth { return Growth{s.HAInitial, s.HAGrowth} }

// HP returns the hit point growth pair.
func (s *HeroStats) HP() Growth { return Growth{s.HPInitial, s.HPGrowth} }

// Arm returns the armor growth pair.
func (s *HeroStats) Arm() Growth { return Growth{s.ArmInitial, s.ArmGrowth} }

// Res returns the resistance growth pair.
func (s *HeroStats) Res() Growth { return Growth{s.ResInitial, s.ResGrowth} }

// A BerryBonus is the most a hero can gain from berries, per stat.
type BerryBonus struct {
	ID  string  `json:"id"`
	HA  float64 `json:"ha"`
	HP  float64 `json:"hp"`
	CC  float64 `json:"cc"`
	Arm float64 `json:"arm"`
	Res float64 `json:"res"`
	CD  float64 `json:"cd"`
	Acc float64 `json:"acc"`
	Eva float64 `json:"eva"`
}

// A Monster is an enemy unit. Monsters have no grade, training or berries.
type Monster struct {
	ID         string  `json:"id"`
	NameKey    string  `json:"name"`
	HAInitial  float64 `json:"ha_initial"`
	HAGrowth   float64 `json:"ha_growth"`
	HPInitial  float64 `json:"hp_initial"`
	HPGrowth   float64 `json:"hp_growth"`
	ArmInitial float64 `json:"arm_initial"`
	ArmGrowth  float64 `json:"arm_growth"`
	ResInitial float64 `json:"res_initial"`
	ResGrowth  float64 `json:"res_growth"`
	CC         float64 `json:"cc"`
	CD         float64 `json:"cd"`
	Acc        float64 `json:"acc"`
	Eva        float64 `json:"eva"`

	ArmorPen        float64 `json:"armor_pen"`
	ResistPen       float64 `json:"resist_pen"`
	DamageReduction float64 `json:"damage_reduction"`
	KnockbackResist float64 `json:"knockback_resist"`
}

// HA returns the attack power growth pair.
func (m *Monster) HA() Growth { return Growth{m.HAInitial, m.HAGrowth} }

// HP returns the hit point growth pair.
func (m *Monster) HP() Growth { return Growth{m.HPInitial, m.HPGrowth} }

// Arm returns the armor growth pair.
func (m *Monster) Arm() Growth { return Growth{m.ArmInitial, m.ArmGrowth} }

// Res returns the resistance growth pair.
func (m *Monster) Res() Growth { return Growth{m.ResInitial, m.ResGrowth} }

// A BerryItem is an edible berry that raises one stat.
type BerryItem struct {
	ID              string  `json:"id"`
	NameKey         string  `json:"name"`
	Stars           int     `json:"stars"`
	StatType        string  `json:"stat_type"`
	StatTypeNameKey string  `json:"stat_type_name"`
	StatValue       float64 `json:"stat_value"`
	GreatRate       float64 `json:"great_rate"`
	EatPrice        int     `json:"eat_price"`
	SellPrice       int     `json:"sell_price"`
}

// A BreadItem is fed to heroes to train them.
type BreadItem struct {
	ID        string  `json:"id"`
	NameKey   string  `json:"name"`
	Stars     int     `json:"stars"`
	Training  int     `json:"training"`
	GreatRate float64 `json:"great_rate"`
	SellPrice int     `json:"sell_price"`
}

// A WeaponItem is a hero weapon. BoundHeroIDs lists the heroes it is
// exclusive to, if any.
type WeaponItem struct {
	ID           string   `json:"id"`
	NameKey      string   `json:"name"`
	Stars        int      `json:"stars"`
	Class        string   `json:"class"`
	Slots        []string `json:"slots"`
	AttackPower  float64  `json:"attack_power"`
	AttackSpeed  float64  `json:"attack_speed"`
	HowToGet     []string `json:"how_to_get"`
	DescKey      string   `json:"desc"`
	BoundHeroIDs []string `json:"bound_hero_ids"`

	// BoundTo is the resolved BoundHeroIDs; dangling ids are dropped.
	BoundTo []*Hero `json:"-"`
}

// A Cost is a resource amount.
type Cost struct {
	Type   string `json:"type"`
	Amount int    `json:"amount"`
}

// A SkillLevel is one level of a special skill.
type SkillLevel struct {
	ID        string  `json:"id"`
	NameKey   string  `json:"name"`
	Level     int     `json:"level"`
	DescKey   string  `json:"desc"`
	GreatRate float64 `json:"great_rate"`
	Costs     []Cost  `json:"costs"`
}

// A SkinStat is one stat a costume adds.
type SkinStat struct {
	Stat  string  `json:"stat"`
	Value float64 `json:"value"`
}

// A SkinItem is a hero costume.
type SkinItem struct {
	ID        string     `json:"id"`
	NameKey   string     `json:"name"`
	SellPrice int        `json:"sell_price"`
	Stats     []SkinStat `json:"stats"`
}

// A Wave entry is one monster placed in a stage.
type Wave struct {
	MonsterID string `json:"monster_id"`
	Level     int    `json:"level"`

	// Monster is the resolved MonsterID, nil when absent.
	Monster *Monster `json:"-"`
}

// A Stage is one campaign stage.
type Stage struct {
	ID             string `json:"id"`
	Code           string `json:"code"`
	NameKey        string `json:"name"`
	MeatCost       int    `json:"meat_cost"`
	MinBreadStars  int    `json:"min_bread_stars"`
	MaxBreadStars  int    `json:"max_bread_stars"`
	WeaponTypes    string `json:"weapon_types"`
	MinWeaponStars int    `json:"min_weapon_stars"`
	MaxWeaponStars int    `json:"max_weapon_stars"`
	Waves          []Wave `json:"waves"`

	// Parsed is the parsed Code; stages with unparseable codes are dropped
	// at load.
	Parsed StageCode `json:"-"`
}
