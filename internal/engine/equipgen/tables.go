package equipgen

import (
	"slices"

	"github.com/KirkDiggler/rpg-equipment/internal/entities/equipment"
)

// Keyword adjectives that pin the quality tier
const (
	AdjectiveDarkstar  = "黑星"
	AdjectiveLegendary = "传说"
	AdjectiveEpic      = "史诗"
	AdjectiveRare      = "稀有"
)

// adjectives is the adjective word list. The first four force a quality tier.
var adjectives = []string{
	AdjectiveDarkstar, AdjectiveLegendary, AdjectiveEpic, AdjectiveRare,
	"神圣", "黑暗", "火焰", "冰霜", "雷电",
	"光明", "暗影", "血腥", "锋利", "坚固",
	"魔法", "远古", "禁忌", "神秘", "强化",
	"破损", "生锈", "闪耀", "诅咒", "祝福",
	"龙鳞", "凤羽", "星辰", "月影", "日炎",
	"风暴", "大地", "海洋", "天空", "地狱",
	"天堂", "虚空", "混沌", "秩序", "永恒",
}

// nouns is the equipment noun word list
var nouns = []string{
	"长剑", "短剑", "巨剑", "匕首", "法杖",
	"盾牌", "战锤", "长弓", "弩箭", "法球",
	"头盔", "胸甲", "护腿", "战靴", "手套",
	"项链", "戒指", "耳环", "腰带", "护符",
	"斗篷", "长袍", "皮甲", "锁甲", "板甲",
	"战斧", "长枪", "三叉戟", "魔杖", "水晶球",
	"护腕", "肩甲", "面具", "王冠", "权杖",
}

// mainAttributes are the six primary attributes, in table order
var mainAttributes = []string{"力量", "体质", "灵巧", "感知", "魔力", "意志"}

// advancedAttributes are the rare attributes guaranteed on darkstar gear
var advancedAttributes = []string{"速度", "运气"}

// skillsByAttribute maps each primary attribute to the skills that belong to it
var skillsByAttribute = map[string][]string{
	"力量": {"长剑专精", "斧专精", "格斗技巧", "镰刀专精", "双手武器", "战术", "举重", "铁匠", "栽培"},
	"体质": {"杖专精", "长杆专精", "钝器专精", "盾专精", "中装备", "重装备", "木匠", "采掘", "治愈"},
	"灵巧": {"短剑专精", "二刀流", "弓专精", "弩专精", "投掷技巧", "轻装备", "精通闪避", "搜索", "宝石加工", "裁缝", "开锁", "解除陷阱"},
	"感知": {"枪械专精", "远程武器专精", "心眼", "自然学识", "潜行", "垂钓", "鉴定", "侦查", "演奏", "元素精灵强化"},
	"魔力": {"魔法修行", "元素引导", "暗影术", "结界术", "仪式", "炼金术", "烹饪", "解剖学", "读书", "基因学"},
	"意志": {"恢复术", "祝福术", "招魂术", "精神控制", "默记", "魔力极限", "交涉", "赞助", "冥想", "骑乘", "旅行", "信仰"},
}

type negativeTemplate struct {
	name    string
	display string
}

var negativeTemplates = []negativeTemplate{
	{name: "中断成长", display: "中断你的成长"},
	{name: "召唤魔物", display: "随机召唤魔物"},
	{name: "随机传送", display: "引起随机的瞬间移动"},
	{name: "生命吸收", display: "吸收使用者的血"},
}

// spellNames parameterize the weapon-effect templates, one template per spell
var spellNames = []string{
	// rays
	"聚魔射线", "炽热射线", "冰冻射线", "雷光射线", "幻影射线", "地狱射线", "暗黑射线",
	// area
	"轰鸣波动", "手榴弹",
	// breath
	"电击吐息", "神经吐息", "地狱吐息",
	// status
	"元素伤痕", "梦魇", "沉默", "璐璐薇附体", "智者的加护", "振奋", "加速", "再生", "神圣之盾", "圣光加护",
	// misc
	"影步", "空间扭曲", "异次元之手", "斩′首", "荆棘缠绕", "治愈之雨", "蛛网术",
}

// Adjectives returns a copy of the adjective list, keyword adjectives first
func Adjectives() []string {
	return slices.Clone(adjectives)
}

// Nouns returns a copy of the noun list
func Nouns() []string {
	return slices.Clone(nouns)
}

// MainAttributes returns a copy of the six primary attributes in table order
func MainAttributes() []string {
	return slices.Clone(mainAttributes)
}

// AdvancedAttributes returns a copy of the advanced attribute list
func AdvancedAttributes() []string {
	return slices.Clone(advancedAttributes)
}

// SkillsByAttribute returns a copy of the skill table keyed by primary attribute
func SkillsByAttribute() map[string][]string {
	out := make(map[string][]string, len(skillsByAttribute))
	for attribute, skills := range skillsByAttribute {
		out[attribute] = slices.Clone(skills)
	}
	return out
}

// SpellNames returns a copy of the spells behind the weapon-effect templates
func SpellNames() []string {
	return slices.Clone(spellNames)
}

// WeaponEffectMarker prefixes every weapon-effect enchantment name
const WeaponEffectMarker = "武器特效："

var statePrefixes = map[equipment.State]string{
	equipment.StateCursed:    "诅咒的",
	equipment.StateCorrupted: "堕落的",
}

// StatePrefix returns the name prefix for a tainted state, or "" for normal gear
func StatePrefix(state equipment.State) string {
	return statePrefixes[state]
}

var keywordQualities = map[string]equipment.Quality{
	AdjectiveDarkstar:  equipment.QualityDarkstar,
	AdjectiveLegendary: equipment.QualityLegendary,
	AdjectiveEpic:      equipment.QualityEpic,
	AdjectiveRare:      equipment.QualityRare,
}

// qualityThreshold maps a d100 ceiling to the tier it selects.
// Checked in order, rarest first.
type qualityThreshold struct {
	threshold int
	quality   equipment.Quality
}

var qualityThresholds = []qualityThreshold{
	{threshold: 5, quality: equipment.QualityDarkstar},
	{threshold: 15, quality: equipment.QualityLegendary},
	{threshold: 35, quality: equipment.QualityEpic},
	{threshold: 100, quality: equipment.QualityRare},
}

// Level bounds
const (
	MinLevel = 1
	MaxLevel = 3499
)

// Rolled capacity ranges per tier. Darkstar capacity is derived from level instead.
type capacityRange struct {
	min int
	max int
}

var capacityRanges = map[equipment.Quality]capacityRange{
	equipment.QualityLegendary: {min: 2000, max: 3000},
	equipment.QualityEpic:      {min: 1500, max: 2500},
	equipment.QualityRare:      {min: 1000, max: 2000},
}

const darkstarBaseCapacity = 2000

// Roll percentages. These are tuned flavour values and are kept as literals.
const (
	taintedStatePercent   = 10
	negativeInjectPercent = 50

	skewHighPercent = 40 // cumulative: 0-40 high
	skewLowPercent  = 70 // cumulative: 40-70 low, rest uniform

	specialPercent   = 20 // cumulative: 0-20 special
	attributePercent = 50 // cumulative: 20-50 attribute, rest skill

	weaponSpellPercent       = 40
	advancedAttributePercent = 10
)

// Generic fill limits
const (
	maxFillAttempts   = 20
	maxRolledPoints   = 20
	minAdvancedPoints = 11
	maxAdvancedPoints = 20
)
