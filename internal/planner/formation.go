package planner

// FormationSlot is one tactical position inside a formation template.
// X and Y are percentages within the pitch diagram, origin top-left,
// y=0 at the attacking end and y=100 at the own goal.
type FormationSlot struct {
	Label string   `json:"label"`
	X     float64  `json:"x"`
	Y     float64  `json:"y"`
	Role  Position `json:"role"`
}

// Formation is a named tactical template with an ordered slot list.
type Formation struct {
	Name  string          `json:"name"`
	Slots []FormationSlot `json:"slots"`
}

// DefaultFormationKey is used for new teams and as a fallback whenever a
// stored formation key no longer resolves in the catalog.
const DefaultFormationKey = "4-4-2"

// formationCatalog is the compiled-in formation catalog. It is not
// user-editable and is never persisted.
var formationCatalog = map[string]Formation{
	"4-4-2": {
		Name: "4-4-2",
		Slots: []FormationSlot{
			{Label: "TW", X: 50, Y: 92, Role: PositionTW},
			{Label: "LV", X: 15, Y: 72, Role: PositionABW},
			{Label: "IV", X: 35, Y: 76, Role: PositionABW},
			{Label: "IV", X: 65, Y: 76, Role: PositionABW},
			{Label: "RV", X: 85, Y: 72, Role: PositionABW},
			{Label: "LM", X: 15, Y: 48, Role: PositionMIT},
			{Label: "ZM", X: 38, Y: 52, Role: PositionMIT},
			{Label: "ZM", X: 62, Y: 52, Role: PositionMIT},
			{Label: "RM", X: 85, Y: 48, Role: PositionMIT},
			{Label: "ST", X: 38, Y: 22, Role: PositionANG},
			{Label: "ST", X: 62, Y: 22, Role: PositionANG},
		},
	},
	"4-2-3-1": {
		Name: "4-2-3-1",
		Slots: []FormationSlot{
			{Label: "TW", X: 50, Y: 92, Role: PositionTW},
			{Label: "LV", X: 15, Y: 72, Role: PositionABW},
			{Label: "IV", X: 35, Y: 76, Role: PositionABW},
			{Label: "IV", X: 65, Y: 76, Role: PositionABW},
			{Label: "RV", X: 85, Y: 72, Role: PositionABW},
			{Label: "DM", X: 38, Y: 58, Role: PositionMIT},
			{Label: "DM", X: 62, Y: 58, Role: PositionMIT},
			{Label: "LF", X: 15, Y: 35, Role: PositionANG},
			{Label: "ZOM", X: 50, Y: 38, Role: PositionMIT},
			{Label: "RF", X: 85, Y: 35, Role: PositionANG},
			{Label: "ST", X: 50, Y: 15, Role: PositionANG},
		},
	},
	"4-3-3": {
		Name: "4-3-3",
		Slots: []FormationSlot{
			{Label: "TW", X: 50, Y: 92, Role: PositionTW},
			{Label: "LV", X: 15, Y: 72, Role: PositionABW},
			{Label: "IV", X: 35, Y: 76, Role: PositionABW},
			{Label: "IV", X: 65, Y: 76, Role: PositionABW},
			{Label: "RV", X: 85, Y: 72, Role: PositionABW},
			{Label: "ZM", X: 30, Y: 52, Role: PositionMIT},
			{Label: "ZM", X: 50, Y: 56, Role: PositionMIT},
			{Label: "ZM", X: 70, Y: 52, Role: PositionMIT},
			{Label: "LF", X: 18, Y: 25, Role: PositionANG},
			{Label: "ST", X: 50, Y: 18, Role: PositionANG},
			{Label: "RF", X: 82, Y: 25, Role: PositionANG},
		},
	},
	"3-5-2": {
		Name: "3-5-2",
		Slots: []FormationSlot{
			{Label: "TW", X: 50, Y: 92, Role: PositionTW},
			{Label: "IV", X: 25, Y: 75, Role: PositionABW},
			{Label: "IV", X: 50, Y: 78, Role: PositionABW},
			{Label: "IV", X: 75, Y: 75, Role: PositionABW},
			{Label: "LWB", X: 10, Y: 50, Role: PositionMIT},
			{Label: "ZM", X: 35, Y: 52, Role: PositionMIT},
			{Label: "ZM", X: 50, Y: 58, Role: PositionMIT},
			{Label: "ZM", X: 65, Y: 52, Role: PositionMIT},
			{Label: "RWB", X: 90, Y: 50, Role: PositionMIT},
			{Label: "ST", X: 38, Y: 20, Role: PositionANG},
			{Label: "ST", X: 62, Y: 20, Role: PositionANG},
		},
	},
	"3-4-3": {
		Name: "3-4-3",
		Slots: []FormationSlot{
			{Label: "TW", X: 50, Y: 92, Role: PositionTW},
			{Label: "IV", X: 25, Y: 75, Role: PositionABW},
			{Label: "IV", X: 50, Y: 78, Role: PositionABW},
			{Label: "IV", X: 75, Y: 75, Role: PositionABW},
			{Label: "LM", X: 12, Y: 50, Role: PositionMIT},
			{Label: "ZM", X: 38, Y: 54, Role: PositionMIT},
			{Label: "ZM", X: 62, Y: 54, Role: PositionMIT},
			{Label: "RM", X: 88, Y: 50, Role: PositionMIT},
			{Label: "LF", X: 20, Y: 24, Role: PositionANG},
			{Label: "ST", X: 50, Y: 18, Role: PositionANG},
			{Label: "RF", X: 80, Y: 24, Role: PositionANG},
		},
	},
	"5-3-2": {
		Name: "5-3-2",
		Slots: []FormationSlot{
			{Label: "TW", X: 50, Y: 92, Role: PositionTW},
			{Label: "LV", X: 8, Y: 68, Role: PositionABW},
			{Label: "IV", X: 28, Y: 76, Role: PositionABW},
			{Label: "IV", X: 50, Y: 78, Role: PositionABW},
			{Label: "IV", X: 72, Y: 76, Role: PositionABW},
			{Label: "RV", X: 92, Y: 68, Role: PositionABW},
			{Label: "ZM", X: 30, Y: 50, Role: PositionMIT},
			{Label: "ZM", X: 50, Y: 54, Role: PositionMIT},
			{Label: "ZM", X: 70, Y: 50, Role: PositionMIT},
			{Label: "ST", X: 38, Y: 22, Role: PositionANG},
			{Label: "ST", X: 62, Y: 22, Role: PositionANG},
		},
	},
}

// formationKeys is the stable display order of the catalog.
var formationKeys = []string{"4-4-2", "4-2-3-1", "4-3-3", "3-5-2", "3-4-3", "5-3-2"}

// FormationByKey looks up a formation template by key.
func FormationByKey(key string) (Formation, bool) {
	f, ok := formationCatalog[key]
	return f, ok
}

// ResolveFormationKey returns key if it exists in the catalog, otherwise
// the default formation key.
func ResolveFormationKey(key string) string {
	if _, ok := formationCatalog[key]; ok {
		return key
	}
	return DefaultFormationKey
}

// FormationKeys returns the catalog keys in display order.
func FormationKeys() []string {
	keys := make([]string, len(formationKeys))
	copy(keys, formationKeys)
	return keys
}
