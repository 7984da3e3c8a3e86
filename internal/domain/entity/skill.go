package entity

// Skill is a rated skill of an employee. SkillRating is always in [1,5];
// out-of-range values are rejected at validation, never clamped.
type Skill struct {
	ID          string
	EmployeeID  string
	SkillName   string
	SkillRating int
}

// SkillCatalog lists the skill names the UI suggests. Like designations,
// the set is advisory: unknown names are stored and flagged, not rejected.
var SkillCatalog = []string{
	"Java", "Angular", "CSS", "HTML", "JavaScript", "UI", "SQL", "React",
	"PHP", "GIT", "AWS", "Python", "Django", "C", "C++", "C#", "Unity",
	"R", "AI", "NLP", "Photoshop", "Node.js",
}

// KnownSkill reports whether name is in the catalog.
func KnownSkill(name string) bool {
	for _, known := range SkillCatalog {
		if name == known {
			return true
		}
	}
	return false
}
