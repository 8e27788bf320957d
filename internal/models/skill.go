package models

// Skill is one tag of the skills cloud.
// Level is 0-100; X and Y are percentage coordinates inside the cloud.
type Skill struct {
	Name  string  `json:"name" yaml:"name"`
	Level int     `json:"level" yaml:"level"`
	X     float64 `json:"x" yaml:"x"`
	Y     float64 `json:"y" yaml:"y"`
}

// SkillList wraps the array of skills
type SkillList struct {
	Skills []Skill `json:"skills"`
}
