package render

import (
	"math"
	"strconv"

	"golang.org/x/net/html"

	"portfolio.dev/internal/dom"
	"portfolio.dev/internal/models"
)

const (
	fontBaseRem = 0.8
	opacityBase = 0.7
)

// FontSize is the tag size in rem for a skill level
func FontSize(level int) float64 {
	return round3(fontBaseRem + float64(clampLevel(level))/100)
}

// Opacity is the tag opacity for a skill level, never above 1
func Opacity(level int) float64 {
	return math.Min(1, round3(opacityBase+float64(clampLevel(level))/200))
}

// SkillTag renders one absolutely positioned cloud tag
func (r *Renderer) SkillTag(s models.Skill) *html.Node {
	return dom.El("div",
		dom.Class("cloud-tag"),
		dom.Style("left", formatFloat(s.X)+"%"),
		dom.Style("top", formatFloat(s.Y)+"%"),
		dom.Style("font-size", formatFloat(FontSize(s.Level))+"rem"),
		dom.Style("opacity", formatFloat(Opacity(s.Level))),
		dom.Text(s.Name),
	)
}

// SkillCloud renders every tag into a cloud container
func (r *Renderer) SkillCloud(skills []models.Skill) *html.Node {
	cloud := dom.El("div", dom.ID("skills-cloud"), dom.Class("skills-cloud"))
	for _, s := range skills {
		dom.Append(cloud, r.SkillTag(s))
	}
	return cloud
}

func clampLevel(level int) int {
	return min(max(level, 0), 100)
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
