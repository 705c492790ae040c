package export

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/sparkskytech/ieltsplan/internal/models"
)

const (
	BrandName = "SparkSkyTech"
	BrandURL  = "https://www.sparkskytech.com/ielts"
)

// PDFFilename names the download, stamped to the minute.
func PDFFilename(now time.Time) string {
	return "IELTS_StudyPlan_SparkSkyTech_" + now.Format("20060102_1504") + ".pdf"
}

var (
	titleStyle   = Style{Size: 24, Bold: true, Color: colorPrimary, Align: "C", SpaceAfter: 30}
	sectionStyle = Style{Size: 16, Bold: true, Color: colorSecondary, Leading: 28, SpaceBefore: 20, SpaceAfter: 15, Fill: &colorPanel, Border: &colorRule}
	weekStyle    = Style{Size: 14, Bold: true, Color: colorPrimary, SpaceBefore: 15, SpaceAfter: 12}
	normalStyle  = Style{Size: 11, Color: colorText, Leading: 16, SpaceAfter: 6}
	labelStyle   = Style{Size: 11, Bold: true, Color: colorText, Leading: 16, SpaceAfter: 6}
	bulletStyle  = Style{Size: 10, Color: colorText, Leading: 14, Indent: 20, SpaceAfter: 4}
	taskStyle    = Style{Size: 10, Color: colorText, Leading: 14, Indent: 32, SpaceAfter: 4}
)

// activitiesPerSession caps the activities printed under each session.
const activitiesPerSession = 2

// PlanDocument lays a study plan out as a paginated document.
func PlanDocument(plan *models.StudyPlan) *Document {
	var blocks []Block
	add := func(b ...Block) { blocks = append(blocks, b...) }

	add(Paragraph{Text: "Your Personalized Study Plan", Style: titleStyle}, Spacer{Height: 20})
	add(Table{
		Widths: [2]float64{144, 216},
		Rows: [][2]string{
			{"Current Score:", plan.CurrentScore.String()},
			{"Target Score:", plan.TargetScore.String()},
			{"Test Type:", plan.TestType.Title()},
			{"Duration:", plan.Duration},
			{"Daily Hours:", strconv.Itoa(plan.HoursDaily) + " hours"},
			{"Intensity Level:", string(plan.Intensity)},
		},
	}, Spacer{Height: 30})

	add(Paragraph{Text: "Weekly Study Schedule", Style: sectionStyle})
	for _, week := range plan.Weeks {
		add(Paragraph{Text: week.Name, Style: weekStyle})
		add(Paragraph{Text: "Focus: " + string(week.Focus), Style: normalStyle}, Spacer{Height: 10})

		for _, day := range week.Days {
			add(Paragraph{Text: day.Day + ":", Style: labelStyle})
			for _, s := range day.Sessions {
				add(Paragraph{Text: fmt.Sprintf("• %s: %s", s.Skill, s.Duration), Style: bulletStyle})
				for i, a := range s.Activities {
					if i == activitiesPerSession {
						break
					}
					add(Paragraph{Text: "- " + a, Style: taskStyle})
				}
			}
			add(Spacer{Height: 8})
		}

		if len(week.Goals) > 0 {
			add(Paragraph{Text: "Weekly Goals:", Style: labelStyle})
			for _, g := range week.Goals {
				add(Paragraph{Text: "• " + g, Style: bulletStyle})
			}
		}
		add(Spacer{Height: 20})
	}

	add(Paragraph{Text: "Recommended Resources", Style: sectionStyle})
	add(
		Paragraph{Text: "SparkSkyTech Resources:", Style: labelStyle},
		Paragraph{Text: "• Comprehensive IELTS preparation materials", Style: bulletStyle},
		Paragraph{Text: "• Free practice tests and mock exams", Style: bulletStyle},
		Paragraph{Text: "• Expert strategies and tips", Style: bulletStyle},
		Link{Text: "Visit: www.sparkskytech.com/ielts", URL: BrandURL, Style: Style{Size: 10, Indent: 20}},
		Spacer{Height: 8},
		Paragraph{Text: "Official IELTS Resources:", Style: labelStyle},
		Paragraph{Text: "• Official practice materials and sample tests", Style: bulletStyle},
		Paragraph{Text: "• Test format and scoring information", Style: bulletStyle},
		Paragraph{Text: "• Registration and test center details", Style: bulletStyle},
		Spacer{Height: 8},
		Paragraph{Text: "Additional Practice:", Style: labelStyle},
		Paragraph{Text: "• British Council IELTS preparation courses", Style: bulletStyle},
		Paragraph{Text: "• Online mock tests and practice exercises", Style: bulletStyle},
		Paragraph{Text: "• Mobile apps for daily vocabulary building", Style: bulletStyle},
	)

	add(Spacer{Height: 20}, Paragraph{Text: "Success Tips", Style: weekStyle})
	for _, tip := range successTips {
		add(Paragraph{Text: "• " + tip, Style: bulletStyle})
	}

	return &Document{
		Title:    "IELTS Smart Study Plan",
		Author:   BrandName,
		Page:     LetterPage,
		Blocks:   blocks,
		Decorate: planDecorator(plan.GeneratedDate),
		Compress: true,
	}
}

var successTips = []string{
	"Consistency is key: Study regularly even if for shorter periods",
	"Track your progress: Keep a study journal and note improvements",
	"Practice under timed conditions: Simulate real exam environment",
	"Focus on weak areas: Spend extra time on challenging skills",
	"Use official materials: Supplement with authentic IELTS content",
	"Get feedback: Have your writing and speaking assessed by experts",
}

// planDecorator draws the branded header and footer on every page.
func planDecorator(generated string) PageDecorator {
	return func(c *Canvas, page, total int) {
		pdf := c.PDF
		w, h := c.Page.Width, c.Page.Height
		const side = 50.0

		pdf.SetFont("Helvetica", "B", 16)
		c.setText(colorPrimary)
		pdf.SetXY(0, 40)
		pdf.CellFormat(w, 16, "IELTS Smart Study Plan", "", 0, "C", false, 0, "")

		pdf.SetFont("Helvetica", "", 12)
		c.setText(colorSecondary)
		pdf.SetXY(0, 62)
		pdf.CellFormat(w, 14, "by "+BrandName, "", 0, "C", false, 0, "")

		pdf.SetFont("Helvetica", "", 10)
		c.setText(colorGray)
		pdf.SetXY(side, 40)
		pdf.CellFormat(w-2*side, 12, fmt.Sprintf("Page %d of %d", page, total), "", 0, "R", false, 0, "")

		footerY := h - 50
		pdf.SetFont("Helvetica", "B", 11)
		c.setText(colorPrimary)
		pdf.SetXY(side, footerY-28)
		pdf.CellFormat(0, 12, BrandName+" - IELTS Study Plan Generator", "", 0, "L", false, 0, "")

		pdf.SetFont("Helvetica", "", 10)
		c.setText(colorLink)
		visit := "Visit: www.sparkskytech.com/ielts"
		pdf.SetXY(side, footerY-8)
		pdf.CellFormat(pdf.GetStringWidth(visit), 12, visit, "", 0, "L", false, 0, BrandURL)

		pdf.SetFont("Helvetica", "", 9)
		c.setText(colorGray)
		pdf.SetXY(side, footerY-8)
		pdf.CellFormat(w-2*side, 12, c.Text("Generated: "+generated), "", 0, "R", false, 0, "")

		c.setDraw(colorRule)
		pdf.SetLineWidth(0.5)
		pdf.Line(side, 90, w-side, 90)
		pdf.Line(side, footerY-35, w-side, footerY-35)
	}
}

// WritePDF renders plan as a PDF document to w.
func WritePDF(w io.Writer, plan *models.StudyPlan) error {
	return PlanDocument(plan).Render(w)
}
