package export

import (
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"
)

// RGB is a colour in 0-255 components.
type RGB struct{ R, G, B int }

var (
	colorPrimary   = RGB{102, 126, 234} // #667eea
	colorSecondary = RGB{118, 75, 162}  // #764ba2
	colorGray      = RGB{128, 128, 128}
	colorLink      = RGB{0, 0, 255}
	colorRule      = RGB{226, 232, 240} // #e2e8f0
	colorPanel     = RGB{248, 250, 252} // #f8fafc
	colorText      = RGB{0, 0, 0}
	colorWhite     = RGB{255, 255, 255}
)

// Page is the US-Letter page geometry in points.
type Page struct {
	Width, Height                                    float64
	MarginTop, MarginBottom, MarginLeft, MarginRight float64
}

// LetterPage matches the layout the exported plan has always used.
var LetterPage = Page{
	Width:        612,
	Height:       792,
	MarginTop:    120,
	MarginBottom: 100,
	MarginLeft:   60,
	MarginRight:  60,
}

// Canvas is what blocks and decorators draw on.
type Canvas struct {
	PDF  *fpdf.Fpdf
	Page Page
	tr   func(string) string
}

// Text converts UTF-8 to the core fonts' cp1252 encoding.
func (c *Canvas) Text(s string) string {
	return c.tr(s)
}

// ContentWidth is the printable width between the side margins.
func (c *Canvas) ContentWidth() float64 {
	return c.Page.Width - c.Page.MarginLeft - c.Page.MarginRight
}

func (c *Canvas) setText(rgb RGB) { c.PDF.SetTextColor(rgb.R, rgb.G, rgb.B) }
func (c *Canvas) setFill(rgb RGB) { c.PDF.SetFillColor(rgb.R, rgb.G, rgb.B) }
func (c *Canvas) setDraw(rgb RGB) { c.PDF.SetDrawColor(rgb.R, rgb.G, rgb.B) }

// Block is one unit of flowing content.
type Block interface {
	Draw(c *Canvas)
}

// PageDecorator draws fixed page furniture. page is 1-based; total is the final
// page count of the document.
type PageDecorator func(c *Canvas, page, total int)

// Document lays out blocks over as many pages as needed, calling Decorate on
// every page once the total page count is known.
type Document struct {
	Title    string
	Author   string
	Page     Page
	Blocks   []Block
	Decorate PageDecorator
	Compress bool
}

// Render writes the finished PDF to w. Layout runs twice: the first pass only
// counts pages so decorators can print "Page N of M".
func (d *Document) Render(w io.Writer) error {
	probe, err := d.layout(0)
	if err != nil {
		return err
	}
	final, err := d.layout(probe.PageCount())
	if err != nil {
		return err
	}
	if err := final.Output(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

func (d *Document) layout(total int) (*fpdf.Fpdf, error) {
	page := d.Page
	if page.Width == 0 {
		page = LetterPage
	}

	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: page.Width, Ht: page.Height},
	})
	pdf.SetCompression(d.Compress)
	pdf.SetTitle(d.Title, true)
	pdf.SetAuthor(d.Author, true)
	pdf.SetCreator(d.Author, true)
	pdf.SetMargins(page.MarginLeft, page.MarginTop, page.MarginRight)
	pdf.SetAutoPageBreak(true, page.MarginBottom)

	c := &Canvas{PDF: pdf, Page: page, tr: pdf.UnicodeTranslatorFromDescriptor("")}

	if d.Decorate != nil {
		// Fires once per page, including the last one on Close.
		pdf.SetFooterFunc(func() {
			d.Decorate(c, pdf.PageNo(), total)
		})
	}

	pdf.AddPage()
	for _, b := range d.Blocks {
		b.Draw(c)
		if pdf.Err() {
			return nil, fmt.Errorf("layout pdf: %w", pdf.Error())
		}
	}
	pdf.Close()
	if pdf.Err() {
		return nil, fmt.Errorf("layout pdf: %w", pdf.Error())
	}
	return pdf, nil
}

// Style describes how a text block is set.
type Style struct {
	Size        float64
	Bold        bool
	Color       RGB
	Align       string
	Leading     float64
	Indent      float64
	SpaceBefore float64
	SpaceAfter  float64
	Fill        *RGB
	Border      *RGB
}

func (s Style) apply(c *Canvas) {
	font := ""
	if s.Bold {
		font = "B"
	}
	c.PDF.SetFont("Helvetica", font, s.Size)
	c.setText(s.Color)
}

// Paragraph is a run of wrapped text.
type Paragraph struct {
	Text  string
	Style Style
}

func (p Paragraph) Draw(c *Canvas) {
	s := p.Style
	if s.SpaceBefore > 0 {
		c.PDF.Ln(s.SpaceBefore)
	}
	s.apply(c)
	leading := s.Leading
	if leading == 0 {
		leading = s.Size * 1.3
	}
	align := s.Align
	if align == "" {
		align = "L"
	}

	border := ""
	fill := false
	if s.Fill != nil {
		c.setFill(*s.Fill)
		fill = true
	}
	if s.Border != nil {
		c.setDraw(*s.Border)
		c.PDF.SetLineWidth(1)
		border = "1"
	}

	c.PDF.SetX(c.Page.MarginLeft + s.Indent)
	c.PDF.MultiCell(c.ContentWidth()-s.Indent, leading, c.Text(p.Text), border, align, fill)
	if s.SpaceAfter > 0 {
		c.PDF.Ln(s.SpaceAfter)
	}
}

// Spacer adds vertical space.
type Spacer struct {
	Height float64
}

func (s Spacer) Draw(c *Canvas) {
	c.PDF.Ln(s.Height)
}

// Link is a single line of clickable text.
type Link struct {
	Text  string
	URL   string
	Style Style
}

func (l Link) Draw(c *Canvas) {
	l.Style.Color = colorLink
	l.Style.apply(c)
	leading := l.Style.Leading
	if leading == 0 {
		leading = l.Style.Size * 1.4
	}
	c.PDF.SetX(c.Page.MarginLeft + l.Style.Indent)
	c.PDF.CellFormat(c.PDF.GetStringWidth(c.Text(l.Text)), leading, c.Text(l.Text), "", 1, "L", false, 0, l.URL)
}

// Table is a two-column key/value grid with a highlighted first row.
type Table struct {
	Rows   [][2]string
	Widths [2]float64
}

func (t Table) Draw(c *Canvas) {
	const rowHeight = 22
	c.setDraw(colorRule)
	c.PDF.SetLineWidth(0.5)

	for i, row := range t.Rows {
		c.PDF.SetX(c.Page.MarginLeft)
		switch {
		case i == 0:
			c.setFill(colorPrimary)
			c.setText(colorWhite)
		case i%2 == 0:
			c.setFill(colorPanel)
			c.setText(colorText)
		default:
			c.setFill(colorWhite)
			c.setText(colorText)
		}
		c.PDF.SetFont("Helvetica", "B", 11)
		c.PDF.CellFormat(t.Widths[0], rowHeight, c.Text(row[0]), "1", 0, "L", true, 0, "")
		c.PDF.SetFont("Helvetica", "", 11)
		c.PDF.CellFormat(t.Widths[1], rowHeight, c.Text(row[1]), "1", 1, "L", true, 0, "")
	}
}
