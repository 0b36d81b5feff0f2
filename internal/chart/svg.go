package chart

import (
	"bytes"
	"fmt"
	"html"
	"math"
	"strconv"
)

const (
	svgMarginTop    = 10
	svgMarginRight  = 30
	svgLabelGap     = 10
	svgAxisHeight   = 60
	svgTitleSpacing = 20
	svgGridColor    = "#e6e6e6"
	svgAxisColor    = "#888888"
	svgTextColor    = "#333333"
	charWidthFactor = 0.6 // rough average glyph width relative to font size
)

// SVG draws a descriptor as a standalone SVG document. The output depends only
// on the descriptor, so the same chart always produces the same bytes.
func SVG(d Descriptor) ([]byte, error) {
	if len(d.Bars) == 0 {
		return nil, fmt.Errorf("drawing chart %q: %w", d.ID, ErrEmptyDataset)
	}
	if d.Orientation != Horizontal {
		return nil, fmt.Errorf("drawing chart %q: unsupported orientation %q", d.ID, d.Orientation)
	}
	st := d.Style
	if st.Width <= 0 || st.Step <= 0 || st.BarSize <= 0 {
		st = DefaultStyle()
	}

	titleH := 0
	if d.Title != "" {
		titleH = st.TitleFontSize + svgTitleSpacing
	}
	left := st.LabelLimit + svgLabelGap
	plotW := st.Width - left - svgMarginRight
	if plotW < 50 {
		plotW = 50
	}
	plotTop := svgMarginTop + titleH
	plotH := st.Step * len(d.Bars)
	height := plotTop + plotH + svgAxisHeight
	width := left + plotW + svgMarginRight

	tick, top := niceTicks(d.Max())
	xOf := func(v float64) float64 {
		return float64(left) + v/top*float64(plotW)
	}

	var b bytes.Buffer
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" width="100%%" role="img" aria-label="%s" class="bar-chart" font-family="sans-serif">`+"\n",
		width, height, html.EscapeString(d.Title))
	if d.Title != "" {
		fmt.Fprintf(&b, `  <text x="%d" y="%d" font-size="%d" fill="%s">%s</text>`+"\n",
			left, svgMarginTop+st.TitleFontSize, st.TitleFontSize, html.EscapeString(st.TitleColor), html.EscapeString(d.Title))
	}

	// Grid lines and tick labels along the value axis.
	axisY := plotTop + plotH
	for v := 0.0; v <= top+tick/2; v += tick {
		x := num(xOf(v))
		fmt.Fprintf(&b, `  <line x1="%s" y1="%d" x2="%s" y2="%d" stroke="%s"/>`+"\n", x, plotTop, x, axisY, svgGridColor)
		fmt.Fprintf(&b, `  <text x="%s" y="%d" font-size="%d" fill="%s" text-anchor="middle">%s</text>`+"\n",
			x, axisY+st.LabelFontSize+6, st.LabelFontSize, svgTextColor, num(v))
	}
	fmt.Fprintf(&b, `  <line x1="%d" y1="%d" x2="%d" y2="%d" stroke="%s"/>`+"\n", left, axisY, left+plotW, axisY, svgAxisColor)
	fmt.Fprintf(&b, `  <text x="%s" y="%d" font-size="%d" fill="%s" text-anchor="middle" font-weight="bold">Percentage</text>`+"\n",
		num(float64(left)+float64(plotW)/2), axisY+2*st.LabelFontSize+16, st.LabelFontSize, svgTextColor)

	pad := float64(st.Step-st.BarSize) / 2
	if pad < 0 {
		pad = 0
	}
	maxChars := int(float64(st.LabelLimit) / (charWidthFactor * float64(st.LabelFontSize)))
	for i, bar := range d.DrawOrder() {
		y0 := float64(plotTop+i*st.Step) + pad
		y1 := y0 + float64(st.BarSize)
		x0 := float64(left)
		x1 := xOf(bar.Value)
		fmt.Fprintf(&b, `  <path d="%s" fill="%s"><title>%s: %s%%</title></path>`+"\n",
			barPath(x0, x1, y0, y1, float64(st.CornerRadius), d.Rounded), bar.Color,
			html.EscapeString(bar.Label), num(bar.Value))
		fmt.Fprintf(&b, `  <text x="%d" y="%s" font-size="%d" fill="%s" text-anchor="end" dominant-baseline="middle">%s</text>`+"\n",
			left-svgLabelGap, num((y0+y1)/2), st.LabelFontSize, svgTextColor, html.EscapeString(truncate(bar.Label, maxChars)))
	}
	b.WriteString("</svg>\n")
	return b.Bytes(), nil
}

// barPath outlines a horizontal bar from x0 to x1, rounding only the requested corners.
func barPath(x0, x1, y0, y1, radius float64, rc Corners) string {
	r := math.Min(radius, math.Min(x1-x0, (y1-y0)/2))
	if r <= 0 {
		return fmt.Sprintf("M%s %sH%sV%sH%sZ", num(x0), num(y0), num(x1), num(y1), num(x0))
	}
	var p bytes.Buffer
	if rc.TopLeft {
		fmt.Fprintf(&p, "M%s %s", num(x0+r), num(y0))
	} else {
		fmt.Fprintf(&p, "M%s %s", num(x0), num(y0))
	}
	if rc.TopRight {
		fmt.Fprintf(&p, "H%sQ%s %s %s %s", num(x1-r), num(x1), num(y0), num(x1), num(y0+r))
	} else {
		fmt.Fprintf(&p, "H%s", num(x1))
	}
	if rc.BottomRight {
		fmt.Fprintf(&p, "V%sQ%s %s %s %s", num(y1-r), num(x1), num(y1), num(x1-r), num(y1))
	} else {
		fmt.Fprintf(&p, "V%s", num(y1))
	}
	if rc.BottomLeft {
		fmt.Fprintf(&p, "H%sQ%s %s %s %s", num(x0+r), num(x0), num(y1), num(x0), num(y1-r))
		if rc.TopLeft {
			fmt.Fprintf(&p, "V%sQ%s %s %s %s", num(y0+r), num(x0), num(y0), num(x0+r), num(y0))
		} else {
			fmt.Fprintf(&p, "V%s", num(y0))
		}
	} else {
		fmt.Fprintf(&p, "H%s", num(x0))
	}
	p.WriteString("Z")
	return p.String()
}

// niceTicks picks a round tick spacing and axis end for values up to max.
func niceTicks(max float64) (tick, top float64) {
	if max <= 0 {
		return 1, 1
	}
	raw := max / 8
	mag := math.Pow(10, math.Floor(math.Log10(raw)))
	for _, m := range []float64{1, 2, 2.5, 5, 10} {
		tick = m * mag
		if tick >= raw {
			break
		}
	}
	top = math.Ceil(max/tick) * tick
	return tick, top
}

func truncate(s string, max int) string {
	r := []rune(s)
	if max <= 1 || len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}

// num formats a coordinate or value with at most two decimals.
func num(f float64) string {
	return strconv.FormatFloat(math.Round(f*100)/100, 'f', -1, 64)
}
