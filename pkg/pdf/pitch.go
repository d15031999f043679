package pdf

// PitchSlot is one formation slot rendered on the pitch diagram.
// X and Y are percentages of the playable area, y=0 at the attacking end
// and y=100 at the own goal. Players holds the stacked card lines for
// the slot, best candidate first.
type PitchSlot struct {
	Label   string
	X       float64
	Y       float64
	Players []string
}

// PitchDiagram draws a full-width tactical pitch with slot markers and
// stacked player cards.
func (b *Builder) PitchDiagram(slots []PitchSlot) {
	const (
		pitchX = marginLeft
		pitchW = contentWidth
		pitchH = 200.0
	)
	b.ensureSpace(pitchH + 8)
	pitchY := b.y

	// Field and markings.
	b.doc.SetFillColor(22, 101, 52)
	b.doc.Rect(pitchX, pitchY, pitchW, pitchH, "F")
	b.doc.SetDrawColor(255, 255, 255)
	b.doc.SetLineWidth(0.4)
	b.doc.Rect(pitchX+4, pitchY+4, pitchW-8, pitchH-8, "D")
	b.doc.Line(pitchX+4, pitchY+pitchH/2, pitchX+pitchW-4, pitchY+pitchH/2)
	b.doc.Circle(pitchX+pitchW/2, pitchY+pitchH/2, 18, "D")
	// Penalty boxes, attacking end on top.
	b.doc.Rect(pitchX+pitchW/2-30, pitchY+4, 60, 26, "D")
	b.doc.Rect(pitchX+pitchW/2-30, pitchY+pitchH-30, 60, 26, "D")

	for _, slot := range slots {
		x := pitchX + 4 + slot.X/100*(pitchW-8)
		y := pitchY + 4 + slot.Y/100*(pitchH-8)

		occupied := len(slot.Players) > 0
		if occupied {
			b.doc.SetFillColor(colorAccent.r, colorAccent.g, colorAccent.b)
		} else {
			b.doc.SetFillColor(148, 163, 184)
		}
		b.doc.Circle(x, y, 4, "F")
		b.doc.SetFont("Helvetica", "B", 7)
		b.doc.SetTextColor(15, 23, 42)
		b.text(x-b.width(slot.Label)/2, y+1, slot.Label)

		// Stacked cards beneath the marker, best candidate on top.
		cardY := y + 7
		for i, name := range slot.Players {
			if i >= 3 {
				break
			}
			w := b.width(name) + 3
			b.doc.SetFillColor(255, 255, 255)
			b.doc.Rect(x-w/2, cardY-3, w, 4.4, "F")
			b.doc.SetFont("Helvetica", "", 6.5)
			b.text(x-b.width(name)/2, cardY, name)
			cardY += 5
		}
	}

	b.doc.SetTextColor(colorText.r, colorText.g, colorText.b)
	b.doc.SetDrawColor(colorMuted.r, colorMuted.g, colorMuted.b)
	b.y = pitchY + pitchH + 10
}
