package stadium

// Capacity compares what a Config asked for with what Generate produced.
type Capacity struct {
	Requested  int   `json:"requested"`
	Realized   int   `json:"realized"`
	Discarded  int   `json:"discarded"`
	PerSection []int `json:"per_section"`
}

// Shortfall is the number of requested seats the layout could not place.
func (c Capacity) Shortfall() int { return c.Requested - c.Realized }

// Summarize counts the realized seats per section. Discarded is the number
// of candidate slots the generator visited and rejected because they
// overlapped the pitch.
func Summarize(cfg Config, pitch Rect, seats []Seat) Capacity {
	out := Capacity{
		Requested: cfg.TotalSeats,
		Realized:  len(seats),
	}
	if cfg.SectionCount > 0 {
		out.PerSection = make([]int, cfg.SectionCount)
	}
	for _, s := range seats {
		if s.Section >= 0 && s.Section < len(out.PerSection) {
			out.PerSection[s.Section]++
		}
	}
	out.Discarded = countDiscarded(cfg, pitch)
	return out
}

// countDiscarded replays the slot walk up to the point where Generate
// stopped, counting rejected slots.
func countDiscarded(cfg Config, pitch Rect) int {
	if cfg.Validate() != nil {
		return 0
	}
	perRow := cfg.SeatsPerRow()
	placed, discarded := 0, 0
	for section := 0; section < cfg.SectionCount; section++ {
		for row := 0; row < cfg.RowsPerSection; row++ {
			radius := RowRadius(row, cfg.RowsPerSection)
			for slot := 0; slot < perRow; slot++ {
				if placed >= cfg.TotalSeats {
					return discarded
				}
				p := cfg.slotPosition(radius, SlotAngle(section, slot, cfg.SectionCount, perRow))
				if pitch.Contains(p) {
					discarded++
					continue
				}
				placed++
			}
		}
	}
	return discarded
}
