package payslip

// The page layout is declared here as named regions in millimetres on an
// A4 portrait page. Render walks these regions in order; only the table
// and the sections below it move vertically, by RowHeight per line item
// row. Nothing in render.go does coordinate arithmetic beyond offsets
// declared in this file.

type point struct {
	X, Y float64
}

type box struct {
	X, Y, W, H, Radius float64
}

type Layout struct {
	MarginX      float64 // left edge of all content
	ContentRight float64 // right edge of all content

	// Letterhead.
	Logo        box
	CompanyName point
	Location    point
	PeriodTitle point
	PeriodValue point
	HeaderRuleY float64

	// Employee summary block: labels at LabelX, colons at ColonX,
	// values at ValueX, one row per SummaryRowYs entry (name, id,
	// period, pay date).
	SummaryTitle point
	LabelX       float64
	ColonX       float64
	ValueX       float64
	SummaryRowYs [4]float64

	// Net-pay highlight panel (two stacked tinted boxes).
	NetPayBox    box
	NetPayText   point
	NetPayLabel  point
	DaysBox      box
	PaidDaysY    float64
	LOPDaysY     float64
	DaysLabelX   float64
	DaysValueX   float64
	SummaryRuleY float64

	// Remaining-leave line.
	LeaveRowY   float64
	LeaveLabel2 float64 // x of "Leaves Taken"
	LeaveColon2 float64
	LeaveValue2 float64

	// Earnings/deductions table. Heights depend on the row count:
	// header occupies TableHeaderH, each row RowHeight, the totals
	// section TotalsH. The two columns share row origins but advance
	// independently.
	TableTop      float64
	TableHeaderH  float64
	RowHeight     float64
	TotalsH       float64
	TableRadius   float64
	EarnLabelX    float64
	EarnAmountX   float64 // right edge of the earnings amount column
	DeductLabelX  float64
	DeductAmountX float64 // right edge of the deductions amount column

	// TOTAL NET PAYABLE bar and the words footer, positioned relative
	// to the bottom of the table.
	BarGap       float64
	BarH         float64
	BarTintW     float64
	WordsGap     float64
	ClosingGap   float64
	TextPadX     float64
	BarTitleDY   float64
	BarCaptionDY float64
	BarAmountDY  float64
}

var DefaultLayout = Layout{
	MarginX:      18,
	ContentRight: 192,

	Logo:        box{X: 18, Y: 12, W: 14},
	CompanyName: point{X: 35, Y: 18},
	Location:    point{X: 35, Y: 24},
	PeriodTitle: point{X: 120, Y: 18},
	PeriodValue: point{X: 120, Y: 25},
	HeaderRuleY: 32,

	SummaryTitle: point{X: 18, Y: 40},
	LabelX:       18,
	ColonX:       47,
	ValueX:       51,
	SummaryRowYs: [4]float64{48, 55, 62, 69},

	NetPayBox:    box{X: 126, Y: 38, W: 66, H: 19, Radius: 3},
	NetPayText:   point{X: 130, Y: 46},
	NetPayLabel:  point{X: 130, Y: 52},
	DaysBox:      box{X: 126, Y: 60, W: 66, H: 19, Radius: 3},
	PaidDaysY:    67,
	LOPDaysY:     74,
	DaysLabelX:   131,
	DaysValueX:   186,
	SummaryRuleY: 84,

	LeaveRowY:   91,
	LeaveLabel2: 105,
	LeaveColon2: 133,
	LeaveValue2: 137,

	TableTop:      98,
	TableHeaderH:  13,
	RowHeight:     7,
	TotalsH:       12,
	TableRadius:   3,
	EarnLabelX:    24,
	EarnAmountX:   98,
	DeductLabelX:  110,
	DeductAmountX: 186,

	BarGap:       8,
	BarH:         16,
	BarTintW:     48,
	WordsGap:     10,
	ClosingGap:   5,
	TextPadX:     6,
	BarTitleDY:   7,
	BarCaptionDY: 12.5,
	BarAmountDY:  10,
}

// tableHeight reports the full height of the bordered table for the
// given number of line item rows (the longer of the two columns).
func (l Layout) tableHeight(rows int) float64 {
	return l.TableHeaderH + float64(rows)*l.RowHeight + l.TotalsH
}
