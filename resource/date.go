package resource

// DateShape tags the form of a resource date
type DateShape int

const (
	// DateSingle is a plain date value (possibly empty)
	DateSingle DateShape = iota
	// DateClosedRange has both a start and an end
	DateClosedRange
	// DateOpenEndedRange has exactly one of start or end
	DateOpenEndedRange
)

// ResourceDate is a lifecycle date of the resource, tagged by shape.
// Build it with NewResourceDate; the shape is derived exactly once from
// the three nullable storage fields and the raw triple is not kept.
type ResourceDate struct {
	Type  string // DataCite dateType, e.g. "Issued", "Collected"
	shape DateShape
	value string // DateSingle
	start string // ranges
	end   string
}

// NewResourceDate derives the date shape from the nullable storage
// triple (value, start, end). Both bounds present wins over a plain
// value; a single bound yields an open-ended range.
func NewResourceDate(dateType string, value, start, end *string) ResourceDate {
	d := ResourceDate{Type: dateType}
	switch {
	case start != nil && end != nil:
		d.shape = DateClosedRange
		d.start = *start
		d.end = *end
	case start != nil:
		d.shape = DateOpenEndedRange
		d.start = *start
	case end != nil:
		d.shape = DateOpenEndedRange
		d.end = *end
	default:
		d.shape = DateSingle
		if value != nil {
			d.value = *value
		}
	}
	return d
}

// NewSingleDate builds a plain single-valued date
func NewSingleDate(dateType, value string) ResourceDate {
	return ResourceDate{Type: dateType, shape: DateSingle, value: value}
}

// NewClosedRangeDate builds a date range with both bounds known
func NewClosedRangeDate(dateType, start, end string) ResourceDate {
	return ResourceDate{Type: dateType, shape: DateClosedRange, start: start, end: end}
}

// Shape returns the tagged form of the date
func (d ResourceDate) Shape() DateShape { return d.shape }

// Value returns the plain value of a DateSingle date
func (d ResourceDate) Value() string { return d.value }

// Bounds returns the start and end of a range date. For an open-ended
// range exactly one of the two is non-empty.
func (d ResourceDate) Bounds() (start, end string) { return d.start, d.end }
