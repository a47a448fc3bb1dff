package violation

// Status is the overall verdict of a checker run.
type Status int

const (
	Conforming Status = iota
	NonConforming
)

func (s Status) String() string {
	if s == Conforming {
		return "Conforming"
	}
	return "Non-conforming"
}
