package schedule

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusExpired   Status = "expired"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsTerminal() bool {
	switch s {
	case StatusConfirmed, StatusExpired, StatusCancelled:
		return true
	default:
		return false
	}
}

type CandidateResponse string

const (
	ResponsePending   CandidateResponse = "pending"
	ResponseResponded CandidateResponse = "responded"
)

func (r CandidateResponse) String() string {
	return string(r)
}

type OptionStatus string

const (
	OptionOffered   OptionStatus = "offered"
	OptionConfirmed OptionStatus = "confirmed"
	OptionRejected  OptionStatus = "rejected"
)

func (s OptionStatus) String() string {
	return string(s)
}
