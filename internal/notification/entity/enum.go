package entity

// Destination identifies a webhook destination type.
type Destination int16

const (
	DestinationUnknown Destination = 0
	DestinationSlack   Destination = 1
	DestinationTeams   Destination = 2
)

func (d Destination) String() string {
	switch d {
	case DestinationSlack:
		return "slack"
	case DestinationTeams:
		return "teams"
	default:
		return "unknown"
	}
}

func DestinationFromString(s string) Destination {
	switch s {
	case "slack":
		return DestinationSlack
	case "teams":
		return DestinationTeams
	default:
		return DestinationUnknown
	}
}

// Severity classifies a notification for presentation (colors, accents).
type Severity int16

const (
	SeverityDefault Severity = 0
	SeveritySuccess Severity = 1
	SeverityWarning Severity = 2
	SeverityError   Severity = 3
)

func (s Severity) String() string {
	switch s {
	case SeveritySuccess:
		return "success"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "default"
	}
}

func SeverityFromString(s string) Severity {
	switch s {
	case "success":
		return SeveritySuccess
	case "warning":
		return SeverityWarning
	case "error":
		return SeverityError
	default:
		return SeverityDefault
	}
}
