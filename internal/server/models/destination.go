package models

// Destination is a read-only catalog record.
type Destination struct {
	Key         string `yaml:"key"`
	Name        string `yaml:"name"`
	Country     string `yaml:"country"`
	Description string `yaml:"description"`
	MediaURL    string `yaml:"media_url"`
}

// AddOutcome is the result of adding a destination to a want-to-go list.
type AddOutcome int

const (
	Added AddOutcome = iota + 1
	AlreadyPresent
)

func (o AddOutcome) String() string {
	switch o {
	case Added:
		return "added"
	case AlreadyPresent:
		return "already_present"
	default:
		return "unknown"
	}
}
