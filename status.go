package markotravel

import "strconv"

// Travel status codes as stored in the source document.
const (
	StatusNotVisited = 0
	StatusLived      = 1
	StatusPlanned    = 2
	StatusWishlist   = 3
	StatusVisited    = 4

	// StatusTransited is never stored directly. NormalizeStatus maps every
	// unrecognized value (including corrupted ids such as 916343000) to it.
	StatusTransited = 5
)

var statusLabels = map[int]string{
	StatusNotVisited: "Not visited",
	StatusLived:      "Lived in",
	StatusPlanned:    "Planned to go",
	StatusWishlist:   "Wish to visit",
	StatusVisited:    "Visited",
	StatusTransited:  "Transited",
}

// NormalizeStatus maps a raw status id onto one of StatusNotVisited,
// StatusLived, StatusVisited or StatusTransited. It accepts any integer.
func NormalizeStatus(statusID int) int {
	switch statusID {
	case StatusNotVisited, StatusLived, StatusVisited:
		return statusID
	default:
		return StatusTransited
	}
}

// StatusLabel returns the human readable label for a status id.
// Unknown ids are rendered as "Status N".
func StatusLabel(statusID int) string {
	if label, ok := statusLabels[statusID]; ok {
		return label
	}
	return "Status " + strconv.Itoa(statusID)
}

// StatusLabels returns a copy of the status id to label mapping.
func StatusLabels() map[int]string {
	labels := make(map[int]string, len(statusLabels))
	for id, label := range statusLabels {
		labels[id] = label
	}
	return labels
}

// ValidateStatus returns EINVALID unless statusID is a storable status (0-4).
func ValidateStatus(statusID int) error {
	if statusID < StatusNotVisited || statusID > StatusVisited {
		return Errorf(EINVALID, "status must be between %d and %d, got %d", StatusNotVisited, StatusVisited, statusID)
	}
	return nil
}
