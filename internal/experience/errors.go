package experience

import "fmt"

// LoadError reports a bank file that could not be read or decoded.
type LoadError struct {
	Path   string
	Reason string
	Cause  error
}

func (e *LoadError) Error() string {
	msg := fmt.Sprintf("experience bank %s: %s", e.Path, e.Reason)
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *LoadError) Unwrap() error { return e.Cause }

// NormalizationError identifies the story or bullet that blocked normalization.
// BulletID is empty when the problem concerns the story as a whole.
type NormalizationError struct {
	StoryID  string
	BulletID string
	Message  string
}

func (e *NormalizationError) Error() string {
	switch {
	case e.BulletID != "":
		return fmt.Sprintf("normalize story %s bullet %s: %s", e.StoryID, e.BulletID, e.Message)
	case e.StoryID != "":
		return fmt.Sprintf("normalize story %s: %s", e.StoryID, e.Message)
	default:
		return "normalize: " + e.Message
	}
}
